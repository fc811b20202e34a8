/*
Copyright © 2024 the OpenFF Units authors.
This file is part of OpenFF Units.

OpenFF Units is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OpenFF Units is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OpenFF Units.  If not, see <http://www.gnu.org/licenses/>.
*/

package units

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/go-faster/errors"
)

// Units, quantities and measurements are encoded by their canonical
// strings together with the hash of their registry. Decoding looks the
// registry up among those created in this process.

type encodedUnit struct {
	Unit     string
	Registry string
}

type encodedQuantity struct {
	Magnitude float64
	Unit      string
	Registry  string
}

type encodedMeasurement struct {
	Value, Uncertainty float64
	Unit               string
	Registry           string
}

func registryByHash(h string) (*Registry, error) {
	if r, ok := registries.Load(h); ok {
		return r.(*Registry), nil
	}
	return nil, errors.Wrapf(ErrRegistryMismatch, "registry %s", h)
}

func gobEncode(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func gobDecode(b []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(b)).Decode(v)
}

// decodeUnit parses s in the registry with hash h.
func decodeUnit(s, h string) (*Unit, error) {
	r, err := registryByHash(h)
	if err != nil {
		return nil, err
	}
	return r.Unit(s)
}

// GobEncode implements gob.GobEncoder.
func (u *Unit) GobEncode() ([]byte, error) {
	return gobEncode(encodedUnit{Unit: u.String(), Registry: u.r.Hash()})
}

// GobDecode implements gob.GobDecoder.
func (u *Unit) GobDecode(b []byte) error {
	var e encodedUnit
	if err := gobDecode(b, &e); err != nil {
		return errors.Wrap(err, "units: decoding unit")
	}
	d, err := decodeUnit(e.Unit, e.Registry)
	if err != nil {
		return err
	}
	*u = *d
	return nil
}

// GobEncode implements gob.GobEncoder.
func (q *Quantity) GobEncode() ([]byte, error) {
	return gobEncode(encodedQuantity{
		Magnitude: q.magnitude,
		Unit:      q.unit.String(),
		Registry:  q.registry().Hash(),
	})
}

// GobDecode implements gob.GobDecoder.
func (q *Quantity) GobDecode(b []byte) error {
	var e encodedQuantity
	if err := gobDecode(b, &e); err != nil {
		return errors.Wrap(err, "units: decoding quantity")
	}
	u, err := decodeUnit(e.Unit, e.Registry)
	if err != nil {
		return err
	}
	*q = Quantity{magnitude: e.Magnitude, unit: u}
	return nil
}

// GobEncode implements gob.GobEncoder.
func (m *Measurement) GobEncode() ([]byte, error) {
	return gobEncode(encodedMeasurement{
		Value:       m.value,
		Uncertainty: m.uncertainty,
		Unit:        m.unit.String(),
		Registry:    m.unit.r.Hash(),
	})
}

// GobDecode implements gob.GobDecoder.
func (m *Measurement) GobDecode(b []byte) error {
	var e encodedMeasurement
	if err := gobDecode(b, &e); err != nil {
		return errors.Wrap(err, "units: decoding measurement")
	}
	u, err := decodeUnit(e.Unit, e.Registry)
	if err != nil {
		return err
	}
	*m = Measurement{value: e.Value, uncertainty: e.Uncertainty, unit: u}
	return nil
}

type jsonQuantity struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

// MarshalJSON encodes q as {"magnitude": 300, "unit": "kelvin"}.
func (q *Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonQuantity{Magnitude: q.magnitude, Unit: q.unit.String()})
}

// UnmarshalJSON decodes q against the default registry.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	var j jsonQuantity
	if err := json.Unmarshal(b, &j); err != nil {
		return errors.Wrap(err, "units: decoding quantity")
	}
	u, err := DefaultRegistry().Unit(j.Unit)
	if err != nil {
		return err
	}
	*q = Quantity{magnitude: j.Magnitude, unit: u}
	return nil
}

// MarshalText encodes q as "300 kelvin".
func (q *Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText parses q against the default registry.
func (q *Quantity) UnmarshalText(b []byte) error {
	p, err := DefaultRegistry().Parse(string(b))
	if err != nil {
		return err
	}
	*q = *p
	return nil
}
