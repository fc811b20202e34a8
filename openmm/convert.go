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

// Package openmm converts units and quantities between the units registry
// and the OpenMM toolkit unit system of package mmunit.
//
// Toolkit units are serialized to canonical strings such as
// "angstrom**-2 * mole**-1 * kilocalorie", which the registry can parse.
// In the other direction the registry's unit string is evaluated against
// the toolkit namespace. Units the toolkit does not define are handled by
// re-expressing the quantity in base units, which both systems share.
package openmm

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-faster/errors"
	"github.com/openforcefield/units"
	"github.com/openforcefield/units/mmunit"
	"github.com/openforcefield/units/unitexpr"
	"github.com/sirupsen/logrus"
)

// Converter converts between a registry and a toolkit namespace. Both are
// only read, so a Converter is safe for concurrent use.
type Converter struct {
	Registry  *units.Registry
	Namespace *mmunit.Namespace

	// Log receives a debug message each time a conversion falls back to
	// base units. It defaults to the logrus standard logger.
	Log logrus.FieldLogger
}

// NewConverter returns a converter between r and ns.
func NewConverter(r *units.Registry, ns *mmunit.Namespace) *Converter {
	return &Converter{Registry: r, Namespace: ns, Log: logrus.StandardLogger()}
}

func (c *Converter) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

var (
	defaultOnce      sync.Once
	defaultConverter *Converter
)

// Default returns the converter between the default registry and the
// default toolkit namespace.
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultConverter = NewConverter(units.DefaultRegistry(), mmunit.NewNamespace())
	})
	return defaultConverter
}

// UnitToString serializes a toolkit unit. Components appear in the order
// the unit decomposes into them, joined by " * ", with spaces in names
// replaced by underscores. Exponents are truncated to integers.
// The dimensionless unit becomes "dimensionless" and dalton becomes
// "g/mol".
func UnitToString(u *mmunit.Unit) (string, error) {
	if u == nil {
		return "", ErrNoneUnit
	}
	if u.Equal(mmunit.Dimensionless) {
		return "dimensionless", nil
	}
	if u.Equal(mmunit.Dalton) {
		return "g/mol", nil
	}
	var b strings.Builder
	for i, c := range u.Components() {
		if i > 0 {
			b.WriteString(" * ")
		}
		name := strings.Replace(c.Name, " ", "_", -1)
		if c.Exponent == 1 {
			b.WriteString(name)
		} else {
			fmt.Fprintf(&b, "%s**%d", name, int(c.Exponent))
		}
	}
	return b.String(), nil
}

// StringToUnit evaluates a unit expression such as
// "kilocalories_per_mole / angstrom ** 2" against the toolkit namespace.
// Unknown names give a *MissingUnitError.
func (c *Converter) StringToUnit(s string) (*mmunit.Unit, error) {
	v, err := c.evaluate(s)
	if err != nil {
		return nil, err
	}
	if v.mag != 1 {
		return nil, errors.Wrapf(units.ErrNotAUnit, "openmm: %q has a factor of %g", s, v.mag)
	}
	return v.u, nil
}

func (c *Converter) evaluate(s string) (*mmValue, error) {
	// The two systems name this unit differently.
	if s == "standard_atmosphere" {
		return &mmValue{mag: 1, u: mmunit.Atmosphere}, nil
	}
	v, err := unitexpr.ParseEval(s, mmScope{ns: c.Namespace})
	if err != nil {
		return nil, err
	}
	return v.(*mmValue), nil
}

// FromOpenMM converts a toolkit quantity into the registry. If the
// registry lacks one of the toolkit's units the quantity is converted
// through SI base units.
func (c *Converter) FromOpenMM(q *mmunit.Quantity) (*units.Quantity, error) {
	if q == nil {
		return nil, errors.Wrap(ErrNoneQuantity, "openmm: expected an (OpenMM) Quantity object")
	}
	out, err := c.fromOpenMM(q)
	var ue *units.UndefinedUnitError
	if !errors.As(err, &ue) {
		return out, err
	}
	c.log().WithFields(logrus.Fields{
		"unit":    q.Unit.String(),
		"missing": ue.Name,
	}).Debug("openmm: unit not in registry, converting via SI base units")
	out, err = c.fromOpenMM(q.InSIBaseUnits())
	if err != nil {
		return nil, errors.Wrapf(err, "openmm: converting %s via base units", q)
	}
	return out, nil
}

func (c *Converter) fromOpenMM(q *mmunit.Quantity) (*units.Quantity, error) {
	s, err := UnitToString(q.Unit)
	if err != nil {
		return nil, err
	}
	u, err := c.Registry.Unit(s)
	if err != nil {
		return nil, err
	}
	return c.Registry.Quantity(q.Value, u), nil
}

// ToOpenMM converts a registry quantity into the toolkit. If the toolkit
// lacks one of its units, the quantity is first re-expressed in base
// units, which may change the magnitude in the last few digits.
func (c *Converter) ToOpenMM(q *units.Quantity) (*mmunit.Quantity, error) {
	if q == nil {
		return nil, errors.Wrap(ErrNoneQuantity, "openmm: expected an (OpenFF) Quantity object")
	}
	out, err := c.toOpenMM(q)
	var me *MissingUnitError
	if !errors.As(err, &me) {
		return out, err
	}
	c.log().WithFields(logrus.Fields{
		"unit":    q.Units().String(),
		"missing": me.Name,
	}).Debug("openmm: unit not in namespace, converting via base units")
	out, err = c.toOpenMM(q.ToBaseUnits())
	if err != nil {
		return nil, errors.Wrapf(err, "openmm: converting %s via base units", q)
	}
	return out, nil
}

func (c *Converter) toOpenMM(q *units.Quantity) (*mmunit.Quantity, error) {
	v, err := c.evaluate(q.Units().String())
	if err != nil {
		return nil, err
	}
	return mmunit.NewQuantity(q.Magnitude()*v.mag, v.u), nil
}

// StringToUnit evaluates s with the default converter.
func StringToUnit(s string) (*mmunit.Unit, error) { return Default().StringToUnit(s) }

// FromOpenMM converts q with the default converter.
func FromOpenMM(q *mmunit.Quantity) (*units.Quantity, error) { return Default().FromOpenMM(q) }

// ToOpenMM converts q with the default converter.
func ToOpenMM(q *units.Quantity) (*mmunit.Quantity, error) { return Default().ToOpenMM(q) }
