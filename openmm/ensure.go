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

package openmm

import (
	"github.com/go-faster/errors"
	"github.com/openforcefield/units"
	"github.com/openforcefield/units/mmunit"
	"github.com/spf13/cast"
)

// Target names the unit system EnsureQuantity converts into.
type Target string

// The supported targets.
const (
	TargetOpenMM Target = "openmm"
	TargetOpenFF Target = "openff"
)

// EnsureQuantity coerces v into a quantity of the target system. v may be
// a *units.Quantity, a *mmunit.Quantity, a quantity expression string such
// as "4 angstrom", or a number, which becomes dimensionless. Quantities
// already in the target system are returned unchanged.
func (c *Converter) EnsureQuantity(v interface{}, target Target) (interface{}, error) {
	switch target {
	case TargetOpenMM:
		q, err := c.EnsureOpenMM(v)
		if err != nil {
			return nil, err
		}
		return q, nil
	case TargetOpenFF:
		q, err := c.EnsureOpenFF(v)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedTarget, "%q, expected %q or %q", target, TargetOpenMM, TargetOpenFF)
}

// EnsureOpenMM coerces v into a toolkit quantity.
func (c *Converter) EnsureOpenMM(v interface{}) (*mmunit.Quantity, error) {
	switch q := v.(type) {
	case nil:
		return nil, errors.Wrap(ErrNoneQuantity, "openmm: expected a quantity")
	case *mmunit.Quantity:
		if q == nil {
			return nil, errors.Wrap(ErrNoneQuantity, "openmm: expected an (OpenMM) Quantity object")
		}
		return q, nil
	case *units.Quantity:
		return c.ToOpenMM(q)
	case string:
		p, err := c.Registry.Parse(q)
		if err != nil {
			return nil, errors.Wrapf(err, "openmm: failed to process %q", q)
		}
		return c.ToOpenMM(p)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, errors.Wrapf(err, "openmm: failed to process input of type %T", v)
	}
	return mmunit.NewQuantity(f, mmunit.Dimensionless), nil
}

// EnsureOpenFF coerces v into a registry quantity.
func (c *Converter) EnsureOpenFF(v interface{}) (*units.Quantity, error) {
	switch q := v.(type) {
	case nil:
		return nil, errors.Wrap(ErrNoneQuantity, "openmm: expected a quantity")
	case *units.Quantity:
		if q == nil {
			return nil, errors.Wrap(ErrNoneQuantity, "openmm: expected an (OpenFF) Quantity object")
		}
		return q, nil
	case *mmunit.Quantity:
		return c.FromOpenMM(q)
	case string:
		p, err := c.Registry.Parse(q)
		if err != nil {
			return nil, errors.Wrapf(err, "openmm: failed to process %q", q)
		}
		return p, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, errors.Wrapf(err, "openmm: failed to process input of type %T", v)
	}
	return c.Registry.Quantity(f, c.Registry.Dimensionless()), nil
}

// EnsureQuantity coerces v with the default converter.
func EnsureQuantity(v interface{}, target Target) (interface{}, error) {
	return Default().EnsureQuantity(v, target)
}
