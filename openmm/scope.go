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
	"math"

	"github.com/go-faster/errors"
	"github.com/openforcefield/units/mmunit"
	"github.com/openforcefield/units/unitexpr"
)

// mmValue is a toolkit unit expression value: a factor times a unit.
// Numbers carry the dimensionless unit.
type mmValue struct {
	mag float64
	u   *mmunit.Unit
}

// mmScope resolves names in a toolkit namespace.
type mmScope struct {
	ns *mmunit.Namespace
}

func (s mmScope) Number(v float64) unitexpr.Value {
	return &mmValue{mag: v, u: mmunit.Dimensionless}
}

func (s mmScope) Lookup(name string) (unitexpr.Value, error) {
	u, ok := s.ns.Lookup(name)
	if !ok {
		return nil, &MissingUnitError{Name: name}
	}
	return &mmValue{mag: 1, u: u}, nil
}

// convert returns the factor of y expressed in the unit of x.
func (x *mmValue) convert(y *mmValue) (float64, error) {
	f, err := y.u.ConversionFactorTo(x.u)
	if err != nil {
		return 0, err
	}
	return y.mag * f, nil
}

func (x *mmValue) Add(v unitexpr.Value) (unitexpr.Value, error) {
	m, err := x.convert(v.(*mmValue))
	if err != nil {
		return nil, err
	}
	return &mmValue{mag: x.mag + m, u: x.u}, nil
}

func (x *mmValue) Sub(v unitexpr.Value) (unitexpr.Value, error) {
	m, err := x.convert(v.(*mmValue))
	if err != nil {
		return nil, err
	}
	return &mmValue{mag: x.mag - m, u: x.u}, nil
}

func (x *mmValue) Mul(v unitexpr.Value) (unitexpr.Value, error) {
	y := v.(*mmValue)
	return &mmValue{mag: x.mag * y.mag, u: x.u.Mul(y.u)}, nil
}

func (x *mmValue) Div(v unitexpr.Value) (unitexpr.Value, error) {
	y := v.(*mmValue)
	return &mmValue{mag: x.mag / y.mag, u: x.u.Div(y.u)}, nil
}

func (x *mmValue) Pow(v unitexpr.Value) (unitexpr.Value, error) {
	y := v.(*mmValue)
	if !y.u.IsDimensionless() {
		return nil, errors.Errorf("openmm: exponent has unit %s", y.u)
	}
	e := y.mag * y.u.FactorToSI()
	return &mmValue{mag: math.Pow(x.mag, e), u: x.u.Pow(e)}, nil
}

func (x *mmValue) Neg() (unitexpr.Value, error) {
	return &mmValue{mag: -x.mag, u: x.u}, nil
}
