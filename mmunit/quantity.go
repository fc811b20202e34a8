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

package mmunit

import (
	"fmt"
	"math"
	"strconv"
)

// IncompatibleUnitsError is returned when a value is converted or added
// across units of different dimensions.
type IncompatibleUnitsError struct {
	From, To *Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("mmunit: unit %s is not compatible with %s", e.From, e.To)
}

// Quantity is a value with a unit. Quantities are immutable; arithmetic
// returns new quantities.
type Quantity struct {
	Value float64
	Unit  *Unit
}

// NewQuantity returns value*u. A nil unit is taken as dimensionless.
func NewQuantity(value float64, u *Unit) *Quantity {
	if u == nil {
		u = Dimensionless
	}
	return &Quantity{Value: value, Unit: u}
}

// Mul returns q*o.
func (q *Quantity) Mul(o *Quantity) *Quantity {
	return &Quantity{Value: q.Value * o.Value, Unit: q.Unit.Mul(o.Unit)}
}

// Div returns q/o.
func (q *Quantity) Div(o *Quantity) *Quantity {
	return &Quantity{Value: q.Value / o.Value, Unit: q.Unit.Div(o.Unit)}
}

// Pow returns q**e.
func (q *Quantity) Pow(e float64) *Quantity {
	return &Quantity{Value: math.Pow(q.Value, e), Unit: q.Unit.Pow(e)}
}

// Neg returns -q.
func (q *Quantity) Neg() *Quantity {
	return &Quantity{Value: -q.Value, Unit: q.Unit}
}

// Scale returns f*q.
func (q *Quantity) Scale(f float64) *Quantity {
	return &Quantity{Value: f * q.Value, Unit: q.Unit}
}

// Add returns q+o in the unit of q.
func (q *Quantity) Add(o *Quantity) (*Quantity, error) {
	v, err := o.ValueInUnit(q.Unit)
	if err != nil {
		return nil, err
	}
	return &Quantity{Value: q.Value + v, Unit: q.Unit}, nil
}

// Sub returns q-o in the unit of q.
func (q *Quantity) Sub(o *Quantity) (*Quantity, error) {
	v, err := o.ValueInUnit(q.Unit)
	if err != nil {
		return nil, err
	}
	return &Quantity{Value: q.Value - v, Unit: q.Unit}, nil
}

// ValueInUnit returns the value of q expressed in u.
func (q *Quantity) ValueInUnit(u *Unit) (float64, error) {
	if q.Unit.Equal(u) {
		return q.Value, nil
	}
	f, err := q.Unit.ConversionFactorTo(u)
	if err != nil {
		return 0, err
	}
	return q.Value * f, nil
}

// InUnitsOf returns q expressed in u.
func (q *Quantity) InUnitsOf(u *Unit) (*Quantity, error) {
	v, err := q.ValueInUnit(u)
	if err != nil {
		return nil, err
	}
	return &Quantity{Value: v, Unit: u}, nil
}

// siUnits are the coherent SI units of each base dimension.
var siUnits = map[*BaseDimension]*BaseUnit{
	MassDimension:              kilogramBase,
	LengthDimension:            meterBase,
	TimeDimension:              secondBase,
	TemperatureDimension:       kelvinBase,
	AmountDimension:            moleBase,
	ChargeDimension:            coulombBase,
	LuminousIntensityDimension: candelaBase,
	AngleDimension:             radianBase,
}

// InSIBaseUnits returns q expressed as a product of powers of the SI base
// units of its dimensions.
func (q *Quantity) InSIBaseUnits() *Quantity {
	o := Dimensionless
	for d, e := range q.Unit.Dimensions() {
		o = o.Mul(FromBase(siUnits[d]).Pow(e))
	}
	return &Quantity{Value: q.Value * q.Unit.FactorToSI(), Unit: o}
}

// Equal reports whether q and o have compatible units and the same value
// once o is expressed in the unit of q.
func (q *Quantity) Equal(o *Quantity) bool {
	if q == nil || o == nil {
		return q == o
	}
	v, err := o.ValueInUnit(q.Unit)
	if err != nil {
		return false
	}
	return v == q.Value
}

func (q *Quantity) String() string {
	return fmt.Sprintf("Quantity(value=%s, unit=%s)", strconv.FormatFloat(q.Value, 'g', -1, 64), q.Unit)
}
