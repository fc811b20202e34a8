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
	"math"
	"strconv"

	"github.com/ctessum/unit"
	"gonum.org/v1/gonum/floats"
)

// Quantity is a magnitude with a unit. Quantities are immutable; every
// operation returns a new value.
type Quantity struct {
	magnitude float64
	unit      *Unit
}

// Magnitude returns the magnitude of q in its own units.
func (q *Quantity) Magnitude() float64 { return q.magnitude }

// Units returns the unit of q.
func (q *Quantity) Units() *Unit { return q.unit }

func (q *Quantity) registry() *Registry { return q.unit.r }

func (q *Quantity) term() *term {
	return &term{r: q.unit.r, mag: q.magnitude, c: q.unit.c}
}

func fromTerm(t *term) *Quantity {
	return &Quantity{magnitude: t.mag, unit: &Unit{r: t.r, c: t.c}}
}

// String returns q as "300 kelvin".
func (q *Quantity) String() string {
	return strconv.FormatFloat(q.magnitude, 'g', -1, 64) + " " + q.unit.String()
}

// To returns q expressed in u.
func (q *Quantity) To(u *Unit) (*Quantity, error) {
	m, err := (&term{r: q.registry(), mag: 1, c: u.c}).convert(q.term())
	if err != nil {
		return nil, err
	}
	return &Quantity{magnitude: m, unit: u}, nil
}

// ToUnit returns q expressed in the unit given by expr.
func (q *Quantity) ToUnit(expr string) (*Quantity, error) {
	u, err := q.registry().Unit(expr)
	if err != nil {
		return nil, err
	}
	return q.To(u)
}

// ToBaseUnits returns q expressed in the root units of its dimensions,
// e.g. 1 k_B becomes 1.380649e-23 kilogram * meter ** 2 / kelvin / second ** 2.
// Dimensionless named units such as pi or radian are folded into the
// magnitude.
func (q *Quantity) ToBaseUnits() *Quantity {
	r := q.registry()
	f, dims := r.reduce(q.unit.c)
	c := make(container, len(dims))
	for d, e := range dims {
		c[r.base[d]] = e
	}
	return &Quantity{magnitude: q.magnitude * f, unit: &Unit{r: r, c: c}}
}

// IsCompatibleWith reports whether q can be converted to the units of o.
func (q *Quantity) IsCompatibleWith(o *Quantity) bool {
	return q.unit.IsCompatibleWith(o.unit)
}

// Add returns q+o in the units of q.
func (q *Quantity) Add(o *Quantity) (*Quantity, error) {
	v, err := q.term().Add(o.term())
	if err != nil {
		return nil, err
	}
	return fromTerm(v.(*term)), nil
}

// Sub returns q-o in the units of q.
func (q *Quantity) Sub(o *Quantity) (*Quantity, error) {
	v, err := q.term().Sub(o.term())
	if err != nil {
		return nil, err
	}
	return fromTerm(v.(*term)), nil
}

// Mul returns q*o.
func (q *Quantity) Mul(o *Quantity) *Quantity {
	return &Quantity{magnitude: q.magnitude * o.magnitude, unit: q.unit.Mul(o.unit)}
}

// Div returns q/o.
func (q *Quantity) Div(o *Quantity) *Quantity {
	return &Quantity{magnitude: q.magnitude / o.magnitude, unit: q.unit.Div(o.unit)}
}

// MulUnit returns q*u.
func (q *Quantity) MulUnit(u *Unit) *Quantity {
	return &Quantity{magnitude: q.magnitude, unit: q.unit.Mul(u)}
}

// Pow returns q**e.
func (q *Quantity) Pow(e int) *Quantity {
	return &Quantity{magnitude: math.Pow(q.magnitude, float64(e)), unit: q.unit.Pow(e)}
}

// Scale returns f*q.
func (q *Quantity) Scale(f float64) *Quantity {
	return &Quantity{magnitude: f * q.magnitude, unit: q.unit}
}

// equalTolerance is the relative tolerance of Equal.
const equalTolerance = 1e-12

// Equal reports whether q and o are the same amount: o is converted to
// the units of q and the magnitudes compared within a relative tolerance
// of 1e-12, so that differently spelled units such as
// kilocalorie_per_mole and kilocalorie/mole compare equal. Incompatible
// quantities are never equal.
func (q *Quantity) Equal(o *Quantity) bool {
	if q == nil || o == nil {
		return q == o
	}
	m, err := q.term().convert(o.term())
	if err != nil {
		return false
	}
	return floats.EqualWithinAbsOrRel(m, q.magnitude, 0, equalTolerance)
}

// SI returns q as a value in SI base units with its dimensions.
func (q *Quantity) SI() *unit.Unit {
	f, dims := q.registry().reduce(q.unit.c)
	return unit.New(q.magnitude*f, dims)
}

// PlusMinus returns a measurement of q with the given uncertainty, in the
// units of q.
func (q *Quantity) PlusMinus(uncertainty float64) *Measurement {
	return &Measurement{value: q.magnitude, uncertainty: math.Abs(uncertainty), unit: q.unit}
}
