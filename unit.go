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
	"github.com/ctessum/unit"
)

// Unit is a product of integer powers of named units from a Registry.
// Units are immutable. Combining units from different registries is not
// supported.
type Unit struct {
	r *Registry
	c container
}

// Registry returns the registry u was created from.
func (u *Unit) Registry() *Registry { return u.r }

// String returns u in canonical form, e.g. "kilojoule / mole", "1 / meter"
// or "dimensionless".
func (u *Unit) String() string { return u.c.String() }

// Powers returns the canonical names making up u and their powers.
func (u *Unit) Powers() map[string]int {
	o := make(map[string]int, len(u.c))
	for k, v := range u.c {
		o[k] = v
	}
	return o
}

// Mul returns u*o.
func (u *Unit) Mul(o *Unit) *Unit { return &Unit{r: u.r, c: u.c.mul(o.c, 1)} }

// Div returns u/o.
func (u *Unit) Div(o *Unit) *Unit { return &Unit{r: u.r, c: u.c.mul(o.c, -1)} }

// Pow returns u**e.
func (u *Unit) Pow(e int) *Unit { return &Unit{r: u.r, c: u.c.pow(e)} }

// Equal reports whether u and o are made of the same named units.
func (u *Unit) Equal(o *Unit) bool {
	if u == nil || o == nil {
		return u == o
	}
	return u.c.equal(o.c)
}

// Dimensionality returns the dimensions of u.
func (u *Unit) Dimensionality() unit.Dimensions {
	_, d := u.r.reduce(u.c)
	return d
}

// IsDimensionless reports whether u has no dimensions. Units such as
// radian or meter/nanometer are dimensionless.
func (u *Unit) IsDimensionless() bool {
	return len(u.Dimensionality()) == 0
}

// IsCompatibleWith reports whether quantities in u can be converted to o.
func (u *Unit) IsCompatibleWith(o *Unit) bool {
	return u.Dimensionality().Matches(o.Dimensionality())
}

// ConversionFactor returns the factor f such that 1 u = f o.
func (u *Unit) ConversionFactor(o *Unit) (float64, error) {
	t := &term{r: u.r, mag: 1, c: o.c}
	return t.convert(&term{r: u.r, mag: 1, c: u.c})
}

// FactorToSI returns the size of u in SI base units.
func (u *Unit) FactorToSI() float64 {
	f, _ := u.r.reduce(u.c)
	return f
}
