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

// Package mmunit implements the unit system of the molecular mechanics
// toolkit: base dimensions, base units, scaled units and the composite
// units and quantities built from them by multiplication, division and
// exponentiation.
//
// A composite Unit keeps its base units ordered by dimension and its scaled
// units in the order they were introduced, so that kilojoule/mole is
// decomposed as mole**-1 followed by kilojoule.
package mmunit

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// BaseDimension is one of the independent physical dimensions.
type BaseDimension struct {
	Name  string
	index int
}

// The base dimensions, in decomposition order.
var (
	MassDimension              = &BaseDimension{Name: "mass", index: 1}
	LengthDimension            = &BaseDimension{Name: "length", index: 2}
	TimeDimension              = &BaseDimension{Name: "time", index: 3}
	TemperatureDimension       = &BaseDimension{Name: "temperature", index: 4}
	AmountDimension            = &BaseDimension{Name: "amount", index: 5}
	ChargeDimension            = &BaseDimension{Name: "charge", index: 6}
	LuminousIntensityDimension = &BaseDimension{Name: "luminous intensity", index: 7}
	AngleDimension             = &BaseDimension{Name: "angle", index: 8}
)

func (d *BaseDimension) String() string { return d.Name }

// BaseUnit is a unit of a single base dimension. Each base unit knows its
// size relative to the SI unit of its dimension.
type BaseUnit struct {
	Dimension *BaseDimension
	Name      string
	Symbol    string
	toSI      float64
}

// NewBaseUnit returns a base unit of dimension d that is toSI times the SI
// unit of d.
func NewBaseUnit(d *BaseDimension, name, symbol string, toSI float64) *BaseUnit {
	return &BaseUnit{Dimension: d, Name: name, Symbol: symbol, toSI: toSI}
}

// ScaledUnit is a named multiple of a composite unit, such as
// joule = kilogram*meter**2/second**2.
type ScaledUnit struct {
	Name   string
	Symbol string
	Factor float64
	Master *Unit
}

// NewScaledUnit returns a scaled unit equal to factor*master.
func NewScaledUnit(factor float64, master *Unit, name, symbol string) *ScaledUnit {
	return &ScaledUnit{Name: name, Symbol: symbol, Factor: factor, Master: master}
}

type baseTerm struct {
	u   *BaseUnit
	exp float64
}

type scaledTerm struct {
	u   *ScaledUnit
	exp float64
}

// Unit is a product of powers of base units and scaled units. The zero
// value is dimensionless. Units are immutable.
type Unit struct {
	base   []baseTerm
	scaled []scaledTerm
}

// Dimensionless is the unit with no components.
var Dimensionless = &Unit{}

// FromBase returns the unit consisting of b alone.
func FromBase(b *BaseUnit) *Unit {
	return &Unit{base: []baseTerm{{u: b, exp: 1}}}
}

// FromScaled returns the unit consisting of s alone.
func FromScaled(s *ScaledUnit) *Unit {
	return &Unit{scaled: []scaledTerm{{u: s, exp: 1}}}
}

// Component is one factor of a unit's decomposition.
type Component struct {
	Name     string
	Symbol   string
	Exponent float64
}

// Components returns the base units followed by the scaled units of u,
// with their exponents.
func (u *Unit) Components() []Component {
	c := make([]Component, 0, len(u.base)+len(u.scaled))
	for _, t := range u.base {
		c = append(c, Component{Name: t.u.Name, Symbol: t.u.Symbol, Exponent: t.exp})
	}
	for _, t := range u.scaled {
		c = append(c, Component{Name: t.u.Name, Symbol: t.u.Symbol, Exponent: t.exp})
	}
	return c
}

// IsDimensionless reports whether u has no net dimension. A unit such as
// meter/nanometer is dimensionless without being equal to Dimensionless.
func (u *Unit) IsDimensionless() bool {
	for _, e := range u.Dimensions() {
		if e != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether u and v have the same decomposition.
func (u *Unit) Equal(v *Unit) bool {
	if u == nil || v == nil {
		return u == v
	}
	if len(u.base) != len(v.base) || len(u.scaled) != len(v.scaled) {
		return false
	}
	for i := range u.base {
		if u.base[i] != v.base[i] {
			return false
		}
	}
	for i := range u.scaled {
		if u.scaled[i] != v.scaled[i] {
			return false
		}
	}
	return true
}

// Mul returns u*v.
func (u *Unit) Mul(v *Unit) *Unit {
	return u.combine(v, 1)
}

// Div returns u/v.
func (u *Unit) Div(v *Unit) *Unit {
	return u.combine(v, -1)
}

// Pow returns u**e.
func (u *Unit) Pow(e float64) *Unit {
	if e == 0 {
		return Dimensionless
	}
	o := &Unit{
		base:   make([]baseTerm, len(u.base)),
		scaled: make([]scaledTerm, len(u.scaled)),
	}
	for i, t := range u.base {
		o.base[i] = baseTerm{u: t.u, exp: t.exp * e}
	}
	for i, t := range u.scaled {
		o.scaled[i] = scaledTerm{u: t.u, exp: t.exp * e}
	}
	return o
}

// combine returns u*v**sign.
func (u *Unit) combine(v *Unit, sign float64) *Unit {
	o := &Unit{}
	exps := make(map[*BaseUnit]float64)
	for _, t := range u.base {
		exps[t.u] += t.exp
	}
	for _, t := range v.base {
		exps[t.u] += sign * t.exp
	}
	for b, e := range exps {
		if e != 0 {
			o.base = append(o.base, baseTerm{u: b, exp: e})
		}
	}
	sort.Slice(o.base, func(i, j int) bool {
		a, b := o.base[i].u, o.base[j].u
		if a.Dimension.index != b.Dimension.index {
			return a.Dimension.index < b.Dimension.index
		}
		return a.Name < b.Name
	})

	o.scaled = append(o.scaled, u.scaled...)
	for _, t := range v.scaled {
		found := false
		for i := range o.scaled {
			if o.scaled[i].u == t.u {
				o.scaled[i].exp += sign * t.exp
				found = true
				break
			}
		}
		if !found {
			o.scaled = append(o.scaled, scaledTerm{u: t.u, exp: sign * t.exp})
		}
	}
	kept := o.scaled[:0]
	for _, t := range o.scaled {
		if t.exp != 0 {
			kept = append(kept, t)
		}
	}
	o.scaled = kept
	return o
}

// FactorToSI returns the size of u relative to the coherent SI unit of the
// same dimension.
func (u *Unit) FactorToSI() float64 {
	f := 1.0
	for _, t := range u.base {
		f *= math.Pow(t.u.toSI, t.exp)
	}
	for _, t := range u.scaled {
		f *= math.Pow(t.u.Factor*t.u.Master.FactorToSI(), t.exp)
	}
	return f
}

// Dimensions returns the net exponent of each base dimension in u.
func (u *Unit) Dimensions() map[*BaseDimension]float64 {
	d := make(map[*BaseDimension]float64)
	u.addDimensions(d, 1)
	for k, v := range d {
		if v == 0 {
			delete(d, k)
		}
	}
	return d
}

func (u *Unit) addDimensions(d map[*BaseDimension]float64, exp float64) {
	for _, t := range u.base {
		d[t.u.Dimension] += t.exp * exp
	}
	for _, t := range u.scaled {
		t.u.Master.addDimensions(d, t.exp*exp)
	}
}

// IsCompatible reports whether u and v have the same dimensions, so that
// quantities in one can be expressed in the other.
func (u *Unit) IsCompatible(v *Unit) bool {
	du, dv := u.Dimensions(), v.Dimensions()
	if len(du) != len(dv) {
		return false
	}
	for k, e := range du {
		if dv[k] != e {
			return false
		}
	}
	return true
}

// ConversionFactorTo returns the factor f such that 1 u = f v.
func (u *Unit) ConversionFactorTo(v *Unit) (float64, error) {
	if !u.IsCompatible(v) {
		return 0, &IncompatibleUnitsError{From: u, To: v}
	}
	return u.FactorToSI() / v.FactorToSI(), nil
}

// String returns the unit in symbolic product form, e.g.
// "kilojoule/(nanometer**2*mole)".
func (u *Unit) String() string {
	var num, den []string
	for _, c := range u.Components() {
		switch {
		case c.Exponent > 0:
			num = append(num, powString(c.Name, c.Exponent))
		case c.Exponent < 0:
			den = append(den, powString(c.Name, -c.Exponent))
		}
	}
	if len(num) == 0 && len(den) == 0 {
		return "dimensionless"
	}
	s := strings.Join(num, "*")
	if len(num) == 0 {
		s = "/"
	} else if len(den) > 0 {
		s += "/"
	}
	switch len(den) {
	case 0:
	case 1:
		s += den[0]
	default:
		s += "(" + strings.Join(den, "*") + ")"
	}
	return s
}

func powString(name string, e float64) string {
	if e == 1 {
		return name
	}
	return name + "**" + strconv.FormatFloat(e, 'g', -1, 64)
}
