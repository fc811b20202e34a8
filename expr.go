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
	"strings"

	"github.com/go-faster/errors"
	"github.com/openforcefield/units/unitexpr"
)

// container maps canonical unit names to integer powers. Containers are
// never modified once built.
type container map[string]int

func (c container) names() []string { return sortedKeys(c) }

// mul returns c*o**sign.
func (c container) mul(o container, sign int) container {
	out := make(container, len(c)+len(o))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range o {
		out[k] += sign * v
		if out[k] == 0 {
			delete(out, k)
		}
	}
	return out
}

func (c container) pow(e int) container {
	if e == 0 {
		return nil
	}
	out := make(container, len(c))
	for k, v := range c {
		out[k] = v * e
	}
	return out
}

func (c container) equal(o container) bool {
	if len(c) != len(o) {
		return false
	}
	for k, v := range c {
		if o[k] != v {
			return false
		}
	}
	return true
}

// String formats c as "kilogram * meter ** 2 / kelvin / second ** 2":
// positive powers first, then one division per negative power, each group
// in name order.
func (c container) String() string {
	if len(c) == 0 {
		return "dimensionless"
	}
	var num, den []string
	for _, name := range c.names() {
		switch e := c[name]; {
		case e > 0:
			num = append(num, powString(name, e))
		case e < 0:
			den = append(den, powString(name, -e))
		}
	}
	s := strings.Join(num, " * ")
	if s == "" {
		s = "1"
	}
	for _, d := range den {
		s += " / " + d
	}
	return s
}

func powString(name string, e int) string {
	if e == 1 {
		return name
	}
	return name + " ** " + strconv.Itoa(e)
}

// term is the value of a unit expression: a magnitude times a product of
// named units.
type term struct {
	r   *Registry
	mag float64
	c   container
}

func (r *Registry) scope() unitexpr.Scope { return registryScope{r: r} }

type registryScope struct {
	r *Registry
}

func (s registryScope) Number(v float64) unitexpr.Value {
	return &term{r: s.r, mag: v}
}

func (s registryScope) Lookup(name string) (unitexpr.Value, error) {
	if name == "dimensionless" {
		return &term{r: s.r, mag: 1}, nil
	}
	d, ok := s.r.resolve(name)
	if !ok {
		return nil, &UndefinedUnitError{Name: name}
	}
	return &term{r: s.r, mag: 1, c: container{d.name: 1}}, nil
}

// convert returns the magnitude of y expressed in the units of x.
func (x *term) convert(y *term) (float64, error) {
	if x.c.equal(y.c) {
		return y.mag, nil
	}
	fx, dx := x.r.reduce(x.c)
	fy, dy := x.r.reduce(y.c)
	if !dx.Matches(dy) {
		return 0, &DimensionalityError{
			From: y.c.String(), To: x.c.String(),
			FromDims: dy, ToDims: dx,
		}
	}
	return y.mag * fy / fx, nil
}

func (x *term) Add(v unitexpr.Value) (unitexpr.Value, error) {
	m, err := x.convert(v.(*term))
	if err != nil {
		return nil, err
	}
	return &term{r: x.r, mag: x.mag + m, c: x.c}, nil
}

func (x *term) Sub(v unitexpr.Value) (unitexpr.Value, error) {
	m, err := x.convert(v.(*term))
	if err != nil {
		return nil, err
	}
	return &term{r: x.r, mag: x.mag - m, c: x.c}, nil
}

func (x *term) Mul(v unitexpr.Value) (unitexpr.Value, error) {
	y := v.(*term)
	return &term{r: x.r, mag: x.mag * y.mag, c: x.c.mul(y.c, 1)}, nil
}

func (x *term) Div(v unitexpr.Value) (unitexpr.Value, error) {
	y := v.(*term)
	return &term{r: x.r, mag: x.mag / y.mag, c: x.c.mul(y.c, -1)}, nil
}

func (x *term) Pow(v unitexpr.Value) (unitexpr.Value, error) {
	y := v.(*term)
	if len(y.c) != 0 {
		_, dy := x.r.reduce(y.c)
		return nil, &DimensionalityError{From: y.c.String(), To: "dimensionless", FromDims: dy}
	}
	e := y.mag
	if len(x.c) == 0 {
		return &term{r: x.r, mag: math.Pow(x.mag, e)}, nil
	}
	if e != math.Trunc(e) {
		return nil, errors.Wrapf(ErrFractionalExponent, "(%s) ** %g", x.c, e)
	}
	return &term{r: x.r, mag: math.Pow(x.mag, e), c: x.c.pow(int(e))}, nil
}

func (x *term) Neg() (unitexpr.Value, error) {
	return &term{r: x.r, mag: -x.mag, c: x.c}, nil
}
