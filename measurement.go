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

	"gonum.org/v1/gonum/floats"
)

// Measurement is a value with a standard uncertainty and a unit.
// Uncertainties are propagated to first order assuming independent
// errors.
type Measurement struct {
	value, uncertainty float64
	unit               *Unit
}

// Value returns the nominal value of m as a quantity.
func (m *Measurement) Value() *Quantity {
	return &Quantity{magnitude: m.value, unit: m.unit}
}

// Uncertainty returns the standard uncertainty of m as a quantity.
func (m *Measurement) Uncertainty() *Quantity {
	return &Quantity{magnitude: m.uncertainty, unit: m.unit}
}

// Units returns the unit of m.
func (m *Measurement) Units() *Unit { return m.unit }

// RelativeUncertainty returns the uncertainty of m divided by its value.
func (m *Measurement) RelativeUncertainty() float64 {
	return math.Abs(m.uncertainty / m.value)
}

// String returns m as "(1 +/- 0.05) kelvin".
func (m *Measurement) String() string {
	return "(" + strconv.FormatFloat(m.value, 'g', -1, 64) + " +/- " +
		strconv.FormatFloat(m.uncertainty, 'g', -1, 64) + ") " + m.unit.String()
}

// To returns m expressed in u.
func (m *Measurement) To(u *Unit) (*Measurement, error) {
	f, err := m.unit.ConversionFactor(u)
	if err != nil {
		return nil, err
	}
	return &Measurement{value: m.value * f, uncertainty: m.uncertainty * math.Abs(f), unit: u}, nil
}

// Add returns m+o in the units of m.
func (m *Measurement) Add(o *Measurement) (*Measurement, error) {
	oo, err := o.To(m.unit)
	if err != nil {
		return nil, err
	}
	return &Measurement{
		value:       m.value + oo.value,
		uncertainty: floats.Norm([]float64{m.uncertainty, oo.uncertainty}, 2),
		unit:        m.unit,
	}, nil
}

// Sub returns m-o in the units of m.
func (m *Measurement) Sub(o *Measurement) (*Measurement, error) {
	oo, err := o.To(m.unit)
	if err != nil {
		return nil, err
	}
	return &Measurement{
		value:       m.value - oo.value,
		uncertainty: floats.Norm([]float64{m.uncertainty, oo.uncertainty}, 2),
		unit:        m.unit,
	}, nil
}

// Mul returns m*o.
func (m *Measurement) Mul(o *Measurement) *Measurement {
	return &Measurement{
		value:       m.value * o.value,
		uncertainty: floats.Norm([]float64{m.uncertainty * o.value, m.value * o.uncertainty}, 2),
		unit:        m.unit.Mul(o.unit),
	}
}

// Div returns m/o.
func (m *Measurement) Div(o *Measurement) *Measurement {
	return &Measurement{
		value: m.value / o.value,
		uncertainty: floats.Norm([]float64{
			m.uncertainty / o.value,
			m.value * o.uncertainty / (o.value * o.value),
		}, 2),
		unit: m.unit.Div(o.unit),
	}
}

// Scale returns f*m.
func (m *Measurement) Scale(f float64) *Measurement {
	return &Measurement{value: f * m.value, uncertainty: math.Abs(f) * m.uncertainty, unit: m.unit}
}
