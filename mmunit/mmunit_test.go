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
	"math"
	"testing"

	"github.com/go-faster/errors"
	"github.com/kr/pretty"
)

const testTolerance = 1e-12

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestComponentsOrder(t *testing.T) {
	tests := []struct {
		name string
		u    *Unit
		want []Component
	}{
		{
			name: "kilojoule per mole",
			u:    KilojoulePerMole,
			want: []Component{
				{Name: "mole", Symbol: "mol", Exponent: -1},
				{Name: "kilojoule", Symbol: "kJ", Exponent: 1},
			},
		},
		{
			name: "kilocalorie per mole per square angstrom",
			u:    KilocaloriePerMole.Div(Angstrom.Pow(2)),
			want: []Component{
				{Name: "angstrom", Symbol: "Å", Exponent: -2},
				{Name: "mole", Symbol: "mol", Exponent: -1},
				{Name: "kilocalorie", Symbol: "kcal", Exponent: 1},
			},
		},
		{
			name: "scaled units keep introduction order",
			u:    Kilojoule.Mul(Volt).Mul(Joule),
			want: []Component{
				{Name: "kilojoule", Symbol: "kJ", Exponent: 1},
				{Name: "volt", Symbol: "V", Exponent: 1},
				{Name: "joule", Symbol: "J", Exponent: 1},
			},
		},
		{
			name: "base units sorted by dimension",
			u:    Kelvin.Mul(Second).Mul(Nanometer).Mul(Gram),
			want: []Component{
				{Name: "gram", Symbol: "g", Exponent: 1},
				{Name: "nanometer", Symbol: "nm", Exponent: 1},
				{Name: "second", Symbol: "s", Exponent: 1},
				{Name: "kelvin", Symbol: "K", Exponent: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.u.Components()
			if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
				t.Errorf("components differ: %v", diff)
			}
		})
	}
}

func TestCancellation(t *testing.T) {
	u := Nanometer.Mul(Kilojoule).Div(Nanometer).Div(Kilojoule)
	if !u.Equal(Dimensionless) {
		t.Errorf("got %s, want dimensionless", u)
	}
	if len(u.Components()) != 0 {
		t.Errorf("components should be empty: %v", u.Components())
	}
	if Meter.Div(Nanometer).Equal(Dimensionless) {
		t.Error("meter/nanometer should not be structurally dimensionless")
	}
	if !Meter.Div(Nanometer).IsDimensionless() {
		t.Error("meter/nanometer should have no net dimension")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		u    *Unit
		want string
	}{
		{u: Dimensionless, want: "dimensionless"},
		{u: Nanometer, want: "nanometer"},
		{u: KilojoulePerMole, want: "kilojoule/mole"},
		{u: KilojoulePerMole.Div(Nanometer.Pow(2)), want: "kilojoule/(nanometer**2*mole)"},
		{u: Picosecond.Pow(-1), want: "/picosecond"},
	}
	for _, tt := range tests {
		if got := tt.u.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestConversionFactor(t *testing.T) {
	tests := []struct {
		from, to *Unit
		want     float64
	}{
		{from: Nanometer, to: Angstrom, want: 10},
		{from: Kilocalorie, to: Kilojoule, want: 4.184},
		{from: KilocaloriePerMole, to: KilojoulePerMole, want: 4.184},
		{from: Dalton, to: Gram.Div(Mole), want: 1},
		{from: Atmosphere, to: Bar, want: 1.01325},
		{from: Degree, to: Radian, want: math.Pi / 180},
		{from: Ampere.Mul(Second), to: Coulomb, want: 1},
		{from: ElementaryCharge, to: Coulomb, want: 1.602176634e-19},
		{from: Liter, to: Nanometer.Pow(3), want: 1e24},
	}
	for _, tt := range tests {
		f, err := tt.from.ConversionFactorTo(tt.to)
		if err != nil {
			t.Errorf("%s -> %s: %v", tt.from, tt.to, err)
			continue
		}
		if different(f, tt.want, testTolerance) {
			t.Errorf("%s -> %s: got %g, want %g", tt.from, tt.to, f, tt.want)
		}
	}

	_, err := Nanometer.ConversionFactorTo(Second)
	var ie *IncompatibleUnitsError
	if !errors.As(err, &ie) {
		t.Errorf("got %v, want *IncompatibleUnitsError", err)
	}
}

func TestQuantity(t *testing.T) {
	q := NewQuantity(1.5, Nanometer)
	a, err := q.InUnitsOf(Angstrom)
	if err != nil {
		t.Fatal(err)
	}
	if different(a.Value, 15, testTolerance) {
		t.Errorf("got %g Å, want 15", a.Value)
	}
	sum, err := q.Add(NewQuantity(5, Angstrom))
	if err != nil {
		t.Fatal(err)
	}
	if different(sum.Value, 2, testTolerance) || !sum.Unit.Equal(Nanometer) {
		t.Errorf("got %s, want 2 nanometer", sum)
	}
	if _, err := q.Sub(NewQuantity(1, Kelvin)); err == nil {
		t.Error("subtracting kelvin from nanometer should fail")
	}
	e := NewQuantity(2, Kilojoule).Div(NewQuantity(4, Mole))
	if !e.Unit.Equal(KilojoulePerMole) || e.Value != 0.5 {
		t.Errorf("got %s", e)
	}
	if !NewQuantity(3, nil).Unit.Equal(Dimensionless) {
		t.Error("nil unit should be dimensionless")
	}
	if got, want := NewQuantity(300, Kelvin).String(), "Quantity(value=300, unit=kelvin)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInSIBaseUnits(t *testing.T) {
	q := NewQuantity(1, KilojoulePerMole).InSIBaseUnits()
	want := Kilogram.Mul(Meter.Pow(2)).Div(Second.Pow(2)).Div(Mole)
	if !q.Unit.Equal(want) {
		t.Errorf("got unit %s, want %s", q.Unit, want)
	}
	if different(q.Value, 1000, testTolerance) {
		t.Errorf("got %g, want 1000", q.Value)
	}
	if !NewQuantity(1, KilojoulePerMole).Equal(NewQuantity(1000, want)) {
		t.Error("1 kJ/mol should equal 1000 kg m**2 s**-2 mol**-1")
	}
}

func TestNamespace(t *testing.T) {
	ns := NewNamespace()
	for _, name := range []string{"nanometer", "kilojoule_per_mole", "elementary_charge", "dimensionless", "atmosphere"} {
		if _, ok := ns.Lookup(name); !ok {
			t.Errorf("missing %s", name)
		}
	}
	if _, ok := ns.Lookup("boltzmann_constant"); ok {
		t.Error("boltzmann_constant should not be defined")
	}
	ext := ns.With("furlong", Meter.Pow(1))
	if _, ok := ext.Lookup("furlong"); !ok {
		t.Error("With did not add furlong")
	}
	if _, ok := ns.Lookup("furlong"); ok {
		t.Error("With modified the original namespace")
	}
	names := ns.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted at %d: %s > %s", i, names[i-1], names[i])
		}
	}
}
