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
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/openforcefield/units"
	"github.com/openforcefield/units/mmunit"
	"github.com/openforcefield/units/unitexpr"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func quantity(t *testing.T, expr string) *units.Quantity {
	t.Helper()
	q, err := units.DefaultRegistry().Parse(expr)
	if err != nil {
		t.Fatalf("%s: %v", expr, err)
	}
	return q
}

func TestUnitStringRoundTrip(t *testing.T) {
	tests := []struct {
		u    *mmunit.Unit
		want string
	}{
		{u: mmunit.KilojoulePerMole, want: "mole**-1 * kilojoule"},
		{u: mmunit.KilocaloriePerMole.Div(mmunit.Angstrom.Pow(2)), want: "angstrom**-2 * mole**-1 * kilocalorie"},
		{u: mmunit.Joule.Div(mmunit.Mole.Mul(mmunit.Nanometer.Pow(2))), want: "nanometer**-2 * mole**-1 * joule"},
		{u: mmunit.Picosecond.Pow(-1), want: "picosecond**-1"},
		{u: mmunit.Dimensionless, want: "dimensionless"},
		{u: mmunit.Second, want: "second"},
		{u: mmunit.Angstrom, want: "angstrom"},
		{u: mmunit.ElementaryCharge, want: "elementary_charge"},
	}
	for _, tt := range tests {
		got, err := UnitToString(tt.u)
		if err != nil {
			t.Errorf("%s: %v", tt.want, err)
			continue
		}
		if got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
		u, err := StringToUnit(tt.want)
		if err != nil {
			t.Errorf("%s: %v", tt.want, err)
			continue
		}
		if again, _ := UnitToString(u); again != tt.want {
			t.Errorf("round trip of %q gave %q", tt.want, again)
		}
	}
}

func TestUnitToStringSpecialCases(t *testing.T) {
	if s, _ := UnitToString(mmunit.Dalton); s != "g/mol" {
		t.Errorf("dalton: got %q", s)
	}
	if s, _ := UnitToString(mmunit.Meter.Div(mmunit.Meter)); s != "dimensionless" {
		t.Errorf("meter/meter: got %q", s)
	}
	if s, _ := UnitToString(mmunit.Nanometer.Pow(0.5)); s != "nanometer**0" {
		t.Errorf("fractional exponents should truncate, got %q", s)
	}
	_, err := UnitToString(nil)
	if !errors.Is(err, ErrNoneUnit) {
		t.Errorf("got %v, want ErrNoneUnit", err)
	}
	if !strings.Contains(err.Error(), "OpenMM") || !strings.Contains(err.Error(), "Unit") {
		t.Errorf("message %q should name an OpenMM Unit", err)
	}
}

func TestStringToUnit(t *testing.T) {
	u, err := StringToUnit("kilocalories_per_mole / angstrom ** 2")
	if err != nil {
		t.Fatal(err)
	}
	if !u.Equal(mmunit.KilocaloriePerMole.Div(mmunit.Angstrom.Pow(2))) {
		t.Errorf("got %s", u)
	}
	if u, _ := StringToUnit("standard_atmosphere"); !u.Equal(mmunit.Atmosphere) {
		t.Errorf("standard_atmosphere: got %s", u)
	}
	if u, _ := StringToUnit("nanometer ^ 2"); !u.Equal(mmunit.Nanometer.Pow(2)) {
		t.Errorf("^ should be a power, got %s", u)
	}

	_, err = StringToUnit("kilojoule / florp ** 2")
	var me *MissingUnitError
	if !errors.As(err, &me) {
		t.Fatalf("got %v, want *MissingUnitError", err)
	}
	if me.Name != "florp" {
		t.Errorf("missing name %q, want florp", me.Name)
	}

	for _, s := range []string{"[1, 2]", "meter *", "meter $"} {
		if _, err := StringToUnit(s); !errors.Is(err, unitexpr.ErrMalformedExpression) {
			t.Errorf("%q: got %v, want malformed expression", s, err)
		}
	}
	if _, err := StringToUnit("2 * meter"); !errors.Is(err, units.ErrNotAUnit) {
		t.Errorf("2 * meter: got %v, want units.ErrNotAUnit", err)
	}
	if _, err := StringToUnit("meter + second"); err == nil {
		t.Error("meter + second should fail")
	}
}

var pairs = []struct {
	openmm *mmunit.Quantity
	openff string
}{
	{openmm: mmunit.NewQuantity(4, mmunit.Nanometer), openff: "4.0 * nanometer"},
	{openmm: mmunit.NewQuantity(5, mmunit.Angstrom), openff: "5.0 * angstrom"},
	{openmm: mmunit.NewQuantity(1, mmunit.ElementaryCharge), openff: "1.0 * elementary_charge"},
	{openmm: mmunit.NewQuantity(0.5, mmunit.Erg), openff: "0.5 * erg"},
	{openmm: mmunit.NewQuantity(1, mmunit.Dimensionless), openff: "1.0 * dimensionless"},
	{openmm: mmunit.NewQuantity(0.5, mmunit.Dalton), openff: "0.5 * gram / mol"},
}

func TestFromOpenMM(t *testing.T) {
	for _, p := range pairs {
		got, err := FromOpenMM(p.openmm)
		if err != nil {
			t.Errorf("%s: %v", p.openmm, err)
			continue
		}
		if want := quantity(t, p.openff); !want.Equal(got) {
			t.Errorf("got %s, want %s", got, want)
		}
	}
}

func TestToOpenMM(t *testing.T) {
	for _, p := range pairs {
		got, err := ToOpenMM(quantity(t, p.openff))
		if err != nil {
			t.Errorf("%s: %v", p.openff, err)
			continue
		}
		if !p.openmm.Equal(got) {
			t.Errorf("got %s, want %s", got, p.openmm)
		}
	}
}

func TestNoneQuantity(t *testing.T) {
	_, err := FromOpenMM(nil)
	if !errors.Is(err, ErrNoneQuantity) || !strings.Contains(err.Error(), "OpenMM") {
		t.Errorf("FromOpenMM(nil): got %v", err)
	}
	_, err = ToOpenMM(nil)
	if !errors.Is(err, ErrNoneQuantity) || !strings.Contains(err.Error(), "OpenFF") {
		t.Errorf("ToOpenMM(nil): got %v", err)
	}
	if _, err := FromOpenMM(&mmunit.Quantity{Value: 1}); !errors.Is(err, ErrNoneUnit) {
		t.Errorf("nil unit: got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		openff string
		openmm *mmunit.Quantity
	}{
		{openff: "300.0 kelvin", openmm: mmunit.NewQuantity(300, mmunit.Kelvin)},
		{openff: "1.5 kilojoule", openmm: mmunit.NewQuantity(1.5, mmunit.Kilojoule)},
		{openff: "1.0 / meter", openmm: mmunit.NewQuantity(1, mmunit.Meter.Pow(-1))},
	}
	for _, tt := range tests {
		ff := quantity(t, tt.openff)
		mm, err := ToOpenMM(ff)
		if err != nil {
			t.Fatal(err)
		}
		if !tt.openmm.Equal(mm) || mm.Value != tt.openmm.Value {
			t.Errorf("%s to OpenMM: got %s, want %s", tt.openff, mm, tt.openmm)
		}
		back, err := FromOpenMM(tt.openmm)
		if err != nil {
			t.Fatal(err)
		}
		if !ff.Equal(back) || back.Magnitude() != ff.Magnitude() {
			t.Errorf("%s from OpenMM: got %s", tt.openff, back)
		}
		again, err := FromOpenMM(mm)
		if err != nil {
			t.Fatal(err)
		}
		if !ff.Equal(again) {
			t.Errorf("%s round trip: got %s", tt.openff, again)
		}
	}
}

// Constants the toolkit does not define are converted through base units.
func TestToOpenMMConstants(t *testing.T) {
	m, kg, s := mmunit.Meter, mmunit.Kilogram, mmunit.Second
	tests := []struct {
		openff string
		want   *mmunit.Quantity
	}{
		{
			openff: "1.0 * k_B",
			want:   mmunit.NewQuantity(1.380649e-23, m.Pow(2).Mul(kg).Mul(s.Pow(-2)).Mul(mmunit.Kelvin.Pow(-1))),
		},
		{
			openff: "1.0 / pi",
			want:   mmunit.NewQuantity(0.31830988618, mmunit.Dimensionless),
		},
		{
			openff: "1.0 * avogadro_constant",
			want:   mmunit.NewQuantity(6.02214076e23, mmunit.Mole.Pow(-1)),
		},
		{
			openff: "1.0 * vacuum_permittivity",
			want:   mmunit.NewQuantity(8.85418782e-12, m.Pow(-3).Mul(kg.Pow(-1)).Mul(s.Pow(4)).Mul(mmunit.Ampere.Pow(2))),
		},
	}
	for _, tt := range tests {
		got, err := ToOpenMM(quantity(t, tt.openff))
		if err != nil {
			t.Errorf("%s: %v", tt.openff, err)
			continue
		}
		v, err := got.ValueInUnit(tt.want.Unit)
		if err != nil {
			t.Errorf("%s: %v", tt.openff, err)
			continue
		}
		if different(v, tt.want.Value, 1e-6) {
			t.Errorf("%s: got %s, want %s", tt.openff, got, tt.want)
		}
	}
}

func TestToOpenMMFallbackUnit(t *testing.T) {
	got, err := ToOpenMM(quantity(t, "1 k_B"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := UnitToString(got.Unit)
	if err != nil {
		t.Fatal(err)
	}
	if want := "kilogram * meter**2 * second**-2 * kelvin**-1"; s != want {
		t.Errorf("got %q, want %q", s, want)
	}
	if different(got.Value, 1.380649e-23, 1e-12) {
		t.Errorf("got %g", got.Value)
	}
}

func TestFallbackLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.Level = logrus.DebugLevel
	c := NewConverter(units.DefaultRegistry(), mmunit.NewNamespace())
	c.Log = logger

	if _, err := c.ToOpenMM(quantity(t, "2 k_B")); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no log entry")
	}
	if e.Level != logrus.DebugLevel || e.Data["missing"] != "boltzmann_constant" {
		t.Errorf("unexpected entry %v: %v", e.Level, e.Data)
	}

	hook.Reset()
	if _, err := c.ToOpenMM(quantity(t, "2 kelvin")); err != nil {
		t.Fatal(err)
	}
	if len(hook.Entries) != 0 {
		t.Errorf("direct conversions should not log, got %d entries", len(hook.Entries))
	}
}

func TestConverterWithoutLogger(t *testing.T) {
	c := &Converter{Registry: units.DefaultRegistry(), Namespace: mmunit.NewNamespace()}
	if _, err := c.ToOpenMM(quantity(t, "1 k_B")); err != nil {
		t.Fatal(err)
	}
	smoot := mmunit.FromScaled(mmunit.NewScaledUnit(1.7018, mmunit.Meter, "smoot", "smoot"))
	if _, err := c.FromOpenMM(mmunit.NewQuantity(1, smoot)); err != nil {
		t.Fatal(err)
	}
}

func TestToOpenMMFatal(t *testing.T) {
	// Timesteps have no toolkit equivalent, even in base units.
	_, err := ToOpenMM(quantity(t, "10 timestep"))
	var me *MissingUnitError
	if !errors.As(err, &me) || me.Name != "timestep" {
		t.Errorf("got %v, want missing timestep", err)
	}
}

func TestFromOpenMMFallback(t *testing.T) {
	smoot := mmunit.FromScaled(mmunit.NewScaledUnit(1.7018, mmunit.Meter, "smoot", "smoot"))
	got, err := FromOpenMM(mmunit.NewQuantity(2, smoot))
	if err != nil {
		t.Fatal(err)
	}
	if got.Units().String() != "meter" || different(got.Magnitude(), 3.4036, 1e-12) {
		t.Errorf("got %s, want 3.4036 meter", got)
	}
}

func TestCustomNamespace(t *testing.T) {
	ns := mmunit.NewNamespace().With("boltzmann_constant", mmunit.Joule.Div(mmunit.Kelvin).Pow(1))
	c := NewConverter(units.DefaultRegistry(), ns)
	got, err := c.ToOpenMM(quantity(t, "1 k_B"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != 1 || !got.Unit.Equal(mmunit.Joule.Div(mmunit.Kelvin)) {
		t.Errorf("got %s", got)
	}
}
