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
	"testing"

	"github.com/go-faster/errors"
	"github.com/openforcefield/units"
	"github.com/openforcefield/units/mmunit"
)

func TestEnsureQuantity(t *testing.T) {
	ff := quantity(t, "4 angstrom")
	mm := mmunit.NewQuantity(4, mmunit.Angstrom)

	t.Run("openmm", func(t *testing.T) {
		for _, in := range []interface{}{ff, mm, "4 angstrom", "0.4 nm"} {
			out, err := EnsureQuantity(in, TargetOpenMM)
			if err != nil {
				t.Fatalf("%v: %v", in, err)
			}
			q, ok := out.(*mmunit.Quantity)
			if !ok {
				t.Fatalf("%v: got %T", in, out)
			}
			v, err := q.ValueInUnit(mmunit.Angstrom)
			if err != nil {
				t.Fatal(err)
			}
			if different(v, 4, 1e-12) {
				t.Errorf("%v: got %s", in, q)
			}
		}
	})
	t.Run("openff", func(t *testing.T) {
		for _, in := range []interface{}{ff, mm, "4 angstrom"} {
			out, err := EnsureQuantity(in, TargetOpenFF)
			if err != nil {
				t.Fatalf("%v: %v", in, err)
			}
			q, ok := out.(*units.Quantity)
			if !ok {
				t.Fatalf("%v: got %T", in, out)
			}
			if !ff.Equal(q) {
				t.Errorf("%v: got %s", in, q)
			}
		}
	})
	t.Run("short circuit", func(t *testing.T) {
		out, _ := EnsureQuantity(mm, TargetOpenMM)
		if out.(*mmunit.Quantity) != mm {
			t.Error("toolkit quantity should be returned unchanged")
		}
		out, _ = EnsureQuantity(ff, TargetOpenFF)
		if out.(*units.Quantity) != ff {
			t.Error("registry quantity should be returned unchanged")
		}
	})
	t.Run("numbers", func(t *testing.T) {
		for _, in := range []interface{}{1, 2.0, float32(3)} {
			out, err := EnsureQuantity(in, TargetOpenMM)
			if err != nil {
				t.Fatalf("%v: %v", in, err)
			}
			if q := out.(*mmunit.Quantity); !q.Unit.Equal(mmunit.Dimensionless) {
				t.Errorf("%v: got %s, want dimensionless", in, q)
			}
			out, err = EnsureQuantity(in, TargetOpenFF)
			if err != nil {
				t.Fatalf("%v: %v", in, err)
			}
			if q := out.(*units.Quantity); !q.Units().IsDimensionless() {
				t.Errorf("%v: got %s, want dimensionless", in, q)
			}
		}
	})
	t.Run("unsupported target", func(t *testing.T) {
		_, err := EnsureQuantity(ff, Target("pint"))
		if !errors.Is(err, ErrUnsupportedTarget) {
			t.Errorf("got %v, want ErrUnsupportedTarget", err)
		}
	})
	t.Run("bad input", func(t *testing.T) {
		if _, err := EnsureQuantity(struct{}{}, TargetOpenMM); err == nil {
			t.Error("expected an error for a struct")
		}
		if _, err := EnsureQuantity(nil, TargetOpenFF); !errors.Is(err, ErrNoneQuantity) {
			t.Errorf("got %v, want ErrNoneQuantity", err)
		}
		var q *units.Quantity
		if _, err := EnsureQuantity(q, TargetOpenMM); !errors.Is(err, ErrNoneQuantity) {
			t.Errorf("typed nil: got %v, want ErrNoneQuantity", err)
		}
		if _, err := EnsureQuantity("4 blorps", TargetOpenMM); err == nil {
			t.Error("expected an undefined unit error")
		}
		if _, err := EnsureQuantity([]float64{1, 2}, TargetOpenFF); err == nil {
			t.Error("slices are not quantities")
		}
	})
}
