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

package hash

import (
	"math"
	"testing"
)

type entry struct {
	Name   string
	Factor float64
}

func TestHash(t *testing.T) {
	a := []entry{{Name: "meter", Factor: 1}, {Name: "angstrom", Factor: 1e-10}}
	b := []entry{{Name: "meter", Factor: 1}, {Name: "angstrom", Factor: 1e-10}}
	c := []entry{{Name: "meter", Factor: 1}, {Name: "angstrom", Factor: 1e-9}}
	if Hash(a) != Hash(b) {
		t.Error("equal values should hash equally")
	}
	if Hash(a) == Hash(c) {
		t.Error("different values should hash differently")
	}
	if len(Hash(a)) != 32 {
		t.Errorf("hash %s should have 32 hex digits", Hash(a))
	}
}

func TestHashFallback(t *testing.T) {
	// gob cannot encode structs without exported fields.
	type private struct {
		name string
		f    float64
	}
	x := Hash(private{name: "pi", f: math.Pi})
	y := Hash(private{name: "pi", f: math.Pi})
	z := Hash(private{name: "tau", f: 2 * math.Pi})
	if x != y {
		t.Errorf("fallback hash is not stable: %s != %s", x, y)
	}
	if x == z {
		t.Error("fallback hash ignores unexported fields")
	}
}
