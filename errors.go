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
	"fmt"

	"github.com/ctessum/unit"
	"github.com/go-faster/errors"
)

var (
	// ErrNotAUnit is returned when an expression parsed as a unit carries a
	// numeric factor, e.g. "2 * meter".
	ErrNotAUnit = errors.New("units: expression is a quantity, not a unit")

	// ErrFractionalExponent is returned when a dimensioned unit is raised
	// to a non-integer power.
	ErrFractionalExponent = errors.New("units: non-integer power of a dimensioned unit")

	// ErrRegistryMismatch is returned when decoding a value that was encoded
	// with a registry that is not available in this process.
	ErrRegistryMismatch = errors.New("units: value was encoded with an unknown unit registry")
)

// UndefinedUnitError is returned when a name cannot be resolved in the
// registry, either directly or as a prefixed or plural form.
type UndefinedUnitError struct {
	Name string
}

func (e *UndefinedUnitError) Error() string {
	return fmt.Sprintf("units: '%s' is not defined in the unit registry", e.Name)
}

// DimensionalityError is returned when converting or adding between
// incompatible units.
type DimensionalityError struct {
	From, To         string
	FromDims, ToDims unit.Dimensions
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("units: cannot convert from '%s' (%s) to '%s' (%s)",
		e.From, FormatDimensions(e.FromDims), e.To, FormatDimensions(e.ToDims))
}
