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
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrNoneUnit is returned when a nil unit is passed where a toolkit
	// unit is expected.
	ErrNoneUnit = errors.New("openmm: input is nil, expected an (OpenMM) Unit object")

	// ErrNoneQuantity is returned when a nil quantity is passed to a
	// conversion. It is wrapped with the expected kind of quantity.
	ErrNoneQuantity = errors.New("input is nil")

	// ErrUnsupportedTarget is returned by EnsureQuantity for an unknown
	// target unit system.
	ErrUnsupportedTarget = errors.New("openmm: unsupported type_to_ensure")
)

// MissingUnitError is returned when a unit expression names a unit that
// the toolkit namespace does not define. Conversions into the toolkit
// recover from it by re-expressing the quantity in base units.
type MissingUnitError struct {
	Name string
}

func (e *MissingUnitError) Error() string {
	return fmt.Sprintf("openmm: unit %q has no equivalent in the OpenMM unit namespace", e.Name)
}
