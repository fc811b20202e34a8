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

// Command openff-units is a command-line interface for converting units
// between the OpenFF and OpenMM unit systems.
package main

import (
	"os"

	"github.com/openforcefield/units/unitsutil"
)

func main() {
	if err := unitsutil.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
