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

// Package units provides the unit registry shared by the OpenFF stack: a
// Unit type, a Quantity type holding a magnitude with a unit, and a
// Measurement type holding a magnitude with an uncertainty.
//
// Units are defined in a plain-text definitions file (see defaults.txt)
// and may be extended with further definitions or TOML files. Unit
// expressions such as "kilocalories_per_mole / angstrom ** 2" or
// "1.380649e-23 J/K" are parsed against the registry, which resolves
// prefixed ("kJ", "nanometer") and plural ("angstroms") forms of the
// defined names.
//
// A Registry is safe for concurrent use. The registry built from the
// default definitions is returned by DefaultRegistry.
package units

// Version is the version of this module.
const Version = "0.3.0"
