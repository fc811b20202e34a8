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
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
)

// tomlDefinitions is the layout of a TOML definitions file:
//
//	[[prefix]]
//	name = "kibi"
//	value = "1024"
//	symbol = "Ki"
//
//	[[unit]]
//	name = "furlong"
//	value = "201.168 * meter"
//	aliases = ["furlongs"]
type tomlDefinitions struct {
	Prefix []tomlDefinition `toml:"prefix"`
	Unit   []tomlDefinition `toml:"unit"`
}

type tomlDefinition struct {
	Name    string   `toml:"name"`
	Value   string   `toml:"value"`
	Symbol  string   `toml:"symbol"`
	Aliases []string `toml:"aliases"`
}

// TOMLDefinitions adds the prefixes and units read from a TOML document.
// source names rd in error messages.
func TOMLDefinitions(rd io.Reader, source string) RegistryOption {
	return func(r *Registry) error {
		return r.loadTOML(rd, source)
	}
}

func (r *Registry) loadTOML(rd io.Reader, source string) error {
	var defs tomlDefinitions
	if _, err := toml.DecodeReader(rd, &defs); err != nil {
		return errors.Wrapf(err, "units: %s", source)
	}
	for i, p := range defs.Prefix {
		if p.Name == "" || p.Value == "" {
			return errors.Errorf("units: %s: prefix %d needs a name and a value", source, i)
		}
		name := strings.TrimSuffix(p.Name, "-") + "-"
		if err := r.definePrefix(name, p.Value, p.Symbol, p.Aliases); err != nil {
			return errors.Wrapf(err, "units: %s", source)
		}
	}
	for i, u := range defs.Unit {
		if u.Name == "" || u.Value == "" {
			return errors.Errorf("units: %s: unit %d needs a name and a value", source, i)
		}
		if err := r.defineUnit(u.Name, u.Value, u.Symbol, u.Aliases); err != nil {
			return errors.Wrapf(err, "units: %s", source)
		}
	}
	return nil
}
