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
	"sort"
	"strings"
	"sync"

	"github.com/ctessum/unit"
)

// SubstanceDim is the dimension of amount of substance.
var SubstanceDim = unit.NewDimension("[substance]")

var (
	dimMu sync.Mutex

	// dimensions maps the bracketed dimension names used in definition
	// files to dimensions.
	dimensions = map[string]unit.Dimension{
		"length":      unit.LengthDim,
		"mass":        unit.MassDim,
		"time":        unit.TimeDim,
		"temperature": unit.TemperatureDim,
		"current":     unit.CurrentDim,
		"luminosity":  unit.LuminousIntensityDim,
		"substance":   SubstanceDim,
	}
)

// dimension returns the dimension with the given name, creating it if it
// has not been seen before. Dimensions are process-wide.
func dimension(name string) unit.Dimension {
	dimMu.Lock()
	defer dimMu.Unlock()
	if d, ok := dimensions[name]; ok {
		return d
	}
	d := unit.NewDimension("[" + name + "]")
	dimensions[name] = d
	return d
}

// dimPower is one factor of a dimensionality.
type dimPower struct {
	Dim string
	Pow int
}

// dimPowers returns the non-zero powers of d sorted by dimension symbol.
// unit.Dimensions.String is not used because its order depends on map
// iteration.
func dimPowers(d unit.Dimensions) []dimPower {
	p := make([]dimPower, 0, len(d))
	for k, v := range d {
		if v != 0 {
			p = append(p, dimPower{Dim: k.String(), Pow: v})
		}
	}
	sort.Slice(p, func(i, j int) bool { return p[i].Dim < p[j].Dim })
	return p
}

// FormatDimensions formats d as, e.g., "K^-1 kg m^2 s^-2", with the
// dimensions in symbol order. An empty d is "dimensionless".
func FormatDimensions(d unit.Dimensions) string {
	p := dimPowers(d)
	if len(p) == 0 {
		return "dimensionless"
	}
	s := make([]string, len(p))
	for i, dp := range p {
		if dp.Pow == 1 {
			s[i] = dp.Dim
		} else {
			s[i] = fmt.Sprintf("%s^%d", dp.Dim, dp.Pow)
		}
	}
	return strings.Join(s, " ")
}
