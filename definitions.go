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
	"bufio"
	_ "embed"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/ctessum/unit"
	"github.com/go-faster/errors"
	"github.com/openforcefield/units/unitexpr"
	"github.com/sirupsen/logrus"
)

//go:embed defaults.txt
var defaultDefinitions string

// definition is a named unit. factor is the size of the unit in SI base
// units and dims its dimensionality.
type definition struct {
	name    string
	symbol  string
	aliases []string
	factor  float64
	dims    unit.Dimensions
	root    bool
}

type prefix struct {
	name   string
	factor float64
}

// prefixKey is a spelling of a prefix, either its name or a symbol.
type prefixKey struct {
	key string
	p   *prefix
}

// load reads definitions line by line from rd. source names rd in errors.
func (r *Registry) load(rd io.Reader, source string) error {
	s := bufio.NewScanner(rd)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if err := r.define(text); err != nil {
			return errors.Wrapf(err, "units: %s:%d", source, line)
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrapf(err, "units: reading %s", source)
	}
	return nil
}

// define adds a single "name = value = symbol = aliases..." definition.
func (r *Registry) define(text string) error {
	fields := strings.Split(text, "=")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return errors.Errorf("malformed definition %q", text)
	}
	name, value := fields[0], fields[1]
	var symbol string
	var aliases []string
	if len(fields) > 2 && fields[2] != "_" {
		symbol = fields[2]
	}
	if len(fields) > 3 {
		for _, a := range fields[3:] {
			if a != "" && a != "_" {
				aliases = append(aliases, a)
			}
		}
	}
	if strings.HasSuffix(name, "-") {
		return r.definePrefix(name, value, symbol, aliases)
	}
	return r.defineUnit(name, value, symbol, aliases)
}

func (r *Registry) definePrefix(name, value, symbol string, aliases []string) error {
	f, err := r.number(value)
	if err != nil {
		return errors.Wrapf(err, "prefix %s", name)
	}
	p := &prefix{name: strings.TrimSuffix(name, "-"), factor: f}
	keys := append([]string{name, symbol}, aliases...)
	for _, k := range keys {
		k = strings.TrimSuffix(k, "-")
		if k == "" {
			continue
		}
		if _, ok := r.prefixIndex[k]; ok {
			return errors.Errorf("prefix %q is already defined", k)
		}
		r.prefixIndex[k] = p
		r.prefixes = append(r.prefixes, prefixKey{key: k, p: p})
	}
	// Longest spellings first, so that "da" is tried before "d".
	sort.SliceStable(r.prefixes, func(i, j int) bool {
		return len(r.prefixes[i].key) > len(r.prefixes[j].key)
	})
	return nil
}

func (r *Registry) defineUnit(name, value, symbol string, aliases []string) error {
	if _, ok := r.defs[name]; ok {
		return errors.Errorf("unit %q is already defined", name)
	}
	d := &definition{name: name, symbol: symbol, aliases: aliases}
	switch {
	case strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]"):
		d.root = true
		d.factor = 1
		d.dims = unit.Dimensions{}
		if dn := strings.TrimSpace(value[1 : len(value)-1]); dn != "" {
			dim := dimension(dn)
			d.dims[dim] = 1
			if b, ok := r.base[dim]; ok {
				return errors.Errorf("dimension [%s] already has root unit %s", dn, b)
			}
			r.base[dim] = name
		}
	default:
		if f, err := r.number(value); err == nil {
			d.factor = f
			d.dims = unit.Dimensions{}
			break
		}
		v, err := unitexpr.ParseEval(value, r.scope(), unitexpr.ImplicitMultiplication())
		if err != nil {
			return errors.Wrapf(err, "unit %s", name)
		}
		t := v.(*term)
		f, dims := r.reduce(t.c)
		d.factor = t.mag * f
		d.dims = dims
	}

	r.defs[name] = d
	r.order = append(r.order, d)
	if len(d.dims) == 0 && !d.root {
		r.constants[name] = d.factor
	}
	for _, k := range append([]string{symbol}, aliases...) {
		if k == "" {
			continue
		}
		if prev, ok := r.defs[k]; ok {
			r.log().WithFields(logrus.Fields{
				"name":     k,
				"unit":     name,
				"existing": prev.name,
			}).Warn("units: ignoring duplicate unit symbol")
			continue
		}
		r.defs[k] = d
	}
	return nil
}

// number evaluates a purely numeric definition value, which may refer to
// previously defined dimensionless constants.
func (r *Registry) number(value string) (float64, error) {
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f, nil
	}
	if strings.ContainsRune(value, '^') {
		// govaluate reads '^' as xor.
		return 0, errors.Errorf("%q is not a plain number", value)
	}
	expr, err := govaluate.NewEvaluableExpression(value)
	if err != nil {
		return 0, err
	}
	result, err := expr.Evaluate(r.constants)
	if err != nil {
		return 0, err
	}
	f, ok := result.(float64)
	if !ok {
		return 0, errors.Errorf("%q evaluates to %T, not a number", value, result)
	}
	return f, nil
}
