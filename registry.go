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
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ctessum/unit"
	"github.com/go-faster/errors"
	"github.com/golang/groupcache/lru"
	"github.com/openforcefield/units/internal/hash"
	"github.com/openforcefield/units/unitexpr"
	"github.com/sirupsen/logrus"
)

// DefaultCacheSize is the number of parsed expressions a registry keeps
// unless told otherwise.
const DefaultCacheSize = 512

// Registry holds a set of unit definitions and parses unit expressions
// against them.
type Registry struct {
	// Log receives warnings about the definitions. It defaults to the
	// logrus standard logger.
	Log logrus.FieldLogger

	defs        map[string]*definition // by name, symbol and alias
	order       []*definition
	prefixIndex map[string]*prefix
	prefixes    []prefixKey
	base        map[unit.Dimension]string
	constants   map[string]interface{}

	cacheSize int
	mu        sync.Mutex
	cache     *lru.Cache

	hash string
}

// RegistryOption configures a Registry. Options are applied in order after
// the default definitions have been loaded.
type RegistryOption func(*Registry) error

// Definitions adds the definitions read from rd. source names rd in error
// messages.
func Definitions(rd io.Reader, source string) RegistryOption {
	return func(r *Registry) error {
		return r.load(rd, source)
	}
}

// DefinitionsFile adds the definitions in the file at path. Files with a
// ".toml" extension are read as TOML, anything else as a definitions file.
func DefinitionsFile(path string) RegistryOption {
	return func(r *Registry) error {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "units: opening definitions")
		}
		defer f.Close()
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			return r.loadTOML(f, path)
		}
		return r.load(f, path)
	}
}

// CacheSize sets the number of parsed expressions the registry keeps.
func CacheSize(n int) RegistryOption {
	return func(r *Registry) error {
		if n < 1 {
			return errors.Errorf("units: cache size must be positive, got %d", n)
		}
		r.cacheSize = n
		return nil
	}
}

// Logger sets the logger of the registry. A nil logger selects the logrus
// standard logger.
func Logger(l logrus.FieldLogger) RegistryOption {
	return func(r *Registry) error {
		if l == nil {
			l = logrus.StandardLogger()
		}
		r.Log = l
		return nil
	}
}

// registries holds every registry created in this process by hash, so
// that encoded values can be decoded against the registry that made them.
var registries sync.Map

// NewRegistry returns a registry holding the default definitions, modified
// by opts.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		Log:         logrus.StandardLogger(),
		defs:        make(map[string]*definition),
		prefixIndex: make(map[string]*prefix),
		base:        make(map[unit.Dimension]string),
		constants:   make(map[string]interface{}),
		cacheSize:   DefaultCacheSize,
	}
	if err := r.load(strings.NewReader(defaultDefinitions), "defaults.txt"); err != nil {
		return nil, err
	}
	for _, o := range opts {
		if err := o(r); err != nil {
			return nil, err
		}
	}
	r.cache = lru.New(r.cacheSize)
	r.hash = r.fingerprint()
	registries.LoadOrStore(r.hash, r)
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the registry holding the default definitions.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

func (r *Registry) log() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

// Hash returns a fingerprint of the definitions in r.
func (r *Registry) Hash() string { return r.hash }

type fingerprintEntry struct {
	Name   string
	Factor float64
	Dims   []dimPower
	Root   bool
}

func (r *Registry) fingerprint() string {
	entries := make([]fingerprintEntry, len(r.order))
	for i, d := range r.order {
		entries[i] = fingerprintEntry{Name: d.name, Factor: d.factor, Dims: dimPowers(d.dims), Root: d.root}
	}
	return hash.Hash(entries)
}

// Names returns the canonical names of the units defined in r, in
// definition order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, d := range r.order {
		names[i] = d.name
	}
	return names
}

// BaseUnit returns the name of the root unit of dimension d.
func (r *Registry) BaseUnit(d unit.Dimension) (string, bool) {
	n, ok := r.base[d]
	return n, ok
}

// resolve returns the definition of name, trying in turn the name itself,
// a prefix followed by a defined name, and the singular of a plural.
func (r *Registry) resolve(name string) (*definition, bool) {
	if d, ok := r.defs[name]; ok {
		return d, true
	}
	if d, ok := r.resolvePrefixed(name); ok {
		return d, true
	}
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		singular := name[:len(name)-1]
		if d, ok := r.defs[singular]; ok {
			return d, true
		}
		if d, ok := r.resolvePrefixed(singular); ok {
			return d, true
		}
	}
	return nil, false
}

// resolvePrefixed derives the definition of a prefixed unit such as "kJ".
// The derived definition is named with the full prefix and unit names.
func (r *Registry) resolvePrefixed(name string) (*definition, bool) {
	for _, pk := range r.prefixes {
		if len(name) <= len(pk.key) || !strings.HasPrefix(name, pk.key) {
			continue
		}
		d, ok := r.defs[name[len(pk.key):]]
		if !ok {
			continue
		}
		return &definition{
			name:   pk.p.name + d.name,
			factor: pk.p.factor * d.factor,
			dims:   d.dims,
		}, true
	}
	return nil, false
}

// reduce returns the SI factor and dimensionality of c.
func (r *Registry) reduce(c container) (float64, unit.Dimensions) {
	f := 1.0
	dims := unit.Dimensions{}
	for _, name := range c.names() {
		e := c[name]
		d, ok := r.resolve(name)
		if !ok {
			panic("units: container holds unresolvable name " + name)
		}
		f *= math.Pow(d.factor, float64(e))
		for k, v := range d.dims {
			dims[k] += v * e
		}
	}
	for k, v := range dims {
		if v == 0 {
			delete(dims, k)
		}
	}
	return f, dims
}

// eval parses and evaluates expr, caching the result.
func (r *Registry) eval(expr string) (*term, error) {
	r.mu.Lock()
	if v, ok := r.cache.Get(expr); ok {
		r.mu.Unlock()
		return v.(*term), nil
	}
	r.mu.Unlock()

	v, err := unitexpr.ParseEval(expr, r.scope(), unitexpr.ImplicitMultiplication())
	if err != nil {
		return nil, err
	}
	t := v.(*term)

	r.mu.Lock()
	r.cache.Add(expr, t)
	r.mu.Unlock()
	return t, nil
}

// Unit parses expr as a unit, e.g. "kilojoule / mole".
func (r *Registry) Unit(expr string) (*Unit, error) {
	t, err := r.eval(expr)
	if err != nil {
		return nil, err
	}
	if t.mag != 1 {
		return nil, errors.Wrapf(ErrNotAUnit, "%q has a factor of %g", expr, t.mag)
	}
	return &Unit{r: r, c: t.c}, nil
}

// MustUnit is like Unit but panics if expr cannot be parsed.
func (r *Registry) MustUnit(expr string) *Unit {
	u, err := r.Unit(expr)
	if err != nil {
		panic(err)
	}
	return u
}

// Dimensionless returns the dimensionless unit of r.
func (r *Registry) Dimensionless() *Unit {
	return &Unit{r: r}
}

// Parse parses expr as a quantity, e.g. "2000.0 * kilocalories_per_mole /
// angstrom ** 2" or "300 K".
func (r *Registry) Parse(expr string) (*Quantity, error) {
	t, err := r.eval(expr)
	if err != nil {
		return nil, err
	}
	return &Quantity{magnitude: t.mag, unit: &Unit{r: r, c: t.c}}, nil
}

// Quantity returns magnitude*u. A nil unit is taken as dimensionless.
func (r *Registry) Quantity(magnitude float64, u *Unit) *Quantity {
	if u == nil {
		u = r.Dimensionless()
	}
	return &Quantity{magnitude: magnitude, unit: u}
}

// Measurement returns value ± uncertainty in u.
func (r *Registry) Measurement(value, uncertainty float64, u *Unit) *Measurement {
	return r.Quantity(value, u).PlusMinus(uncertainty)
}

// sortedKeys returns the keys of m in order.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
