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

package unitsutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/go-faster/errors"
	"github.com/lnashier/viper"
	"github.com/openforcefield/units"
	"github.com/openforcefield/units/mmunit"
	"github.com/openforcefield/units/openmm"
	"github.com/sirupsen/logrus"
)

// setConfig finds and reads in the configuration file, if there is one,
// and configures logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "openff-units: problem reading configuration file")
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("log_level"))
	if err != nil {
		return errors.Wrap(err, "openff-units: log_level")
	}
	logrus.SetLevel(level)
	return nil
}

// registry returns a units registry configured by cfg.
func registry(cfg *viper.Viper) (*units.Registry, error) {
	opts := []units.RegistryOption{
		units.Logger(logrus.StandardLogger()),
		units.CacheSize(cfg.GetInt("cache_size")),
	}
	for _, f := range cfg.GetStringSlice("definitions") {
		if f = strings.TrimSpace(os.ExpandEnv(f)); f != "" {
			opts = append(opts, units.DefinitionsFile(f))
		}
	}
	r, err := units.NewRegistry(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "openff-units: creating registry")
	}
	return r, nil
}

// converter returns a converter between the registry configured by cfg
// and the default OpenMM namespace.
func converter(cfg *viper.Viper) (*openmm.Converter, error) {
	r, err := registry(cfg)
	if err != nil {
		return nil, err
	}
	c := openmm.NewConverter(r, mmunit.NewNamespace())
	c.Log = logrus.WithField("cmd", "openff-units")
	return c, nil
}

// write writes v to w in the given format.
func write(w io.Writer, v fmt.Stringer, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := fmt.Fprintln(w, v)
		return err
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return errors.Errorf("openff-units: invalid output format %q; valid formats are text, json and yaml", format)
	}
}
