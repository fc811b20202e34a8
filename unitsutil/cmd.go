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

// Package unitsutil contains the command-line interface for the units
// registry and the OpenMM toolkit converter.
package unitsutil

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/lnashier/viper"
	"github.com/openforcefield/units"
	"github.com/openforcefield/units/mmunit"
	"github.com/openforcefield/units/openmm"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to openff-units.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "definitions",
			usage: `
              definitions lists files of additional unit definitions to load
              into the registry after the defaults. Files ending in .toml are
              read as TOML tables of [[unit]] and [[prefix]] entries; other
              files use the "name = value = symbol = alias" line format.
              Paths can include environment variables.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "log_level",
			usage: `
              log_level sets the logging level: one of debug, info, warn or
              error. Fallback conversions through base units are logged at
              debug level.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "format",
			usage: `
              format specifies the output format: text, json or yaml.`,
			shorthand:  "f",
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "cache_size",
			usage: `
              cache_size is the number of parsed unit expressions the
              registry keeps in memory.`,
			defaultVal: units.DefaultCacheSize,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "to",
			usage: `
              to is the unit system to convert into: openmm or openff.`,
			shorthand:  "t",
			defaultVal: string(openmm.TargetOpenMM),
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("OPENFF_UNITS")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case []string:
				set.StringSliceP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(parseCmd)
	Root.AddCommand(serializeCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "openff-units",
	Short: "Convert units between the OpenFF and OpenMM unit systems.",
	Long: `openff-units parses unit expressions with the OpenFF unit registry
and converts quantities to and from the unit system of the OpenMM toolkit.
Use the subcommands specified below to access this functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'OPENFF_UNITS_var' where
'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of OpenFF Units.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "OpenFF Units v%s\n", units.Version)
	},
	DisableAutoGenTag: true,
}

// convertCmd converts a quantity between the two unit systems.
var convertCmd = &cobra.Command{
	Use:   "convert magnitude unit...",
	Short: "Convert a quantity between unit systems",
	Long: `convert converts the quantity 'magnitude unit' into the unit system
given by --to. With --to=openmm the unit is an OpenFF unit expression such as
"kilocalorie / mole / angstrom ** 2". With --to=openff it is an OpenMM unit
expression such as "kilocalories_per_mole / angstrom ** 2".
Units that OpenMM does not define are converted through base units.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mag, err := cast.ToFloat64E(args[0])
		if err != nil {
			return errors.Wrapf(err, "openff-units: invalid magnitude %q", args[0])
		}
		c, err := converter(Cfg)
		if err != nil {
			return err
		}
		res, err := Convert(c, mag, strings.Join(args[1:], " "), openmm.Target(Cfg.GetString("to")))
		if err != nil {
			return err
		}
		return write(cmd.OutOrStdout(), res, Cfg.GetString("format"))
	},
	DisableAutoGenTag: true,
}

// parseCmd parses an OpenFF unit expression.
var parseCmd = &cobra.Command{
	Use:   "parse expression...",
	Short: "Parse an OpenFF unit expression",
	Long: `parse parses a quantity or unit expression with the OpenFF unit
registry and prints its canonical form, its dimensionality and its value in
base units.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := registry(Cfg)
		if err != nil {
			return err
		}
		res, err := Parse(r, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return write(cmd.OutOrStdout(), res, Cfg.GetString("format"))
	},
	DisableAutoGenTag: true,
}

// serializeCmd round-trips an OpenMM unit expression.
var serializeCmd = &cobra.Command{
	Use:   "serialize expression...",
	Short: "Print the canonical string of an OpenMM unit",
	Long: `serialize evaluates an OpenMM unit expression such as
"kilojoule/(nanometer**2*mole)" and prints the canonical string that is
passed to the OpenFF registry, e.g. "nanometer**-2 * mole**-1 * kilojoule".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := converter(Cfg)
		if err != nil {
			return err
		}
		res, err := Serialize(c, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return write(cmd.OutOrStdout(), res, Cfg.GetString("format"))
	},
	DisableAutoGenTag: true,
}

// ConvertResult is the output of the convert command.
type ConvertResult struct {
	Input     string  `json:"input"`
	Target    string  `json:"target"`
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
	Quantity  string  `json:"quantity"`
}

func (r *ConvertResult) String() string {
	return fmt.Sprintf("%s\n%s", r.Quantity, r.Unit)
}

// Convert converts mag*expr into the unit system given by target.
func Convert(c *openmm.Converter, mag float64, expr string, target openmm.Target) (*ConvertResult, error) {
	var in interface{}
	if target == openmm.TargetOpenFF {
		u, err := c.StringToUnit(expr)
		if err != nil {
			return nil, err
		}
		in = mmunit.NewQuantity(mag, u)
	} else {
		q, err := c.Registry.Parse(expr)
		if err != nil {
			return nil, err
		}
		in = q.Scale(mag)
	}
	out, err := c.EnsureQuantity(in, target)
	if err != nil {
		return nil, err
	}
	res := &ConvertResult{
		Input:  fmt.Sprintf("%s %s", cast.ToString(mag), expr),
		Target: string(target),
	}
	switch q := out.(type) {
	case *mmunit.Quantity:
		s, err := openmm.UnitToString(q.Unit)
		if err != nil {
			return nil, err
		}
		res.Magnitude, res.Unit, res.Quantity = q.Value, s, q.String()
	case *units.Quantity:
		res.Magnitude, res.Unit, res.Quantity = q.Magnitude(), q.Units().String(), q.String()
	}
	return res, nil
}

// ParseResult is the output of the parse command.
type ParseResult struct {
	Input          string  `json:"input"`
	Magnitude      float64 `json:"magnitude"`
	Unit           string  `json:"unit"`
	Dimensionality string  `json:"dimensionality"`
	BaseMagnitude  float64 `json:"base_magnitude"`
	BaseUnit       string  `json:"base_unit"`
}

func (r *ParseResult) String() string {
	return fmt.Sprintf("%s %s\n[%s]\n%s %s",
		cast.ToString(r.Magnitude), r.Unit, r.Dimensionality,
		cast.ToString(r.BaseMagnitude), r.BaseUnit)
}

// Parse parses expr with r.
func Parse(r *units.Registry, expr string) (*ParseResult, error) {
	q, err := r.Parse(expr)
	if err != nil {
		return nil, err
	}
	b := q.ToBaseUnits()
	return &ParseResult{
		Input:          expr,
		Magnitude:      q.Magnitude(),
		Unit:           q.Units().String(),
		Dimensionality: units.FormatDimensions(q.Units().Dimensionality()),
		BaseMagnitude:  b.Magnitude(),
		BaseUnit:       b.Units().String(),
	}, nil
}

// SerializeResult is the output of the serialize command.
type SerializeResult struct {
	Input string `json:"input"`
	Unit  string `json:"unit"`
}

func (r *SerializeResult) String() string { return r.Unit }

// Serialize evaluates the OpenMM unit expression expr and returns its
// canonical string.
func Serialize(c *openmm.Converter, expr string) (*SerializeResult, error) {
	u, err := c.StringToUnit(expr)
	if err != nil {
		return nil, err
	}
	s, err := openmm.UnitToString(u)
	if err != nil {
		return nil, err
	}
	return &SerializeResult{Input: expr, Unit: s}, nil
}
