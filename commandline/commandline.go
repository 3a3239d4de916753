// SPDX-License-Identifier: GPL-2.0-or-later

// Package commandline defines the flags of maputils and binds them to the
// configuration keys they override.
package commandline

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Args are the values which do not go into the configuration.
type Args struct {
	Map    string
	Config string
	Help   bool
}

type boolFlag struct {
	name  string
	key   string
	usage string
}

var passFlags = []boolFlag{
	{"levelflags", "passes.levelflags", "set level flags from the height of the brushes"},
	{"broken", "passes.broken", "comment brushes which do not form a solid"},
	{"nodraw", "passes.nodraw", "set nodraw on faces hidden by other brushes"},
	{"downward", "passes.downward", "set nodraw on faces pointing down"},
	{"mark-errors", "passes.markErrors", "give broken brushes the error texture"},
	{"intersecting", "passes.intersecting", "comment brushes reaching into other brushes"},
	{"contained", "passes.contained", "comment brushes lying within other brushes"},
	{"snap", "passes.snap", "snap vertices to the grid (not implemented)"},
	{"commit", "commit", "overwrite the map, keeping a copy of the original"},
}

// NewFlagSet returns the flags of the tool.
func NewFlagSet(out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("maputils", pflag.ContinueOnError)
	fs.SetOutput(out)
	for _, f := range passFlags {
		fs.Bool(f.name, false, f.usage)
	}
	fs.String("config", "", "config file (json, yaml or toml)")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("report", "", "write a JSON summary to this file, - for stdout")
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: maputils [flags] file.map\n")
		fs.PrintDefaults()
	}
	return fs
}

// Parse parses args and binds the flags to v, so set flags override the
// config file and defaults.
func Parse(v *viper.Viper, args []string, out io.Writer) (*Args, error) {
	fs := NewFlagSet(out)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return &Args{Help: true}, nil
		}
		return nil, err
	}
	for _, f := range passFlags {
		if err := v.BindPFlag(f.key, fs.Lookup(f.name)); err != nil {
			return nil, errors.Wrapf(err, "binding %s", f.name)
		}
	}
	if err := v.BindPFlag("logLevel", fs.Lookup("log-level")); err != nil {
		return nil, errors.Wrap(err, "binding log-level")
	}
	if err := v.BindPFlag("report", fs.Lookup("report")); err != nil {
		return nil, errors.Wrap(err, "binding report")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.Errorf("expected one map file, got %d arguments", fs.NArg())
	}
	a := &Args{Map: fs.Arg(0)}
	a.Config, _ = fs.GetString("config")
	return a, nil
}
