// SPDX-License-Identifier: GPL-2.0-or-later

// Package config holds the tolerances and pass selection of a run.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	qmath "maputils/math"
)

type Passes struct {
	LevelFlags   bool `mapstructure:"levelflags"`
	Broken       bool `mapstructure:"broken"`
	Nodraw       bool `mapstructure:"nodraw"`
	Downward     bool `mapstructure:"downward"`
	MarkErrors   bool `mapstructure:"markErrors"`
	Intersecting bool `mapstructure:"intersecting"`
	Contained    bool `mapstructure:"contained"`
	Snap         bool `mapstructure:"snap"`
}

type Config struct {
	DistanceEpsilon float32 `mapstructure:"distanceEpsilon"`
	LevelHeight     float32 `mapstructure:"levelHeight"`
	NodrawTexture   string  `mapstructure:"nodrawTexture"`
	ErrorTexture    string  `mapstructure:"errorTexture"`
	SafetySuffix    string  `mapstructure:"safetySuffix"`
	ProbeDistance   float32 `mapstructure:"probeDistance"`
	LogLevel        string  `mapstructure:"logLevel"`
	Commit          bool    `mapstructure:"commit"`
	Report          string  `mapstructure:"report"`
	Passes          Passes  `mapstructure:"passes"`
}

// New returns a viper instance with all defaults set. Values may be
// overridden by MAPUTILS_* environment variables, e.g.
// MAPUTILS_PASSES_NODRAW=true.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("distanceEpsilon", qmath.DistanceEpsilon)
	v.SetDefault("levelHeight", qmath.LevelHeight)
	v.SetDefault("nodrawTexture", "tex_common/nodraw")
	v.SetDefault("errorTexture", "tex_common/error")
	v.SetDefault("safetySuffix", ".original")
	v.SetDefault("probeDistance", 0.125)
	v.SetDefault("logLevel", "info")
	v.SetDefault("commit", false)
	v.SetDefault("report", "")

	v.SetDefault("passes.levelflags", false)
	v.SetDefault("passes.broken", false)
	v.SetDefault("passes.nodraw", false)
	v.SetDefault("passes.downward", false)
	v.SetDefault("passes.markErrors", false)
	v.SetDefault("passes.intersecting", false)
	v.SetDefault("passes.contained", false)
	v.SetDefault("passes.snap", false)

	v.SetEnvPrefix("maputils")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path into v. The format follows the
// extension (json, yaml, toml).
func Load(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}
	return nil
}

// Get decodes and checks the settings of v.
func Get(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if c.DistanceEpsilon <= 0 {
		return nil, errors.Errorf("distanceEpsilon must be positive, got %v", c.DistanceEpsilon)
	}
	if c.LevelHeight <= 0 {
		return nil, errors.Errorf("levelHeight must be positive, got %v", c.LevelHeight)
	}
	if c.ProbeDistance <= 0 {
		return nil, errors.Errorf("probeDistance must be positive, got %v", c.ProbeDistance)
	}
	if c.SafetySuffix == "" {
		return nil, errors.New("safetySuffix must not be empty")
	}
	return c, nil
}
