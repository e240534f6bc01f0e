package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "charts3d"

// Config holds the defaults of the command line flags. Every field can be set from
// the environment with the CHARTS3D_ prefix.
type Config struct {
	Width     float64 `envconfig:"WIDTH" default:"800"`
	Height    float64 `envconfig:"HEIGHT" default:"600"`
	Yaw       float64 `envconfig:"YAW" default:"30"`
	Pitch     float64 `envconfig:"PITCH" default:"20"`
	Distance  float64 `envconfig:"DISTANCE" default:"2.5"`
	Fov       float64 `envconfig:"FOV" default:"45"`
	Format    string  `envconfig:"FORMAT" default:"svg"`
	Delimiter string  `envconfig:"DELIMITER" default:","`
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%s: invalid log level", c.LogLevel)
	}
	return lvl, nil
}

func (c Config) delimiter() (rune, error) {
	rs := []rune(c.Delimiter)
	if len(rs) != 1 {
		return 0, fmt.Errorf("%q: delimiter should be a single character", c.Delimiter)
	}
	return rs[0], nil
}
