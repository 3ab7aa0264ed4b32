// SPDX-License-Identifier: MIT
// Package: contactnet/cmd/netgen
//
// config.go - YAML config over defaults and validation.

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("netgen: invalid config")

// Config holds the generation parameters. Zero-valued file fields keep
// their defaults; command-line flags override both.
type Config struct {
	Nodes      int          `yaml:"nodes"`
	MeanDegree float64      `yaml:"mean_degree"`
	Seed       int64        `yaml:"seed"`
	Normal     NormalConfig `yaml:"normal"`
	Output     string       `yaml:"output"`
	LogLevel   string       `yaml:"log_level"`
}

// NormalConfig parameterizes the initial node value distribution.
type NormalConfig struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
}

// DefaultConfig returns the defaults used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Nodes:      1000,
		MeanDegree: 4,
		Seed:       1,
		Normal:     NormalConfig{Mean: 0, StdDev: 1},
		LogLevel:   "info",
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects parameters the generator cannot honor.
func (c *Config) Validate() error {
	switch {
	case c.Nodes < 0:
		return fmt.Errorf("nodes=%d: %w", c.Nodes, ErrInvalidConfig)
	case !finite(c.MeanDegree) || c.MeanDegree < 0:
		return fmt.Errorf("mean_degree=%g: %w", c.MeanDegree, ErrInvalidConfig)
	case !finite(c.Normal.Mean):
		return fmt.Errorf("normal.mean=%g: %w", c.Normal.Mean, ErrInvalidConfig)
	case !finite(c.Normal.StdDev) || c.Normal.StdDev < 0:
		return fmt.Errorf("normal.stddev=%g: %w", c.Normal.StdDev, ErrInvalidConfig)
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrInvalidConfig)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
