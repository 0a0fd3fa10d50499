/*
 * MIT License
 *
 * Copyright (c) 2022-2026 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config loads the node configuration from YAML.
//
// A configuration file looks like:
//
//	name: orders
//	schedulers: 8
//	logLevel: info
//	metrics: true
//
// Every field is optional. A zero schedulers value sizes the pool with the
// number of available CPUs.
package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"

	"gopkg.in/yaml.v3"

	gerrors "github.com/tochemey/gonode/errors"
	"github.com/tochemey/gonode/internal/validation"
	"github.com/tochemey/gonode/log"
)

// DefaultName is the node name used when none is configured
const DefaultName = "gonode"

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Config is the node configuration
type Config struct {
	// Name identifies the node in logs and metrics
	Name string `yaml:"name"`
	// Schedulers is the size of the scheduler pool. Zero means runtime.NumCPU()
	Schedulers int `yaml:"schedulers"`
	// LogLevel is one of debug, info, warn, error, fatal, panic
	LogLevel string `yaml:"logLevel"`
	// Metrics enables the OpenTelemetry instruments using the global MeterProvider
	Metrics bool `yaml:"metrics"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Name:       DefaultName,
		Schedulers: 0,
		LogLevel:   log.InfoLevel.String(),
		Metrics:    false,
	}
}

// Load reads and parses the YAML file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML content on top of the default configuration and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, gerrors.NewErrInvalidConfig(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and reports every violation
func (c *Config) Validate() error {
	chain := validation.New(validation.AllErrors()).
		Add(validation.Match("name", namePattern, c.Name)).
		Add(validation.AtLeast("schedulers", 0, c.Schedulers)).
		Add(validation.OneOf("logLevel", c.LogLevel, log.ParseLevel))

	if err := chain.Validate(); err != nil {
		return gerrors.NewErrInvalidConfig(err)
	}
	return nil
}

// Level returns the configured log level, InfoLevel when it cannot be parsed
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// SchedulersCount returns the effective pool size
func (c *Config) SchedulersCount() int {
	if c.Schedulers == 0 {
		return runtime.NumCPU()
	}
	return c.Schedulers
}
