// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads converter settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-xmldict/headword"
	"github.com/ianlewis/go-xmldict/internal/logging"
)

// DefaultOutput is the default output file name.
const DefaultOutput = "dictionary.mdict"

// ErrInvalidConfig indicates a configuration value is invalid.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the converter configuration.
type Config struct {
	// HeadwordTag is the element name or class value marking the headword.
	HeadwordTag string `yaml:"headword-tag"`

	// Strict only accepts headwords inside an entry element.
	Strict bool `yaml:"strict"`

	// Capture is the headword capture mode name.
	Capture string `yaml:"capture"`

	// Headword is the headword policy name.
	Headword string `yaml:"headword"`

	// Join is the content join policy name.
	Join string `yaml:"join"`

	// Output is the output file path.
	Output string `yaml:"output"`

	// Dictzip compresses the output.
	Dictzip bool `yaml:"dictzip"`

	// Jobs is the number of workers. Zero selects the default.
	Jobs int `yaml:"jobs"`

	Log Log `yaml:"log"`
}

// Log is the logging configuration.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		HeadwordTag: headword.DefaultTag,
		Output:      DefaultOutput,
		Log: Log{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load reads the YAML file at path over the default configuration. Unknown
// keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file leaves the defaults.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every value in the configuration is valid.
func (c *Config) Validate() error {
	if c.HeadwordTag == "" {
		return fmt.Errorf("%w: headword-tag is required", ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is required", ErrInvalidConfig)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative: %d", ErrInvalidConfig, c.Jobs)
	}
	if _, err := c.HeadwordOptions(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, logging.ErrInvalidFormat, c.Log.Format)
	}
	return nil
}

// HeadwordOptions returns the headword extraction options.
func (c *Config) HeadwordOptions() (*headword.Options, error) {
	capture, err := headword.ParseCapture(c.Capture)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	policy, err := headword.ParsePolicy(c.Headword)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	join, err := headword.ParseJoin(c.Join)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &headword.Options{
		Tag:     c.HeadwordTag,
		Strict:  c.Strict,
		Capture: capture,
		Policy:  policy,
		Join:    join,
	}, nil
}
