// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the optional .methodsig.yaml configuration file.
//
// Example file:
//
//	mode: treesitter
//	output: json
//	max_signature_bytes: 8192
//	metrics_addr: 127.0.0.1:9464
//
// Missing fields keep their defaults. Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/methodsig/internal/contract"
	"github.com/kraklabs/methodsig/pkg/sigparse"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".methodsig.yaml"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI settings.
type Config struct {
	// Mode is the parser backend name ("simple" or "treesitter").
	Mode string `yaml:"mode"`

	// Output is "text" or "json".
	Output string `yaml:"output"`

	// MaxSignatureBytes limits a single signature; 0 disables the limit.
	MaxSignatureBytes int `yaml:"max_signature_bytes"`

	// MetricsAddr is the listen address for /metrics; empty disables it.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:              string(sigparse.DefaultMode),
		Output:            OutputText,
		MaxSignatureBytes: contract.MaxSignatureBytes(),
	}
}

// Load reads path over the defaults. An empty path tries DefaultPath and
// silently falls back to defaults when it does not exist; an explicit path
// that does not exist is an error matching fs.ErrNotExist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := sigparse.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output: unknown format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}
	if c.MaxSignatureBytes < 0 {
		return fmt.Errorf("max_signature_bytes: must not be negative, got %d", c.MaxSignatureBytes)
	}
	return nil
}

// ParserMode returns the validated parser mode.
func (c *Config) ParserMode() sigparse.Mode {
	mode, err := sigparse.ParseMode(c.Mode)
	if err != nil {
		return sigparse.DefaultMode
	}
	return mode
}
