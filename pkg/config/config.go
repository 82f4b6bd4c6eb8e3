// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📍 Built-in paths used when no config overrides them
const (
	DefaultSource      = "/Users/reepsy/.gemini/antigravity/brain/08db9f79-2ef1-46e2-b2e1-45fd31e1f095/vroomx_final_v4_dynamic_stroke_1768863843213.png"
	DefaultDestination = "/Users/reepsy/Documents/TRUCKING COMPLIANCE HUB1/logo.png"

	// DefaultFile is the config file looked up in the working directory
	DefaultFile = ".copylogo.hcl"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`           // File to copy
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"` // Where the copy lands
	Strict      bool   `json:"strict,omitempty" yaml:"strict,omitempty"`           // Exit non-zero when the copy fails
	Glob        bool   `json:"glob,omitempty" yaml:"glob,omitempty"`               // Treat Source as a pattern matching exactly one file
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault loads path, falling back to Default when the file is absent.
// A missing file is only an error when the caller asked for it explicitly.
func LoadOrDefault(ctx context.Context, path string, explicit bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("checking config file: %w", err)
	}

	return Load(ctx, path)
}

// 🔧 ApplyDefaults fills empty paths with the built-in ones
func (cfg *Config) ApplyDefaults() {
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if cfg.Destination == "" {
		cfg.Destination = DefaultDestination
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Source == "" {
		return errors.Errorf("source is required")
	}
	if cfg.Destination == "" {
		return errors.Errorf("destination is required")
	}

	// paths are kept as written: the destination is echoed back verbatim
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s", cfg.Source, cfg.Destination)
}
