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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "hcl_full",
			filename: "config.hcl",
			config: `
source      = "/tmp/in/a.png"
destination = "/tmp/out/logo.png"
strict      = true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/in/a.png", cfg.Source, "source should match")
				assert.Equal(t, "/tmp/out/logo.png", cfg.Destination, "destination should match")
				assert.True(t, cfg.Strict, "strict should be true")
				assert.False(t, cfg.Glob, "glob should default to false")
			},
		},
		{
			name:     "hcl_glob",
			filename: "config.hcl",
			config: `
source = "/tmp/in/vroomx_final_*.png"
glob   = true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/in/vroomx_final_*.png", cfg.Source, "pattern should be kept as written")
				assert.True(t, cfg.Glob, "glob should be true")
			},
		},
		{
			name:     "yaml_glob",
			filename: "config.yaml",
			config:   "source: /tmp/in/*.png\nglob: true\n",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Glob, "glob should be true")
			},
		},
		{
			name:     "hcl_env_reference",
			filename: "config.hcl",
			config: `
source = "${env.COPYLOGO_TEST_DIR}/a.png"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/from-env/a.png", cfg.Source, "source should use env value")
				assert.Equal(t, DefaultDestination, cfg.Destination, "destination should have default value")
			},
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    "config.hcl",
			config:      `bogus = "x"`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "hcl_syntax_error",
			filename:    "config.hcl",
			config:      `source = `,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:     "yaml_full",
			filename: "config.yaml",
			config: `
source: /tmp/in/a.png
destination: /tmp/out/logo.png
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/in/a.png", cfg.Source, "source should match")
				assert.Equal(t, "/tmp/out/logo.png", cfg.Destination, "destination should match")
				assert.False(t, cfg.Strict, "strict should be false")
			},
		},
		{
			name:     "yaml_empty_uses_defaults",
			filename: "config.yml",
			config:   ``,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultSource, cfg.Source, "source should have default value")
				assert.Equal(t, DefaultDestination, cfg.Destination, "destination should have default value")
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "config.yaml",
			config:      "source: a.png\nretries: 3\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:     "json_paths_kept_verbatim",
			filename: "config.json",
			config:   `{"source": "/tmp/in/../in/a.png", "destination": "/tmp/out//logo.png", "strict": true}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/in/../in/a.png", cfg.Source, "source should be kept as written")
				assert.Equal(t, "/tmp/out//logo.png", cfg.Destination, "destination should be kept as written")
				assert.True(t, cfg.Strict, "strict should be true")
				assert.False(t, cfg.Glob, "glob should default to false")
			},
		},
		{
			name:        "json_unknown_field",
			filename:    "config.json",
			config:      `{"source": "a.png", "checksum": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "unsupported_extension",
			filename:    "config.toml",
			config:      `source = "a.png"`,
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COPYLOGO_TEST_DIR", "/tmp/from-env")

			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			cfg, err := Load(ctx, configPath)

			if tt.wantErr {
				require.Error(t, err, "loading config should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "loading config should succeed")
			tt.check(t, cfg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, DefaultFile)

	t.Run("missing_implicit_file", func(t *testing.T) {
		cfg, err := LoadOrDefault(ctx, missing, false)
		require.NoError(t, err, "missing implicit config should not fail")
		assert.Equal(t, Default(), cfg, "should fall back to defaults")
	})

	t.Run("missing_explicit_file", func(t *testing.T) {
		_, err := LoadOrDefault(ctx, missing, true)
		require.Error(t, err, "missing explicit config should fail")
		assert.Contains(t, err.Error(), "checking config file")
	})

	t.Run("empty_path", func(t *testing.T) {
		cfg, err := LoadOrDefault(ctx, "", true)
		require.NoError(t, err)
		assert.Equal(t, DefaultSource, cfg.Source)
	})

	t.Run("present_file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "present.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`destination = "/tmp/x.png"`), 0644))

		cfg, err := LoadOrDefault(ctx, path, false)
		require.NoError(t, err)
		assert.Equal(t, DefaultSource, cfg.Source, "source should have default value")
		assert.Equal(t, "/tmp/x.png", cfg.Destination, "destination should come from file")
	})
}

func TestValidate(t *testing.T) {
	err := (&Config{Destination: "/tmp/x"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source is required")

	err = (&Config{Source: "/tmp/x"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination is required")

	cfg := &Config{Source: "a/./b.png", Destination: "c//d.png"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "a/./b.png -> c//d.png", cfg.String(), "paths should not be rewritten")
}
