// Copyright 2020-2025 Buf Technologies, Inc.
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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/pl0compile/report"
)

// Artifacts that pl0c compile can write.
const (
	emitTokens   = "tokens"
	emitAST      = "ast"
	emitSemantic = "semantic"
)

var allEmits = []string{emitTokens, emitAST, emitSemantic}

// config holds the settings that can be given in a config file. Flags
// override them.
type config struct {
	OutputDir   string   `toml:"output_dir" yaml:"output_dir"`
	Color       string   `toml:"color" yaml:"color"`
	Parallelism int      `toml:"parallelism" yaml:"parallelism"`
	Recover     bool     `toml:"recover" yaml:"recover"`
	WarnUnused  bool     `toml:"warn_unused" yaml:"warn_unused"`
	LogLevel    string   `toml:"log_level" yaml:"log_level"`
	Emit        []string `toml:"emit" yaml:"emit"`
}

func defaultConfig() config {
	return config{
		OutputDir: "output",
		Color:     "auto",
		LogLevel:  "warn",
		Emit:      slices.Clone(allEmits),
	}
}

// loadConfig reads the config file at path over the defaults. The format
// is chosen by extension: .yaml and .yml are YAML, anything else is TOML.
// An empty path yields the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	var errs []error
	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("invalid color %q: must be auto, always or never", c.Color))
	}
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("invalid parallelism %d: must not be negative", c.Parallelism))
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, err)
	}
	for _, emit := range c.Emit {
		if !slices.Contains(allEmits, emit) {
			errs = append(errs, fmt.Errorf("invalid emit %q: must be one of %s", emit, strings.Join(allEmits, ", ")))
		}
	}
	return errors.Join(errs...)
}

func (c *config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *config) emits(what string) bool {
	return slices.Contains(c.Emit, what)
}

// style picks how diagnostics written to w are rendered.
func (c *config) style(w io.Writer) report.Style {
	switch c.Color {
	case "always":
		return report.Colored
	case "never":
		return report.Monochrome
	}
	if f, ok := w.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return report.Colored
		}
	}
	return report.Monochrome
}
