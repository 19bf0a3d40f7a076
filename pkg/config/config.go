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
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/walteh/rxrename/pkg/template"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrMissingArgument is returned when pattern or template is not set.
	ErrMissingArgument = errors.Base("missing required argument")
	// ErrInvalidPattern is returned when the pattern does not compile.
	ErrInvalidPattern = errors.Base("invalid pattern")
	// ErrUnsupportedFormat is returned for config files no parser handles.
	ErrUnsupportedFormat = errors.Base("unsupported config format")
)

// DefaultRoot is the directory scanned when none is configured
const DefaultRoot = "."

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

// 📚 Config is the configuration of one rename run
type Config struct {
	Root      string   `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty" hcl:"root,optional"`
	Recursive bool     `json:"recursive,omitempty" yaml:"recursive,omitempty" toml:"recursive,omitempty" hcl:"recursive,optional"`
	Folders   bool     `json:"folders,omitempty" yaml:"folders,omitempty" toml:"folders,omitempty" hcl:"folders,optional"`
	Verbose   bool     `json:"verbose,omitempty" yaml:"verbose,omitempty" toml:"verbose,omitempty" hcl:"verbose,optional"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty" hcl:"pattern,optional"`
	Template  string   `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty" hcl:"template,optional"`
	Exclude   []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty" hcl:"exclude,optional"`

	location    string
	templateSet bool
}

// 🎯 Load reads a config file. The result is not validated, pattern and
// template may still come from the command line.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config %s: %w", path, err)
	}
	cfg.location = path

	return cfg, nil
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// SetTemplate sets the template explicitly. An explicit empty template is
// accepted by Validate; every matched entry then fails with an invalid name.
func (cfg *Config) SetTemplate(tmpl string) {
	cfg.Template = tmpl
	cfg.templateSet = true
}

// 🔍 Validate checks required fields and fills defaults
func (cfg *Config) Validate() error {
	if cfg.Pattern == "" {
		return errors.Errorf("pattern is required: %w", ErrMissingArgument)
	}
	if cfg.Template == "" && !cfg.templateSet {
		return errors.Errorf("template is required: %w", ErrMissingArgument)
	}

	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 🧩 Compile compiles the pattern
func (cfg *Config) Compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidPattern, err)
	}
	return re, nil
}

// UnusedPlaceholders returns the template indices that re has no group for.
// Those placeholders can never be filled and stay in every generated name.
func (cfg *Config) UnusedPlaceholders(re *regexp.Regexp) []int {
	var out []int
	for _, i := range template.Placeholders(template.Template(cfg.Template)) {
		if i > re.NumSubexp() {
			out = append(out, i)
		}
	}
	return out
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: %q -> %q (recursive=%t folders=%t)", cfg.Root, cfg.Pattern, cfg.Template, cfg.Recursive, cfg.Folders)
}
