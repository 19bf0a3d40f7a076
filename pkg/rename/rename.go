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

// Package rename decides what happens to a single directory entry.
package rename

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/rxrename/pkg/fsys"
	"github.com/walteh/rxrename/pkg/template"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidName is returned for generated names that are not a single path element.
var ErrInvalidName = errors.Base("generated name is not a valid entry name")

// 📊 Outcome is the classification of one entry
type Outcome int

const (
	NotMatched Outcome = iota // Pattern did not match the name
	Matched                   // Pattern matched, template produced the same name
	Changed                   // Entry was renamed
	Failed                    // Rename was attempted and failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case NotMatched:
		return "not_matched"
	case Matched:
		return "matched"
	case Changed:
		return "changed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Plan pairs a matched name with the name its template produced
type Plan struct {
	Dir     string
	OldName string
	NewName string
}

// OldPath returns the current path of the entry.
func (p Plan) OldPath() string {
	return filepath.Join(p.Dir, p.OldName)
}

// NewPath returns the path the entry is renamed to.
func (p Plan) NewPath() string {
	return filepath.Join(p.Dir, p.NewName)
}

// 🎯 Result is the outcome of classifying one entry.
// Plan is set for every outcome except NotMatched, Err only for Failed.
type Result struct {
	Outcome Outcome
	Plan    Plan
	Err     error
}

// 🔧 Classifier matches entry names and renames the ones whose template output differs
type Classifier struct {
	pattern  *regexp.Regexp
	template template.Template
	fs       fsys.FS
}

// 🏭 NewClassifier creates a new classifier
func NewClassifier(pattern *regexp.Regexp, tmpl template.Template, fs fsys.FS) *Classifier {
	return &Classifier{
		pattern:  pattern,
		template: tmpl,
		fs:       fs,
	}
}

// Plan computes the new name for name without touching the filesystem.
// ok is false when the pattern does not match.
func (c *Classifier) Plan(dir, name string) (plan Plan, ok bool) {
	captures, ok := template.Captures(c.pattern, name)
	if !ok {
		return Plan{}, false
	}
	return Plan{
		Dir:     dir,
		OldName: name,
		NewName: template.Substitute(c.template, captures),
	}, true
}

// 🏃 Classify runs one entry through the match / substitute / rename steps.
func (c *Classifier) Classify(ctx context.Context, dir, name string) Result {
	logger := zerolog.Ctx(ctx)

	plan, ok := c.Plan(dir, name)
	if !ok {
		return Result{Outcome: NotMatched}
	}

	if plan.NewName == plan.OldName {
		logger.Debug().Str("dir", dir).Str("name", name).Msg("name unchanged")
		return Result{Outcome: Matched, Plan: plan}
	}

	if err := validateName(plan.NewName); err != nil {
		return Result{Outcome: Failed, Plan: plan, Err: err}
	}

	if err := c.fs.Rename(plan.OldPath(), plan.NewPath()); err != nil {
		logger.Debug().Err(err).Str("from", plan.OldPath()).Str("to", plan.NewPath()).Msg("rename failed")
		return Result{Outcome: Failed, Plan: plan, Err: err}
	}

	logger.Debug().Str("from", plan.OldPath()).Str("to", plan.NewPath()).Msg("renamed")
	return Result{Outcome: Changed, Plan: plan}
}

// validateName keeps a generated name inside its directory
func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errors.Errorf("%q: %w", name, ErrInvalidName)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return errors.Errorf("%q contains a path separator: %w", name, ErrInvalidName)
	}
	return nil
}
