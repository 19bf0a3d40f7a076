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

package operation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/rxrename/pkg/config"
	"github.com/walteh/rxrename/pkg/fsys"
	"github.com/walteh/rxrename/pkg/rename"
	"github.com/walteh/rxrename/pkg/status"
	"github.com/walteh/rxrename/pkg/template"
	"github.com/walteh/rxrename/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains everything a run needs
type Options struct {
	// Config is the merged configuration, validated by Execute
	Config *config.Config
	// FS lists and renames entries
	FS fsys.FS
	// Reporter prints per-entry lines and the summary
	Reporter *status.Reporter
	// Warner prints skipped entries and configuration warnings
	Warner *status.Warner
}

// 🎯 Operation is one rename run
type Operation struct {
	config   *config.Config
	fs       fsys.FS
	reporter *status.Reporter
	warner   *status.Warner
}

// 🏭 New creates a new operation with the given options
func New(opts Options) (*Operation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.FS == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if opts.Warner == nil {
		return nil, errors.Errorf("warner is required")
	}
	return &Operation{
		config:   opts.Config,
		fs:       opts.FS,
		reporter: opts.Reporter,
		warner:   opts.Warner,
	}, nil
}

// 🏃 Execute runs the rename pass and prints the summary. Configuration
// errors are returned before anything is walked or printed. When the walk
// itself fails the totals so far are returned with the error and no summary
// is printed.
func (op *Operation) Execute(ctx context.Context) (status.Totals, error) {
	logger := zerolog.Ctx(ctx)

	if err := op.config.Validate(); err != nil {
		return status.Totals{}, errors.Errorf("validating config: %w", err)
	}

	pattern, err := op.config.Compile()
	if err != nil {
		return status.Totals{}, errors.Errorf("compiling pattern: %w", err)
	}

	walker, err := walk.New(op.fs, walk.Options{
		Recursive:      op.config.Recursive,
		IncludeFolders: op.config.Folders,
		Exclude:        op.config.Exclude,
		OnSkip:         op.warner.Skipped,
	})
	if err != nil {
		return status.Totals{}, errors.Errorf("creating walker: %w", err)
	}

	for _, i := range op.config.UnusedPlaceholders(pattern) {
		op.warner.Warn(ctx, fmt.Sprintf("%s never matches a group: pattern has %d", template.Token(i), pattern.NumSubexp()))
	}

	logger.Debug().
		Str("root", op.config.Root).
		Str("pattern", pattern.String()).
		Str("template", op.config.Template).
		Bool("recursive", op.config.Recursive).
		Bool("folders", op.config.Folders).
		Strs("exclude", op.config.Exclude).
		Msg("starting rename")

	classifier := rename.NewClassifier(pattern, template.Template(op.config.Template), op.fs)

	err = walker.Walk(ctx, op.config.Root, func(ctx context.Context, e walk.Entry) error {
		op.reporter.Report(ctx, classifier.Classify(ctx, e.Dir, e.Name))
		return nil
	})
	if err != nil {
		return op.reporter.Totals(), errors.Errorf("walking %s: %w", op.config.Root, err)
	}

	op.reporter.PrintSummary(ctx)

	return op.reporter.Totals(), nil
}
