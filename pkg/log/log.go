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

// Package log sets up the diagnostic logger. Diagnostics go to stderr so
// stdout only carries the rename report.
package log

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// 🎯 Options configures the diagnostic logger
type Options struct {
	Debug   bool // Log at debug level instead of info
	NoColor bool // Disable console colors
	Caller  bool // Add caller information
}

// Level returns the level for the given options
func (o Options) Level() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// 🏭 New creates a console logger writing to w
func New(w io.Writer, opts Options) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	ctx := zerolog.New(console).Level(opts.Level()).With().Timestamp()
	if opts.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// 🎯 NewContext creates a logger writing to w and attaches it to ctx
func NewContext(ctx context.Context, w io.Writer, opts Options) context.Context {
	logger := New(w, opts)
	return logger.WithContext(ctx)
}

// FromContext gets the logger from context. A context without a logger
// yields a disabled logger rather than a panic.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
