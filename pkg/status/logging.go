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

package status

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Warner tells the user about entries the walk had to skip
type Warner struct {
	printer *pterm.PrefixPrinter
}

// 🎯 NewWarner creates a warner writing to w (normally stderr)
func NewWarner(w io.Writer) *Warner {
	return &Warner{
		printer: pterm.Warning.WithPrefix(pterm.Prefix{Text: "SKIP", Style: pterm.Warning.Prefix.Style}).WithWriter(w),
	}
}

// 📝 Skipped reports an entry or directory that could not be read
func (w *Warner) Skipped(ctx context.Context, path string, err error) {
	msg := fmt.Sprintf("%s: %v", path, err)
	w.printer.Println(msg)
	zerolog.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("skipped")
}

// ⚠️ Warn reports a non fatal problem that is not tied to an entry
func (w *Warner) Warn(ctx context.Context, msg string) {
	w.printer.WithPrefix(pterm.Prefix{Text: "WARN", Style: pterm.Warning.Prefix.Style}).Println(msg)
	zerolog.Ctx(ctx).Warn().Msg(msg)
}
