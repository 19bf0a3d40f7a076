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

	"github.com/rs/zerolog"
	"github.com/walteh/rxrename/pkg/rename"
)

// 📊 Totals counts the outcomes of one run
type Totals struct {
	Matched int // Matched, name unchanged
	Changed int // Renamed
	Failed  int // Rename attempted and failed
}

// Add counts one outcome. NotMatched is not counted.
func (t *Totals) Add(o rename.Outcome) {
	switch o {
	case rename.Matched:
		t.Matched++
	case rename.Changed:
		t.Changed++
	case rename.Failed:
		t.Failed++
	}
}

// Total returns the number of entries that matched the pattern.
func (t Totals) Total() int {
	return t.Matched + t.Changed + t.Failed
}

// Summary returns the one line run summary
func (t Totals) Summary() string {
	return fmt.Sprintf("%d files matched, %d files renamed, %d errors", t.Total(), t.Changed, t.Failed)
}

// 📈 Reporter accumulates Totals and prints per-entry lines
type Reporter struct {
	out       io.Writer
	verbose   bool
	formatter Formatter
	totals    Totals
}

// 🏭 NewReporter creates a new reporter writing to out
func NewReporter(out io.Writer, verbose bool, formatter Formatter) *Reporter {
	if formatter == nil {
		formatter = NewDefaultFormatter(false)
	}
	return &Reporter{
		out:       out,
		verbose:   verbose,
		formatter: formatter,
	}
}

// 📝 Report counts a result and prints its line. Failures are printed even
// when the reporter is not verbose.
func (r *Reporter) Report(ctx context.Context, res rename.Result) {
	r.totals.Add(res.Outcome)
	if res.Outcome == rename.NotMatched {
		return
	}

	event := zerolog.Ctx(ctx).Debug().
		Str("outcome", res.Outcome.String()).
		Str("dir", res.Plan.Dir).
		Str("old", res.Plan.OldName).
		Str("new", res.Plan.NewName)

	switch res.Outcome {
	case rename.Changed:
		event.Msg("entry processed")
		if r.verbose {
			fmt.Fprintln(r.out, r.formatter.FormatChanged(res.Plan.OldName, res.Plan.NewName))
		}
	case rename.Matched:
		event.Msg("entry processed")
		if r.verbose {
			fmt.Fprintln(r.out, r.formatter.FormatUnchanged(res.Plan.OldName))
		}
	case rename.Failed:
		event.Err(res.Err).Msg("entry processed")
		fmt.Fprintln(r.out, r.formatter.FormatFailed(res.Plan.OldName, res.Err))
	}
}

// Totals returns the counts so far.
func (r *Reporter) Totals() Totals {
	return r.totals
}

// 📊 PrintSummary prints the summary line for the counts so far
func (r *Reporter) PrintSummary(ctx context.Context) {
	zerolog.Ctx(ctx).Info().
		Int("matched", r.totals.Total()).
		Int("renamed", r.totals.Changed).
		Int("errors", r.totals.Failed).
		Msg("run complete")
	fmt.Fprintln(r.out, r.formatter.FormatSummary(r.totals))
}
