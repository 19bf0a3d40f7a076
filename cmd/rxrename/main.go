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

package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	// interrupt cancels the walk between entries instead of killing a rename
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := run(ctx, NewRootCommand(), os.Stderr)

	stop()
	os.Exit(code)
}

// run executes cmd and returns the process exit code
func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		pterm.Error.WithWriter(stderr).Println(err.Error())
		return 1
	}
	return 0
}
