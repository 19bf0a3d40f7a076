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
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

const shortRevisionLen = 12

// 🏷️ VersionInfo describes the running binary
type VersionInfo struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	Time      string `json:"time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo reads the version of the running binary
func GetVersionInfo() VersionInfo {
	bi, ok := debug.ReadBuildInfo()
	return versionFromBuildInfo(bi, ok)
}

// versionFromBuildInfo fills a VersionInfo from module and vcs build settings
func versionFromBuildInfo(bi *debug.BuildInfo, ok bool) VersionInfo {
	info := VersionInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if !ok || bi == nil {
		return info
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Short returns the version with an abbreviated revision, e.g. "v1.2.0 (3f2c9a1b7d0e, modified)"
func (v VersionInfo) Short() string {
	if v.Revision == "" {
		return v.Version
	}
	rev := v.Revision
	if len(rev) > shortRevisionLen {
		rev = rev[:shortRevisionLen]
	}
	if v.Modified {
		rev += ", modified"
	}
	return fmt.Sprintf("%s (%s)", v.Version, rev)
}

// String returns the full multi-line description
func (v VersionInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rxrename %s\n", v.Short())
	if v.Time != "" {
		fmt.Fprintf(&b, "  built     %s\n", v.Time)
	}
	fmt.Fprintf(&b, "  go        %s\n", v.GoVersion)
	fmt.Fprintf(&b, "  platform  %s\n", v.Platform)
	return b.String()
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := GetVersionInfo()
			out := cmd.OutOrStdout()

			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(info); err != nil {
					return errors.Errorf("encoding version: %w", err)
				}
			case short:
				fmt.Fprintln(out, info.Short())
			default:
				fmt.Fprint(out, info.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
