package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rxrename/pkg/config"
	"github.com/walteh/rxrename/pkg/testutils"
	"gitlab.com/tozd/go/errors"
)

// isolateConfig keeps user config files out of the test
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name       string
		files      []string
		args       func(dir string) []string
		wantErr    error
		wantStdout string
		wantFiles  []string
		gone       []string
	}{
		{
			name:  "renames_top_level",
			files: []string{"report_2024_07.txt", "sub/report_2024_08.txt"},
			args: func(dir string) []string {
				return []string{"-C", dir, `^(\w+)_(\d{4})_(\d{2})\.txt$`, "$(1)-$(2)-$(3).bak"}
			},
			wantStdout: "1 files matched, 1 files renamed, 0 errors\n",
			wantFiles:  []string{"report-2024-07.bak", "sub/report_2024_08.txt"},
			gone:       []string{"report_2024_07.txt"},
		},
		{
			name:  "recursive_verbose",
			files: []string{"a_old.txt", "sub/b_old.txt"},
			args: func(dir string) []string {
				return []string{"--dir", dir, "-r", "-v", `^(\w+?)_old\.txt$`, "$(1).txt"}
			},
			wantStdout: "a_old.txt -> a.txt\nb_old.txt -> b.txt\n2 files matched, 2 files renamed, 0 errors\n",
			wantFiles:  []string{"a.txt", "sub/b.txt"},
		},
		{
			name:  "exclude_flag",
			files: []string{"a_old.txt", "skip/b_old.txt"},
			args: func(dir string) []string {
				return []string{"-C", dir, "-r", "-x", "skip", `^(\w+?)_old\.txt$`, "$(1).txt"}
			},
			wantStdout: "1 files matched, 1 files renamed, 0 errors\n",
			wantFiles:  []string{"a.txt", "skip/b_old.txt"},
		},
		{
			name:  "invalid_pattern",
			files: []string{"a"},
			args: func(dir string) []string {
				return []string{"-C", dir, "(a", "b"}
			},
			wantErr:   config.ErrInvalidPattern,
			wantFiles: []string{"a"},
		},
		{
			name:  "missing_template",
			files: []string{"a"},
			args: func(dir string) []string {
				return []string{"-C", dir, "a"}
			},
			wantErr:   config.ErrMissingArgument,
			wantFiles: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutils.MakeTree(t, dir, tt.files...)

			stdout, _, err := runCommand(t, tt.args(dir)...)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Empty(t, stdout)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStdout, stdout)
			}

			for _, name := range tt.wantFiles {
				assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(name)))
			}
			for _, name := range tt.gone {
				assert.NoFileExists(t, filepath.Join(dir, filepath.FromSlash(name)))
			}
		})
	}
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCommand(t, "a", "b", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 2 arg(s)")
}

func TestRootCommand_ConfigFile(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	testutils.MakeTree(t, dir, "a_old.txt", "sub/b_old.txt")

	cfgPath := filepath.Join(t.TempDir(), "rename.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
root: `+dir+`
recursive: true
verbose: true
pattern: '^(\w+?)_old\.txt$'
template: '$(1).txt'
`), 0644))

	t.Run("file_values", func(t *testing.T) {
		stdout, _, err := runCommand(t, "-c", cfgPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, "a_old.txt -> a.txt\n")
		assert.Contains(t, stdout, "2 files matched, 2 files renamed, 0 errors\n")
		assert.FileExists(t, filepath.Join(dir, "sub", "b.txt"))
	})

	t.Run("arguments_override_file", func(t *testing.T) {
		stdout, _, err := runCommand(t, "-c", cfgPath, `^(\w)\.txt$`, "$(1).md")
		require.NoError(t, err)
		assert.Contains(t, stdout, "a.txt -> a.md\n")
		assert.FileExists(t, filepath.Join(dir, "a.md"))
		assert.FileExists(t, filepath.Join(dir, "sub", "b.md"))
	})

	t.Run("flags_override_file", func(t *testing.T) {
		stdout, _, err := runCommand(t, "-c", cfgPath, "--recursive=false", `^(\w)\.md$`, "$(1).txt")
		require.NoError(t, err)
		assert.Equal(t, "a.md -> a.txt\n1 files matched, 1 files renamed, 0 errors\n", stdout)
		assert.FileExists(t, filepath.Join(dir, "sub", "b.md"))
	})
}

func TestRootCommand_BadConfigFile(t *testing.T) {
	isolateConfig(t)

	cfgPath := filepath.Join(t.TempDir(), "rename.ini")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pattern=a"), 0644))

	stdout, _, err := runCommand(t, "-c", cfgPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnsupportedFormat), "got %v", err)
	assert.Empty(t, stdout)
}

func TestRootCommand_UnusedPlaceholderWarning(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	testutils.MakeTree(t, dir, "a_1")

	_, stderr, err := runCommand(t, "-C", dir, `^a_(\d)$`, "b_$(1)_$(4)")
	require.NoError(t, err)
	assert.Contains(t, stderr, "$(4)")
	assert.FileExists(t, filepath.Join(dir, "b_1_$(4)"))
}

func TestRootCommand_ExplicitEmptyTemplate(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	testutils.MakeTree(t, dir, "a", "b")

	stdout, _, err := runCommand(t, "-C", dir, "^a$", "")
	require.NoError(t, err, "an empty template fails per entry, not up front")
	assert.Contains(t, stdout, "a: ")
	assert.Contains(t, stdout, "1 files matched, 0 files renamed, 1 errors\n")
	assert.FileExists(t, filepath.Join(dir, "a"))
}
