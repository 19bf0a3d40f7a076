package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// AppName names the XDG config subdirectory
const AppName = "rxrename"

// LocalNames are the config files looked for in the working directory, in order
var LocalNames = []string{
	".rxrename.yaml",
	".rxrename.yml",
	".rxrename.hcl",
	".rxrename.json",
	".rxrename.toml",
}

// UserNames are the config files looked for under the XDG config dirs, in order
var UserNames = []string{
	"config.yaml",
	"config.yml",
	"config.hcl",
	"config.json",
	"config.toml",
}

// 🔍 Discover finds the config file to use: a LocalNames file in dir, then
// a UserNames file under $XDG_CONFIG_HOME/rxrename or $XDG_CONFIG_DIRS.
// An empty path and nil error mean no file exists.
func Discover(ctx context.Context, dir string) (string, error) {
	logger := zerolog.Ctx(ctx)

	for _, name := range LocalNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			logger.Debug().Str("path", path).Msg("found local config")
			return path, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", errors.Errorf("checking %s: %w", path, err)
		}
	}

	for _, name := range UserNames {
		path, err := xdg.SearchConfigFile(filepath.Join(AppName, name))
		if err == nil {
			logger.Debug().Str("path", path).Msg("found user config")
			return path, nil
		}
	}

	return "", nil
}

// 🎯 LoadOrDiscover loads path when set, otherwise the discovered file.
// Without any file it returns an empty Config.
func LoadOrDiscover(ctx context.Context, path, dir string) (*Config, error) {
	if path == "" {
		found, err := Discover(ctx, dir)
		if err != nil {
			return nil, errors.Errorf("discovering config: %w", err)
		}
		if found == "" {
			return &Config{}, nil
		}
		path = found
	}
	return Load(ctx, path)
}
