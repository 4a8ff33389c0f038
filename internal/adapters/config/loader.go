// Package config loads the nbenv tool configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nbxlab/nbenv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultDebounceMS is the watch-mode coalescing window when the config file
// does not set one.
const DefaultDebounceMS = 50

// Load reads nbenv.yaml, walking up from cwd until one is found, and applies
// defaults. A missing config file is not an error: defaults cover it.
func Load(cwd string) (*Config, error) {
	path, err := findConfigFile(cwd)
	if err != nil {
		return nil, err
	}

	var file File
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(
				zerr.Wrap(err, domain.ErrConfigParseFailed.Error()),
				"file", path,
			)
		}
	}

	cfg := &Config{
		StateDir:   file.StateDir,
		Registries: file.Registries,
		DebounceMS: file.DebounceMS,
	}
	if err := applyDefaults(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func applyDefaults(cfg *Config, configPath string) error {
	// Relative paths in the config file resolve against its directory.
	base := ""
	if configPath != "" {
		base = filepath.Dir(configPath)
	}

	if cfg.StateDir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		cfg.StateDir = filepath.Join(cacheDir, "nbenv")
	} else if !filepath.IsAbs(cfg.StateDir) && base != "" {
		cfg.StateDir = filepath.Join(base, cfg.StateDir)
	}

	for i, reg := range cfg.Registries {
		if !filepath.IsAbs(reg) && base != "" {
			cfg.Registries[i] = filepath.Join(base, reg)
		}
	}
	if len(cfg.Registries) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		cfg.Registries = []string{filepath.Join(home, ".nbenv", "registry")}
	}

	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = DefaultDebounceMS
	}
	return nil
}
