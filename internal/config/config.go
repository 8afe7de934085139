// Package config resolves construction-time settings for the task manager.
//
// There are no flags and no environment variables: defaults apply, and an
// optional taskman.toml in the working directory may override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultFileName is the backing task file when nothing overrides it.
	DefaultFileName = "tasks.txt"

	configFileName = "taskman.toml"
)

// Config holds the settings the application is constructed with.
type Config struct {
	// File is the task file path; relative paths resolve against the
	// working directory.
	File string `toml:"file"`
	// Color toggles styled output.
	Color bool `toml:"color"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		File:  DefaultFileName,
		Color: true,
	}
}

// Load returns defaults merged with taskman.toml from dir (the working
// directory when dir is empty). A missing config file is not an error; a
// malformed one is, with defaults returned alongside so the caller can
// report and continue.
func Load(dir string) (*Config, error) {
	cfg := Default()
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, configFileName)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.File == "" {
		cfg.File = DefaultFileName
	}
	return cfg, nil
}
