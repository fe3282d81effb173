package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// searchPaths are tried in order when CONFIG_PATH is unset. The server and
// the operator commands (migrate, grant-role, promote-stage) share them, so
// a command run from the install directory picks up the service's file.
var searchPaths = []string{
	"config.yaml",
	"/etc/container-tracker/config.yaml",
}

// Load reads the YAML file named by CONFIG_PATH, or the first existing
// entry of searchPaths, then applies environment overrides and defaults.
// An explicit CONFIG_PATH that does not exist is an error; with no file at
// all the configuration comes from the environment alone.
func Load() (*Config, error) {
	var cfg Config

	path, err := resolvePath()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// resolvePath returns the config file to read, or "" when none exists.
func resolvePath() (string, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}

	for _, path := range searchPaths {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
	}
	return "", nil
}
