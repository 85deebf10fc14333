package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "citex"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "CITEX_CONFIG"
)

// Path returns the path to the config file.
// CITEX_CONFIG wins; otherwise XDG_CONFIG_HOME is respected, defaulting to
// ~/.config/citex/config.yml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandTilde(p)
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config file at path, or at Path() when path is empty.
//
// A file named explicitly, by path or by CITEX_CONFIG, must exist. Only the
// XDG default may be missing, in which case Default() is used. Keys absent
// from the file keep their default values. The result is validated.
func Load(path string) (*Config, error) {
	explicit := path != "" || os.Getenv(EnvConfigPath) != ""
	if path == "" {
		path = Path()
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err) && !explicit:
			// Defaults only
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if cfg.Input != "" {
		cfg.Input = ExpandTilde(cfg.Input)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
