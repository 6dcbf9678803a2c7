package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.entropy/config.yaml -> ./configs/entropy.yaml -> embedded default.
// Files found on the search path are layered over the defaults, so a partial
// file only overrides the keys it sets.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	paths := []string{userConfigPath("config.yaml"), filepath.Join("configs", "entropy.yaml")}
	for _, path := range paths {
		if path == "" {
			continue
		}
		cfg, found, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		if found {
			return cfg, nil
		}
	}

	return base(), nil
}

// loadFile reads one file from the search path. A missing file is not found;
// a file that exists but cannot be read, parsed or validated is an error.
func loadFile(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, true, nil
}

// base returns the embedded defaults, falling back to the hardcoded ones.
func base() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// parse decodes data on top of the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".entropy", filename)
}
