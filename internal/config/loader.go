package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".turtlesim"

// Load loads the configuration for a scenario and validates it.
// Search order: customPath -> ~/.turtlesim/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> hardcoded default.
func Load(id, customPath string) (SimConfig, error) {
	cfg, err := load(id, customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", id, err)
	}
	return cfg, nil
}

func load(id, customPath string) (SimConfig, error) {
	// Try custom path first
	if customPath != "" {
		return readFile(customPath)
	}

	filename := id + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", filename)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(id); data != nil {
		var cfg SimConfig
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Fallback to hardcoded
	if cfg, ok := Default(id); ok {
		return cfg, nil
	}
	return SimConfig{}, fmt.Errorf("config: no configuration for scenario %q", id)
}

func readFile(path string) (SimConfig, error) {
	var cfg SimConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
