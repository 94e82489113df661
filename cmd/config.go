package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// Config defines the structure of the reading config file, found at
// $XDG_CONFIG_HOME/reading/config.yml (or ~/.config/reading/config.yml).
type Config struct {
	// PlansDirectory overrides where plans are stored. The READING_PLAN_DIR
	// environment variable takes precedence over this setting.
	PlansDirectory string `yaml:"plans_directory"`
	// NoColor disables colored command output.
	NoColor bool `yaml:"no_color"`
}

func configPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "reading", "config.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(home, ".config", "reading", "config.yml"), nil
}

// loadConfig reads the config file. A missing file yields the zero config.
func loadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
