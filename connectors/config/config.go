package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	dcfg "prod-stats/domain/config"
)

// Load parses the YAML configuration file at path.
func Load(path string) (*dcfg.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c dcfg.Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return &c, nil
}

// Resolve returns the config path from CONFIG_PATH or the default ./config.yml.
func Resolve() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./config.yml"
}
