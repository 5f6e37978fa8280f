package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stage-shift/internal/model"
)

// Config holds server and CLI settings. Everything is optional; unset
// fields fall back to defaults, including the snapshot schema.
type Config struct {
	Addr      string       `yaml:"addr"`
	DBPath    string       `yaml:"dbPath"`
	OutputDir string       `yaml:"outputDir"`
	Schema    model.Schema `yaml:"schema"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:      ":8080",
		DBPath:    "comparisons.db",
		OutputDir: "output",
		Schema:    model.DefaultSchema(),
	}
}

// Load reads a YAML config file and fills unset fields from the defaults.
// An empty path returns the defaults without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	def := Default()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	cfg.Schema = cfg.Schema.WithDefaults()
	return cfg, nil
}
