package main

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the host environment's search configuration: the index
// search roots in priority order and the target Unity version.
type Config struct {
	Roots   []string `yaml:"roots"`
	Version string   `yaml:"version"`
}

// LoadConfig reads the YAML config at path. A missing file is not an
// error: flags then provide everything.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
