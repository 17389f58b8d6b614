// Package config loads the cadkit.yaml settings file.
//
// Lookup order:
//  1. $CADKIT_CONFIG
//  2. ./cadkit.yaml
//  3. ~/.config/cadkit/config.yaml
//
// A missing file means defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Check  CheckConfig  `yaml:"check"`
	Index  IndexConfig  `yaml:"index"`
}

type LogConfig struct {
	// Verbosity as understood by commonlog.Configure; 0 logs notices and above.
	Verbosity int    `yaml:"verbosity"`
	Path      string `yaml:"path,omitempty"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type CheckConfig struct {
	FailOnWarning bool `yaml:"fail_on_warning"`
}

type IndexConfig struct {
	Path string `yaml:"path"`
}

const (
	DefaultFormat    = "line"
	DefaultIndexPath = "./cadkit.db"
)

// Load finds and loads the config file, or returns defaults if none is
// found. The path is empty in that case.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, path, nil
}

func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func DefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Verbosity: 0},
		Output: OutputConfig{Format: DefaultFormat},
		Index:  IndexConfig{Path: DefaultIndexPath},
	}
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Index.Path == "" {
		c.Index.Path = DefaultIndexPath
	}
	if c.Log.Verbosity < 0 {
		c.Log.Verbosity = 0
	}
}
