package config

import (
	"os"
	"path/filepath"
)

const (
	EnvConfigPath  = "CADKIT_CONFIG"
	ConfigFileName = "cadkit.yaml"
	ConfigDirName  = "cadkit"
)

// FindConfigPath returns the first config file that exists, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func EnsureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
