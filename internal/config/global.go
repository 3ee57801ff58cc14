package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".taskapi"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// LoadGlobalConfig loads the global configuration from ~/.taskapi/config.toml.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadGlobalConfigFromDir(homeDir)
}

// LoadGlobalConfigFromDir loads global config using the specified directory as home.
func LoadGlobalConfigFromDir(homeDir string) (*Config, error) {
	configPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("global config: %w", err)
	}
	return cfg, nil
}
