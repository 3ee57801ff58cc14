package config

import (
	"errors"
	"os"
)

// Resolve merges the configuration layers. Precedence order (highest to lowest):
// 1. Project config (explicitPath if given, else the discovered taskapi.toml)
// 2. Global config (~/.taskapi/config.toml)
// 3. Built-in defaults
func Resolve(explicitPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return ResolveWithHome(homeDir, explicitPath)
}

// ResolveWithHome resolves config using a specified home directory.
// A missing taskapi.toml is not an error; a missing explicitPath is.
func ResolveWithHome(homeDir, explicitPath string) (*Config, error) {
	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	var projectCfg *Config
	if explicitPath != "" {
		projectCfg, err = LoadFile(explicitPath)
	} else {
		projectCfg, err = DiscoverProjectConfig()
		if errors.Is(err, ErrNoProjectConfig) {
			projectCfg, err = &Config{}, nil
		}
	}
	if err != nil {
		return nil, err
	}

	resolved := Defaults()
	resolved.merge(globalCfg)
	resolved.merge(projectCfg)

	return resolved, nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		ServerAddr: DefaultServerAddr,
		Driver:     DefaultDriver,
		DSN:        DefaultDSN,
	}
}

// merge overrides c with every value set in other.
func (c *Config) merge(other *Config) {
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.ServerAddr != "" {
		c.ServerAddr = other.ServerAddr
	}
	if other.CORSOrigins != nil {
		c.CORSOrigins = other.CORSOrigins
	}
	if other.Driver != "" {
		c.Driver = other.Driver
	}
	if other.DSN != "" {
		c.DSN = other.DSN
	}
}
