// Package config loads taskapi.toml files and merges them with the global
// configuration and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigFileName is the name of the project configuration file
	ConfigFileName = "taskapi.toml"

	// DefaultBaseURL is the default API base URL used by the client
	DefaultBaseURL = "http://localhost:8080"

	// DefaultServerAddr is the default listen address of the backend
	DefaultServerAddr = "localhost:8080"

	// Storage drivers accepted in [storage].driver. They match the
	// database/sql driver names registered by internal/store.
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	// DefaultDriver is the default storage driver
	DefaultDriver = DriverSQLite

	// DefaultDSN is the default sqlite database file
	DefaultDSN = "tasks.db"
)

// ErrNoProjectConfig is returned when no taskapi.toml exists in the working
// directory or any of its parents.
var ErrNoProjectConfig = errors.New("no " + ConfigFileName + " found")

// Config holds one layer of configuration. Zero values mean "not set".
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	ServerAddr  string
	CORSOrigins []string
	Driver      string
	DSN         string
}

// configFile represents the raw TOML structure shared by project and
// global config files.
type configFile struct {
	Client  clientSection  `toml:"client"`
	Server  serverSection  `toml:"server"`
	Storage storageSection `toml:"storage"`
}

type clientSection struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

type serverSection struct {
	Addr        string   `toml:"addr"`
	CORSOrigins []string `toml:"cors_origins"`
}

type storageSection struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// DiscoverProjectConfig finds and parses the taskapi.toml file by traversing
// up the directory tree from the current working directory.
func DiscoverProjectConfig() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return discoverProjectConfigFrom(cwd)
}

func discoverProjectConfigFrom(startDir string) (*Config, error) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return LoadFile(configPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoProjectConfig
		}
		dir = parent
	}
}

// LoadFile parses the config file at the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return parse(data)
}

func parse(data []byte) (*Config, error) {
	var raw configFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg := &Config{
		BaseURL:     raw.Client.BaseURL,
		ServerAddr:  raw.Server.Addr,
		CORSOrigins: raw.Server.CORSOrigins,
		Driver:      raw.Storage.Driver,
		DSN:         raw.Storage.DSN,
	}

	if raw.Client.Timeout != "" {
		d, err := time.ParseDuration(raw.Client.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid client timeout %q: %w", raw.Client.Timeout, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid client timeout %q: must not be negative", raw.Client.Timeout)
		}
		cfg.Timeout = d
	}

	if err := validateDriver(cfg.Driver); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateDriver(driver string) error {
	switch driver {
	case "", DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("invalid storage driver %q: must be %s or %s", driver, DriverSQLite, DriverPostgres)
	}
}
