package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/taskapi/taskapi/internal/api"
	"github.com/taskapi/taskapi/internal/config"
	"github.com/taskapi/taskapi/internal/server"
	"github.com/taskapi/taskapi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "taskd",
	Short: "Task list backend",
	Long:  `Serves the /api/tasks REST API backed by SQLite or PostgreSQL.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return run(cfg, newLogger(verbose))
	},
}

var (
	configPath string
	verbose    bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Path to config file (default: discover "+config.ConfigFileName+")")
	flags.String("addr", "", "Address to listen on (default "+config.DefaultServerAddr+")")
	flags.String("driver", "", "Storage driver: sqlite3 or postgres")
	flags.String("dsn", "", "Storage data source name")
	flags.StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the file configuration and applies command line flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.ServerAddr, _ = flags.GetString("addr")
	}
	if flags.Changed("driver") {
		cfg.Driver, _ = flags.GetString("driver")
	}
	if flags.Changed("dsn") {
		cfg.DSN, _ = flags.GetString("dsn")
	}
	if flags.Changed("cors-origin") {
		cfg.CORSOrigins, _ = flags.GetStringSlice("cors-origin")
	}

	return cfg, nil
}

func newLogger(verbose bool) logr.Logger {
	if verbose {
		stdr.SetVerbosity(1)
	}
	return stdr.New(log.New(os.Stderr, "[taskd] ", log.LstdFlags))
}

func run(cfg *config.Config, logger logr.Logger) error {
	s, err := store.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	logger.Info("store opened", "driver", cfg.Driver)

	srv := server.New(cfg.ServerAddr, s, api.Options{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Close()
		return err
	}
	return nil
}
