package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Task list CLI",
	Long:  `A command line client for a task list served under /api/tasks.`,
}

// Global flags
var (
	jsonOutput bool
	configPath string
	baseURL    string
	verbose    bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output as JSON")
	flags.StringVar(&configPath, "config", "", "Path to config file")
	flags.StringVar(&baseURL, "base-url", "", "API base URL (overrides config)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log each request to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}
