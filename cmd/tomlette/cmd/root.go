// Package cmd implements the tomlette CLI: get/dump/validate/db-check over
// the tomlette parsing library, grounded on the teacher's cli/cmd package
// (spec.md §10.2 "CLI").
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tomlette",
		Short:        "tomlette",
		SilenceUsage: true,
		Long:         `CLI tool for inspecting and validating tomlette configuration documents.`,
	}

	file     string
	logLevel string

	// toolConfig is the .tomlette.yaml in the current directory, loaded once
	// by loadRootConfig and consulted by validate's mergedOverrides.
	toolConfig ToolConfig
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "", "path to the document to read (falls back to .tomlette.yaml's default_file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "panic, fatal, error, warn, info, debug, or trace")
	cobra.OnInitialize(initLogging, loadRootConfig)
	return rootCmd.Execute()
}

// loadRootConfig reads .tomlette.yaml from the current directory, if any,
// and resolves --file through its alias map and default_file fallback.
func loadRootConfig() {
	cfg, err := loadToolConfig(".")
	if err != nil {
		logger.WithError(err).Warn("could not read .tomlette.yaml, ignoring it")
		return
	}
	toolConfig = cfg

	resolved, err := resolveFile(cfg, file)
	if err == nil {
		file = resolved
	}
}
