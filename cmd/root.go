/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE validates global flags and resolves the
// expansion ceiling from config before any subcommand runs. Commands
// never read config themselves - they call MaxExpansion() and get the
// already-resolved value.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/eglob/internal/config"
	"github.com/jpl-au/eglob/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eglob",
	Short: "Extended glob pattern matching for paths",
	Long:  `Compile and match extended glob patterns (*, ?, **, {a,b}, [0-9]) against slash-separated paths, and find matching files on disk.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Resolve the expansion ceiling: flag wins over config.
		if maxExpansion == 0 {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			maxExpansion = cfg.MaxExpansion()
		}
		if maxExpansion < config.MinMaxExpansion || maxExpansion > config.MaxMaxExpansion {
			return fmt.Errorf("max-expansion must be between %d and %d", config.MinMaxExpansion, config.MaxMaxExpansion)
		}

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and ensures the log is
// closed before exit. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
