// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Command planetctl is the admin CLI for the planet catalog. It reads the
// same configuration as the server and talks to the store directly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/planetary/internal/config"
	"github.com/tomtom215/planetary/internal/logging"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "planetctl",
		Short:         "Administer the Star Wars planet catalog",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newListCmd(),
		newLookupCmd(),
		newMigrateFieldsCmd(),
	)

	return rootCmd
}

// loadConfig loads configuration and points the logger at stderr so that
// command output on stdout stays machine readable.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: "console",
		Caller: cfg.Logging.Caller,
	})
	return cfg, nil
}
