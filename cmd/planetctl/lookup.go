// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/planetary/internal/lookup"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAME",
		Short: "Query the film appearance count for a planet",
		Long: `Queries the configured SWAPI endpoint the same way the server does on
create and prints the number of films the first match appeared in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0])
		},
	}
}

func runLookup(cmd *cobra.Command, name string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := lookup.NewClient(&cfg.Lookup)
	if err != nil {
		return fmt.Errorf("creating lookup client: %w", err)
	}

	n, err := client.Appearances(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("looking up %q: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", name, n)
	return nil
}
