// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/planetary/internal/models"
	"github.com/tomtom215/planetary/internal/store"
)

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored planets",
		Long:  "Lists every planet in the store in insertion order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the planets as a JSON array")

	return cmd
}

func runList(cmd *cobra.Command, asJSON bool) error {
	return withStore(cmd.Context(), func(st *store.Instrumented) error {
		planets, err := st.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing planets: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(planets)
		}

		if len(planets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No planets found.")
			return nil
		}
		return displayPlanets(cmd, planets)
	})
}

func displayPlanets(cmd *cobra.Command, planets []models.Planet) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLIMATE\tTERRAIN\tAPPEARANCES")
	for _, p := range planets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Climate, p.Terrain, p.NAppearances)
	}
	return w.Flush()
}
