// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/store"
)

func newMigrateFieldsCmd() *cobra.Command {
	var renames map[string]string

	cmd := &cobra.Command{
		Use:   "migrate-fields",
		Short: "Rename fields on every stored planet",
		Long: `Renames document fields in place, for data written under another schema.

Example:
  planetctl migrate-fields --rename nome=name --rename clima=climate --rename terreno=terrain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateFields(cmd, renames)
		},
	}

	cmd.Flags().StringToStringVar(&renames, "rename", nil, "Field rename as old=new (repeatable)")
	_ = cmd.MarkFlagRequired("rename")

	return cmd
}

func runMigrateFields(cmd *cobra.Command, renames map[string]string) error {
	if len(renames) == 0 {
		return errors.New("at least one --rename old=new is required")
	}

	return withStore(cmd.Context(), func(st *store.Instrumented) error {
		n, err := st.RenameFields(cmd.Context(), renames)
		if err != nil {
			return fmt.Errorf("renaming fields on %s store: %w", st.Backend(), err)
		}

		pairs := make([]string, 0, len(renames))
		for from, to := range renames {
			pairs = append(pairs, from+"="+to)
		}
		sort.Strings(pairs)

		logging.Info().Strs("renames", pairs).Int64("modified", n).Str("backend", st.Backend()).Msg("Field migration complete")
		fmt.Fprintf(cmd.OutOrStdout(), "%d documents updated\n", n)
		return nil
	})
}
