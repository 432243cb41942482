// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/store"
)

// withStore loads config, opens the configured store, then calls fn.
// The store is closed when fn returns.
func withStore(ctx context.Context, fn func(*store.Instrumented) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			logging.Warn().Err(err).Msg("Error closing store")
		}
	}()

	return fn(st)
}
