// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/planetary/internal/supervisor/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastTree(t *testing.T) *SupervisorTree {
	t.Helper()
	tree, err := NewSupervisorTree(discardLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	require.NoError(t, err)
	return tree
}

// countingPinger satisfies services.Pinger.
type countingPinger struct {
	pings atomic.Int32
}

func (p *countingPinger) Ping(context.Context) error {
	p.pings.Add(1)
	return nil
}

func (p *countingPinger) Backend() string { return "badger" }

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree, err := NewSupervisorTree(discardLogger(), TreeConfig{})
	require.NoError(t, err)
	assert.NotNil(t, tree.Root())
	assert.Equal(t, DefaultTreeConfig(), tree.config)

	tree, err = NewSupervisorTree(discardLogger(), TreeConfig{ShutdownTimeout: 3 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, tree.config.ShutdownTimeout)
	assert.Equal(t, DefaultTreeConfig().FailureBackoff, tree.config.FailureBackoff)
}

func TestSupervisorTree_RunsBothLayers(t *testing.T) {
	tree := fastTree(t)

	pinger := &countingPinger{}
	monitor := services.NewStoreMonitorService(pinger, time.Hour)
	api := newFlakyService("api", 0)

	tree.AddDataService(monitor)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	done := tree.ServeBackground(ctx)

	require.Eventually(t, func() bool {
		return monitor.Checks() >= 1 && api.runs.Load() == 1
	}, time.Second, 10*time.Millisecond)
	assert.True(t, monitor.Up())

	cancel()
	select {
	case err := <-done:
		if err != nil {
			assert.True(t, errors.Is(err, context.Canceled), "unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}

	assert.EqualValues(t, 1, api.exits.Load())
	report, err := tree.UnstoppedServiceReport()
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestSupervisorTree_RestartsOnlyTheCrashingService(t *testing.T) {
	tree := fastTree(t)

	data := newFlakyService("data", 2)
	api := newFlakyService("api", 0)
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := tree.ServeBackground(ctx)

	require.Eventually(t, func() bool { return data.runs.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 1, api.runs.Load(), "api layer must not restart when the data layer crashes")

	cancel()
	<-done
}

func TestSupervisorTree_ServeReturnsOnCancel(t *testing.T) {
	tree := fastTree(t)
	tree.AddAPIService(newFlakyService("api", 0))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := tree.Serve(ctx)
	if err != nil {
		assert.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled),
			"unexpected error: %v", err)
	}
}
