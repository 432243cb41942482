// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/planetary/internal/metrics"
)

type fakePinger struct {
	backend string
	fail    atomic.Bool
}

func (f *fakePinger) Ping(context.Context) error {
	if f.fail.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakePinger) Backend() string { return f.backend }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestStoreMonitorService_Interface(t *testing.T) {
	var _ suture.Service = (*StoreMonitorService)(nil)
}

func TestNewStoreMonitorService_Defaults(t *testing.T) {
	svc := NewStoreMonitorService(&fakePinger{}, 0)
	if svc.interval != 30*time.Second {
		t.Errorf("interval = %v, want 30s", svc.interval)
	}
	if svc.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", svc.timeout)
	}
	if svc.String() != "store-monitor" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestStoreMonitorService_TracksAvailability(t *testing.T) {
	store := &fakePinger{backend: "monitor-test"}
	svc := NewStoreMonitorService(store, 10*time.Millisecond)
	gauge := metrics.StoreUp.WithLabelValues("monitor-test")

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	waitFor(t, func() bool { return svc.Checks() >= 1 })
	if !svc.Up() || testutil.ToFloat64(gauge) != 1 {
		t.Errorf("expected store up, gauge %v", testutil.ToFloat64(gauge))
	}

	store.fail.Store(true)
	waitFor(t, func() bool { return !svc.Up() })
	if testutil.ToFloat64(gauge) != 0 {
		t.Errorf("gauge = %v, want 0", testutil.ToFloat64(gauge))
	}

	store.fail.Store(false)
	waitFor(t, svc.Up)

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}
