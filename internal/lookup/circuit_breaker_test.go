// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package lookup

import (
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_StaysClosedBelowMinRequests(t *testing.T) {
	t.Parallel()

	cb := newCircuitBreaker("test-min", testConfig("http://unused"))
	fail := errors.New("boom")

	for i := 0; i < 2; i++ {
		_, err := cb.execute(func() (int, error) { return 0, fail })
		require.ErrorIs(t, err, fail)
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://unused")
	cfg.BreakerTimeout = 20 * time.Millisecond
	cb := newCircuitBreaker("test-recover", cfg)
	fail := errors.New("boom")

	for i := 0; i < 3; i++ {
		_, _ = cb.execute(func() (int, error) { return 0, fail })
	}
	require.Equal(t, gobreaker.StateOpen, cb.State())

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, cb.State())

	n, err := cb.execute(func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestStateConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		f     float64
		s     string
	}{
		{gobreaker.StateClosed, 0, "closed"},
		{gobreaker.StateHalfOpen, 1, "half-open"},
		{gobreaker.StateOpen, 2, "open"},
		{gobreaker.State(99), -1, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.f, stateToFloat(tt.state))
		assert.Equal(t, tt.s, stateToString(tt.state))
	}
}
