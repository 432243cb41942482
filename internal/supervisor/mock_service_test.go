// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

var errCrash = errors.New("service crashed")

// flakyService crashes on its first crashes runs and then blocks until
// canceled, like a store connection that comes up late.
type flakyService struct {
	name    string
	crashes int32
	runs    atomic.Int32
	exits   atomic.Int32
}

func newFlakyService(name string, crashes int) *flakyService {
	return &flakyService{name: name, crashes: int32(crashes)}
}

func (f *flakyService) Serve(ctx context.Context) error {
	defer f.exits.Add(1)
	if f.runs.Add(1) <= f.crashes {
		return errCrash
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *flakyService) String() string {
	return f.name
}
