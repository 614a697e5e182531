// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle of the whole serving process.
type Server interface {
	// RunServer blocks until a stop signal arrives and everything has shut
	// down.
	RunServer() error

	// Run is RunServer driven by ctx instead of signals.
	Run(ctx context.Context) error
}

// Background is a set of workers that stop when their context ends.
type Background interface {
	Run(ctx context.Context) error
}
