// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

// Worker is a background loop that runs until ctx is done.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// Sweeper purges expired entries and reports how many were removed.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Runner is a loop that can be shared by several workers, like a queue
// consumer.
type Runner interface {
	Run(ctx context.Context) error
}
