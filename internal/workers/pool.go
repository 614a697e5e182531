// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
)

type poolWorker struct {
	name   string
	runner Runner
}

func (p *poolWorker) Name() string {
	return p.name
}

func (p *poolWorker) Run(ctx context.Context) error {
	return p.runner.Run(ctx)
}

// NewPool returns size workers consuming the same runner. size below one is
// treated as one.
func NewPool(name string, runner Runner, size int) []Worker {
	if size < 1 {
		size = 1
	}

	pool := make([]Worker, 0, size)
	for i := range size {
		pool = append(pool, &poolWorker{name: fmt.Sprintf("%s-%d", name, i), runner: runner})
	}
	return pool
}
