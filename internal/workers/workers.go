// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Workers runs a set of background workers side by side.
type Workers struct {
	workers []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add appends workers. It must not be called after Run.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker and blocks until all of them returned. The first
// error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			err := worker.Run(ctx)
			if err != nil {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker stopped with error")
				return fmt.Errorf("worker %s: %w", worker.Name(), err)
			}
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
