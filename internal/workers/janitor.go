// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/logger"
)

// Janitor calls Sweep on a fixed interval.
type Janitor struct {
	name     string
	sweeper  Sweeper
	interval time.Duration

	logger *logger.Logger
}

func NewJanitor(name string, sweeper Sweeper, interval time.Duration, logger *logger.Logger) *Janitor {
	return &Janitor{
		name:     name,
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (j *Janitor) Name() string {
	return j.name
}

// Run sweeps every interval until ctx is done. Sweep errors are logged and
// the loop carries on.
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed, err := j.sweeper.Sweep(ctx)
			if err != nil {
				j.logger.Err(err).Str("worker", j.name).Msg("sweep ended with error")
				continue
			}
			if removed > 0 {
				j.logger.Debug().Str("worker", j.name).Int("removed", removed).Msg("expired entries removed")
			}
		}
	}
}
