// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/internal/service"
	"github.com/MKhiriev/ncm-lead/internal/session"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	sessions *session.Manager
	renderer *renderer
	metrics  *metrics.Metrics

	// health is checked by GET /healthz.
	health map[string]Pinger

	requestTimeout time.Duration

	logger *logger.Logger
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithHealthCheck adds a dependency reported by GET /healthz.
func WithHealthCheck(name string, p Pinger) HandlerOption {
	return func(h *Handler) {
		h.health[name] = p
	}
}

// WithRequestTimeout bounds every request's context.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, sessions *session.Manager, m *metrics.Metrics, logger *logger.Logger, opts ...HandlerOption) (*Handler, error) {
	rd, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	h := &Handler{
		services: services,
		sessions: sessions,
		renderer: rd,
		metrics:  m,
		health:   make(map[string]Pinger),
		logger:   logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	logger.Info().Msg("http handler created")
	return h, nil
}
