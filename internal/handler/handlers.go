// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/handler/http"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/internal/service"
	"github.com/MKhiriev/ncm-lead/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	sessions *session.Manager,
	cfg config.Server,
	m *metrics.Metrics,
	logger *logger.Logger,
	opts ...http.HandlerOption,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts = append(opts, http.WithRequestTimeout(cfg.RequestTimeout))
	httpHandler, err := http.NewHandler(services, sessions, m, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
