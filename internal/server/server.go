// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/handler"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	background Background
	address    string

	logger *logger.Logger
}

// NewServer builds the HTTP server. background may be nil.
func NewServer(handlers *handler.Handlers, background Background, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}
	return s.serve(ctx, ln)
}

// serve runs the HTTP server and the background workers until ctx ends or
// one of them fails, then shuts the HTTP server down.
func (s *server) serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(ln)
	})

	if s.background != nil {
		g.Go(func() error {
			return s.background.Run(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
