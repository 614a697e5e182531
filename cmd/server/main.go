// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/crypto"
	"github.com/MKhiriev/ncm-lead/internal/handler"
	"github.com/MKhiriev/ncm-lead/internal/handler/http"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/internal/notifier"
	"github.com/MKhiriev/ncm-lead/internal/server"
	"github.com/MKhiriev/ncm-lead/internal/service"
	"github.com/MKhiriev/ncm-lead/internal/session"
	"github.com/MKhiriev/ncm-lead/internal/store"
	"github.com/MKhiriev/ncm-lead/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ncm-lead-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("session_backend", cfg.Storage.Session.Backend).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to record store")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	sessionStore, closeSessions, err := session.NewStore(ctx, cfg.Storage.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer closeSessions()

	m := metrics.New()
	dispatcher := notifier.New(*cfg, m, log)

	background := workers.NewWorkers(log, workers.NewPool("notifier", dispatcher, cfg.Workers.NotifierWorkers)...)
	if sweeper, ok := sessionStore.(workers.Sweeper); ok {
		background.Add(workers.NewJanitor("session-janitor", sweeper, cfg.Workers.SessionSweepInterval, log))
	}

	appInfo, err := service.NewAppInfoService(cfg.App, buildDate, buildCommit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app info service")
	}

	services := service.NewServices(
		store.NewStorages(db, log),
		crypto.NewPasswordHasher(cfg.App.PasswordCost),
		dispatcher,
		appInfo,
		m,
		log,
	)

	healthChecks := []http.HandlerOption{http.WithHealthCheck("db", db)}
	if pinger, ok := sessionStore.(http.Pinger); ok {
		healthChecks = append(healthChecks, http.WithHealthCheck("sessions", pinger))
	}

	handlers, err := handler.NewHandlers(services, session.NewManager(sessionStore, *cfg, log), cfg.Server, m, log, healthChecks...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
