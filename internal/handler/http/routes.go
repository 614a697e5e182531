// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// operational endpoints carry no session
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.sessions.Middleware)

		r.Get("/", h.indexPage)
		r.Get("/lead", h.leadPage)
		r.Get("/login", h.loginPage)
		r.Get("/logout", h.logout)
		r.Get("/perfil", h.profilePage)
		r.Get("/resultado", h.resultPage)
		r.Get("/simulacao", h.simulationPage)

		r.Post("/consultar", h.lookup)
		r.Post("/salvar-lead", h.saveLead)
		r.Post("/api/login", h.login)
		r.Post("/api/perfil", h.updateProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(h.notFound)

	return router
}
