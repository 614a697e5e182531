// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/service"
	"github.com/MKhiriev/ncm-lead/internal/session"
	"github.com/MKhiriev/ncm-lead/models"
)

func newPageData(state *models.SessionState) pageData {
	return pageData{
		Authenticated: state.Authenticated,
		UserName:      state.UserName,
		Ncm:           state.NcmData,
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	if err := h.renderer.render(w, page, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("page could not be rendered")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

// indexPage starts a new flow. Anonymous visitors lose any half-finished
// lookup or registration.
func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	state := session.State(r.Context())
	if h.services.Flow.EnterIndex(state) {
		logger.FromRequest(r).Debug().Msg("anonymous session reset")
	}

	h.renderPage(w, r, pageIndex, newPageData(state))
}

// leadPage asks for the visitor's details after a lookup. A signed-in lead
// skips straight to the result.
func (h *Handler) leadPage(w http.ResponseWriter, r *http.Request) {
	state := session.State(r.Context())
	if path, ok := h.services.Flow.RequireLookedUp(state); !ok {
		redirect(w, r, path)
		return
	}

	identified, err := h.services.LeadService.IdentifyAuthenticated(r.Context(), state)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("signed-in lead could not be loaded")
	}
	if identified {
		redirect(w, r, service.PathResult)
		return
	}

	h.renderPage(w, r, pageLead, newPageData(state))
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	state := session.State(r.Context())
	if path, ok := h.services.Flow.RequireAnonymous(state); !ok {
		redirect(w, r, path)
		return
	}

	h.renderPage(w, r, pageLogin, newPageData(state))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session.State(r.Context()).Clear()
	redirect(w, r, service.PathIndex)
}

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	state := session.State(r.Context())
	if path, ok := h.services.Flow.RequireAuthenticated(state); !ok {
		redirect(w, r, path)
		return
	}

	lead, err := h.services.LeadService.Profile(r.Context(), state)
	switch {
	case errors.Is(err, service.ErrLeadNotFound), errors.Is(err, service.ErrUnauthenticated):
		redirect(w, r, service.PathLogin)
		return
	case err != nil:
		logger.FromRequest(r).Err(err).Msg("profile could not be loaded")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := newPageData(state)
	data.User = &lead
	h.renderPage(w, r, pageProfile, data)
}

func (h *Handler) resultPage(w http.ResponseWriter, r *http.Request) {
	state := session.State(r.Context())
	if path, ok := h.services.Flow.RequireIdentified(state); !ok {
		redirect(w, r, path)
		return
	}

	h.renderPage(w, r, pageResult, newPageData(state))
}

func (h *Handler) simulationPage(w http.ResponseWriter, r *http.Request) {
	state := session.State(r.Context())
	if path, ok := h.services.Flow.RequireIdentified(state); !ok {
		redirect(w, r, path)
		return
	}

	h.renderPage(w, r, pageSimulation, newPageData(state))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
