// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/service"
	"github.com/MKhiriev/ncm-lead/internal/session"
	"github.com/MKhiriev/ncm-lead/internal/utils"
	"github.com/MKhiriev/ncm-lead/models"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 64 << 10

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// lookup handles POST /consultar.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	var req models.LookupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.services.LookupService.Lookup(r.Context(), session.State(r.Context()), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// saveLead handles POST /salvar-lead.
func (h *Handler) saveLead(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.LeadService.Register(r.Context(), session.State(r.Context()), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// login handles POST /api/login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.LeadService.Authenticate(r.Context(), session.State(r.Context()), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Success: true, User: user}, http.StatusOK)
}

// updateProfile handles POST /api/perfil. Authentication is checked before
// the body is read.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	state := session.State(r.Context())
	if !h.services.Flow.Authenticated(state) {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.ProfileUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	update, err := h.services.LeadService.UpdateProfile(r.Context(), state, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileUpdateResponse{Success: true, NomeAtualizado: update.NameChanged}, http.StatusOK)
}
