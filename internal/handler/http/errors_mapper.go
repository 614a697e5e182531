// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ncm-lead/internal/app"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/service"
	"github.com/MKhiriev/ncm-lead/internal/utils"
	"github.com/MKhiriev/ncm-lead/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is ordered: the profile-specific errors wrap the generic
// ones, so they must match first.
var errorStatuses = []errorStatus{
	{ErrInvalidBody, http.StatusBadRequest, app.MsgInvalidBody},
	{service.ErrNcmNotFound, http.StatusNotFound, app.MsgNcmNotFound},
	{service.ErrEmailTakenByAnotherUser, http.StatusBadRequest, app.MsgEmailTakenByAnotherUser},
	{service.ErrDuplicateEmail, http.StatusBadRequest, app.MsgEmailAlreadyExists},
	{service.ErrWrongCurrentPassword, http.StatusBadRequest, app.MsgWrongCurrentPassword},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrLeadNotFound, http.StatusNotFound, app.MsgLeadNotFound},
}

// statusFromError maps a service error to its status code and the message
// shown to the visitor. Unknown errors become a generic 500.
func statusFromError(err error) (int, string) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status, es.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError writes err as an [models.ErrorResponse]. Unexpected errors are
// logged here and never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("request failed")
	}

	body := models.ErrorResponse{Error: message}
	if errors.Is(err, service.ErrNcmNotFound) {
		body.Success = new(bool)
	}
	utils.WriteJSON(w, body, status)
}
