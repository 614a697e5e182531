// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/ncm-lead/internal/utils"
	"github.com/MKhiriev/ncm-lead/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod answers requests whose path exists under another method
// with 405 and the list of allowed methods.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				for method := range route.Handlers {
					allowed = append(allowed, method)
				}
				break
			}
		}
		slices.Sort(allowed)

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	}
}
