// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) FlowClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPFlowClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:5001", want: "http://localhost:5001"},
		{in: "https://ncm.example.com/", want: "https://ncm.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/consultar", r.URL.Path)

		var req models.LookupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Ncm == "100630" {
			writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "NCM não encontrado"})
	}))

	require.NoError(t, c.Lookup(context.Background(), "100630"))

	err := c.Lookup(context.Background(), "99999999")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "NCM não encontrado")
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Senha != "segredo1" {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "E-mail ou senha inválidos"})
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{Success: true, User: models.UserSummary{Nome: "Ana", Email: req.Email}})
	}))

	user, err := c.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Senha: "segredo1"})
	require.NoError(t, err)
	assert.Equal(t, models.UserSummary{Nome: "Ana", Email: "ana@example.com"}, user)

	_, err = c.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Senha: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/perfil", r.URL.Path)
		writeJSON(w, http.StatusOK, models.ProfileUpdateResponse{Success: true, NomeAtualizado: true})
	}))

	resp, err := c.UpdateProfile(context.Background(), models.ProfileUpdateRequest{Nome: "Ana Lima", Email: "ana@example.com"})

	require.NoError(t, err)
	assert.True(t, resp.NomeAtualizado)
}

func TestPage_KeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/consultar", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "ncm_session", Value: "token", Path: "/"})
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	})
	mux.HandleFunc("/lead", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("ncm_session"); err != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte("<html></html>"))
	})
	c := newTestClient(t, mux)

	page, err := c.Page(context.Background(), "/lead")
	require.NoError(t, err)
	assert.True(t, page.Redirected())
	assert.Equal(t, "/", page.Location)

	require.NoError(t, c.Lookup(context.Background(), "100630"))

	page, err = c.Page(context.Background(), "/lead")
	require.NoError(t, err)
	assert.False(t, page.Redirected())
	assert.Equal(t, http.StatusOK, page.Status)
}

func TestVersion(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.AppBuildInfo{Version: "1.0.0", Date: "N/A", Commit: "N/A"})
	}))

	info, err := c.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.Page(context.Background(), "/perfil")

	require.True(t, errors.Is(err, ErrInternalServerError))
	assert.Contains(t, err.Error(), "boom")
}
