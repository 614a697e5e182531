// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_KeepsCookiesAndStopsAtRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "ncm_session", Value: "abc", Path: "/"})
		http.Redirect(w, r, "/echo", http.StatusFound)
	})
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("ncm_session")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(c.Value))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)

	resp, err := client.R().Get("/set")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, "/echo", resp.Header().Get("Location"))

	resp, err = client.R().Get("/echo")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "abc", resp.String())
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient("http://localhost:5001", time.Second)
	b := NewHTTPClient("http://localhost:5001", time.Second)

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "http://localhost:5001", a.BaseURL)
}
