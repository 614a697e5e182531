// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/ncm-lead/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{Version: "1.2.0", Date: "2026-10-01", Commit: "abc123"})

	rec := env.do(http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[models.AppBuildInfo](t, rec.Body.Bytes())
	assert.Equal(t, "1.2.0", info.Version)
	assert.Empty(t, rec.Result().Cookies())
}

func TestHealthz(t *testing.T) {
	t.Run("all up", func(t *testing.T) {
		env := newTestEnv(t, WithHealthCheck("db", pingFunc(func(context.Context) error { return nil })))

		rec := env.do(http.MethodGet, "/healthz", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"db":"ok"}}`, rec.Body.String())
	})

	t.Run("dependency down", func(t *testing.T) {
		env := newTestEnv(t,
			WithHealthCheck("db", pingFunc(func(context.Context) error { return nil })),
			WithHealthCheck("redis", pingFunc(func(context.Context) error { return errors.New("connection refused") })),
		)

		rec := env.do(http.MethodGet, "/healthz", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		resp := decodeBody[healthResponse](t, rec.Body.Bytes())
		assert.Equal(t, "unavailable", resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["redis"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodGet, "/login", "", nil)

	rec := env.do(http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/login"`)
}
