// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/service"
	"github.com/MKhiriev/ncm-lead/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions() *session.Manager {
	cfg := config.StructuredConfig{
		App:     config.App{SessionSecret: "secret", SessionTTL: time.Hour},
		Storage: config.Storage{Session: config.Session{CookieName: "ncm_session"}},
	}
	return session.NewManager(session.NewMemoryStore(), cfg, logger.Nop())
}

func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5001", RequestTimeout: 30 * time.Second}

	h, err := NewHandlers(&service.Services{}, newTestSessions(), cfg, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestSessions(), config.Server{}, nil, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
