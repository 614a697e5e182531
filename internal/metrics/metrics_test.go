// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveLookup(true)
	m.ObserveLookup(true)
	m.ObserveLookup(false)
	m.ObserveRegistration(nil)
	m.ObserveRegistration(errors.New("dup"))
	m.ObserveLogin(errors.New("bad password"))
	m.ObserveWelcomeEmail(ResultDropped)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues(ResultHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues(ResultMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues(ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues(ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(ResultDropped)))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// two instances must not collide on registration
	a, b := New(), New()
	a.ObserveLookup(true)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Lookups.WithLabelValues(ResultHit)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Lookups.WithLabelValues(ResultHit)))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveLookup(true)
		m.ObserveRegistration(nil)
		m.ObserveLogin(nil)
		m.ObserveWelcomeEmail(ResultSent)
		m.ObserveRequest("/", http.StatusOK, time.Now())
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveLookup(false)
	m.ObserveRequest("/consultar", http.StatusNotFound, time.Now())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `ncm_lead_lookups_total{result="miss"} 1`)
	assert.Contains(t, body, `ncm_lead_http_request_duration_seconds_count{route="/consultar",status="404"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
