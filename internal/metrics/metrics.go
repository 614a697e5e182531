// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus counters for the lead flow.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values.
const (
	ResultHit      = "hit"
	ResultMiss     = "miss"
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultSent     = "sent"
	ResultFailed   = "failed"
	ResultDropped  = "dropped"
	ResultDisabled = "disabled"
)

// Metrics holds every collector of the application. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Lookups         *prometheus.CounterVec
	Registrations   *prometheus.CounterVec
	Logins          *prometheus.CounterVec
	WelcomeEmails   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates a private registry with the Go and process collectors and all
// application metrics registered on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ncm_lead_lookups_total",
			Help: "NCM lookups by result (hit, miss)",
		}, []string{"result"}),
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ncm_lead_registrations_total",
			Help: "Lead registrations by result (success, failure)",
		}, []string{"result"}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ncm_lead_logins_total",
			Help: "Login attempts by result (success, failure)",
		}, []string{"result"}),
		WelcomeEmails: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ncm_lead_welcome_emails_total",
			Help: "Welcome emails by result (sent, failed, dropped, disabled)",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ncm_lead_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "status"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveLookup counts a lookup hit or miss.
func (m *Metrics) ObserveLookup(found bool) {
	if m == nil {
		return
	}
	result := ResultMiss
	if found {
		result = ResultHit
	}
	m.Lookups.WithLabelValues(result).Inc()
}

// ObserveRegistration counts a registration attempt that reached storage.
func (m *Metrics) ObserveRegistration(err error) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(outcome(err)).Inc()
}

// ObserveLogin counts a login attempt that passed validation.
func (m *Metrics) ObserveLogin(err error) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(outcome(err)).Inc()
}

// ObserveWelcomeEmail counts a welcome email by delivery result.
func (m *Metrics) ObserveWelcomeEmail(result string) {
	if m == nil {
		return
	}
	m.WelcomeEmails.WithLabelValues(result).Inc()
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
