// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier delivers the welcome email sent after registration.
//
// Registration only enqueues the email on a [Dispatcher]. Workers drain the
// queue in the background, so a slow or failing mail provider never delays
// or fails the registration itself. Nothing is retried.
package notifier

import (
	"context"
	"errors"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
)

var (
	ErrQueueFull         = errors.New("welcome email queue is full")
	ErrDispatcherStopped = errors.New("welcome email dispatcher is stopped")
	ErrSendingEmail      = errors.New("error sending email")
	ErrComposingEmail    = errors.New("error composing email")
)

// Message is a composed transactional email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender delivers composed messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the dispatcher described by cfg. Without a Resend API key the
// emails are only logged.
func New(cfg config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) *Dispatcher {
	composer := NewWelcomeComposer(cfg.Notifier, cfg.App.PublicURL)

	if cfg.Notifier.ResendAPIKey == "" {
		log.Warn().Msg("NOTIFIER_RESEND_API_KEY is not set, welcome emails will only be logged")
		return NewDispatcher(NewLogSender(log), composer, cfg.Notifier.QueueSize, cfg.Notifier.SendTimeout, m, log, WithDisabledDelivery())
	}

	return NewDispatcher(NewResendSender(cfg.Notifier.ResendAPIKey), composer, cfg.Notifier.QueueSize, cfg.Notifier.SendTimeout, m, log)
}
