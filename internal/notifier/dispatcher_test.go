// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/resendlabs/resend-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []Message
	err      error
	block    chan struct{}
}

func (s *recordingSender) Send(ctx context.Context, msg Message) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func welcome(to string) models.WelcomeEmail {
	return models.WelcomeEmail{To: to, Nome: "Ana", Senha: "segredo1"}
}

func TestDispatcher_DeliversQueuedEmails(t *testing.T) {
	sender := &recordingSender{}
	m := metrics.New()
	d := NewDispatcher(sender, testComposer(), 4, time.Second, m, logger.Nop())

	require.NoError(t, d.Enqueue(context.Background(), welcome("a@example.com")))
	require.NoError(t, d.Enqueue(context.Background(), welcome("b@example.com")))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- d.Run(ctx) }()

	assert.Eventually(t, func() bool { return sender.count() == 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(metrics.ResultSent)))
}

func TestDispatcher_Enqueue_NeverBlocks(t *testing.T) {
	m := metrics.New()
	d := NewDispatcher(&recordingSender{}, testComposer(), 1, time.Second, m, logger.Nop())

	require.NoError(t, d.Enqueue(context.Background(), welcome("a@example.com")))
	err := d.Enqueue(context.Background(), welcome("b@example.com"))

	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 1, d.Pending())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(metrics.ResultDropped)))
}

func TestDispatcher_SendFailureIsCounted(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	m := metrics.New()
	d := NewDispatcher(sender, testComposer(), 1, time.Second, m, logger.Nop())
	require.NoError(t, d.Enqueue(context.Background(), welcome("a@example.com")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	assert.Equal(t, 1, sender.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(metrics.ResultFailed)))
}

func TestDispatcher_SendTimeout(t *testing.T) {
	sender := &recordingSender{block: make(chan struct{})}
	m := metrics.New()
	d := NewDispatcher(sender, testComposer(), 1, 20*time.Millisecond, m, logger.Nop())
	require.NoError(t, d.Enqueue(context.Background(), welcome("a@example.com")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	assert.Equal(t, 0, sender.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(metrics.ResultFailed)))
}

func TestDispatcher_RejectsAfterStop(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, testComposer(), 1, time.Second, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	assert.ErrorIs(t, d.Enqueue(context.Background(), welcome("a@example.com")), ErrDispatcherStopped)
}

func TestDispatcher_DisabledDelivery(t *testing.T) {
	m := metrics.New()
	d := NewDispatcher(NewLogSender(logger.Nop()), testComposer(), 1, time.Second, m, logger.Nop(), WithDisabledDelivery())
	require.NoError(t, d.Enqueue(context.Background(), welcome("a@example.com")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(metrics.ResultDisabled)))
}

func TestNew_SelectsSender(t *testing.T) {
	cfg := config.StructuredConfig{Notifier: config.Notifier{QueueSize: 2}}

	d := New(cfg, nil, logger.Nop())
	assert.IsType(t, &LogSender{}, d.sender)
	assert.True(t, d.disabled)

	cfg.Notifier.ResendAPIKey = "re_test"
	d = New(cfg, nil, logger.Nop())
	assert.IsType(t, &ResendSender{}, d.sender)
	assert.False(t, d.disabled)
}

func TestResendSender_Send(t *testing.T) {
	var got *resend.SendEmailRequest
	s := &ResendSender{send: func(req *resend.SendEmailRequest) error {
		got = req
		return nil
	}}

	err := s.Send(context.Background(), Message{
		From:    "Conta Azul <onboarding@resend.dev>",
		To:      []string{"ana@example.com"},
		Subject: WelcomeSubject,
		HTML:    "<p>oi</p>",
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Conta Azul <onboarding@resend.dev>", got.From)
	assert.Equal(t, []string{"ana@example.com"}, got.To)
	assert.Equal(t, WelcomeSubject, got.Subject)
	assert.Equal(t, "<p>oi</p>", got.Html)
}

func TestResendSender_Send_Errors(t *testing.T) {
	s := &ResendSender{send: func(*resend.SendEmailRequest) error { return errors.New("401 unauthorized") }}

	err := s.Send(context.Background(), Message{To: []string{"ana@example.com"}})
	assert.ErrorIs(t, err, ErrSendingEmail)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, Message{}), context.Canceled)
}
