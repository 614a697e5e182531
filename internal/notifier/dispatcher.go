// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/models"
)

// Dispatcher buffers welcome emails and delivers them from worker
// goroutines started with [Dispatcher.Run].
type Dispatcher struct {
	queue       chan models.WelcomeEmail
	composer    *WelcomeComposer
	sender      Sender
	sendTimeout time.Duration
	disabled    bool
	stopped     atomic.Bool

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDisabledDelivery marks deliveries as "disabled" in metrics. Used
// together with [LogSender].
func WithDisabledDelivery() DispatcherOption {
	return func(d *Dispatcher) {
		d.disabled = true
	}
}

func NewDispatcher(
	sender Sender,
	composer *WelcomeComposer,
	queueSize int,
	sendTimeout time.Duration,
	m *metrics.Metrics,
	logger *logger.Logger,
	opts ...DispatcherOption,
) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}

	d := &Dispatcher{
		queue:       make(chan models.WelcomeEmail, queueSize),
		composer:    composer,
		sender:      sender,
		sendTimeout: sendTimeout,
		metrics:     m,
		logger:      logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Enqueue schedules email without blocking. It returns [ErrQueueFull] when
// the buffer is full and [ErrDispatcherStopped] after shutdown began.
func (d *Dispatcher) Enqueue(ctx context.Context, email models.WelcomeEmail) error {
	if d.stopped.Load() {
		d.metrics.ObserveWelcomeEmail(metrics.ResultDropped)
		return ErrDispatcherStopped
	}

	select {
	case d.queue <- email:
		return nil
	default:
		d.metrics.ObserveWelcomeEmail(metrics.ResultDropped)
		return ErrQueueFull
	}
}

// Run delivers queued emails until ctx is done, then delivers whatever is
// still buffered and returns. Several Run calls may share one Dispatcher.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.stopped.Store(true)
			d.drain()
			return nil
		case email := <-d.queue:
			d.deliver(context.WithoutCancel(ctx), email)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case email := <-d.queue:
			d.deliver(context.Background(), email)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, email models.WelcomeEmail) {
	log := d.logger.With().Str("to", email.To).Logger()

	msg, err := d.composer.Compose(email)
	if err != nil {
		log.Err(err).Msg("welcome email could not be composed")
		d.metrics.ObserveWelcomeEmail(metrics.ResultFailed)
		return
	}

	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	if err = d.sender.Send(ctx, msg); err != nil {
		log.Err(err).Msg("welcome email could not be sent")
		d.metrics.ObserveWelcomeEmail(metrics.ResultFailed)
		return
	}

	if d.disabled {
		d.metrics.ObserveWelcomeEmail(metrics.ResultDisabled)
		return
	}
	log.Info().Msg("welcome email sent")
	d.metrics.ObserveWelcomeEmail(metrics.ResultSent)
}

// Pending returns the number of buffered emails.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}
