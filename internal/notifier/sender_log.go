// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"strings"

	"github.com/MKhiriev/ncm-lead/internal/logger"
)

// LogSender stands in for a mail provider when none is configured. It logs
// the recipient and subject, never the body, which carries the password.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Warn().
		Str("to", strings.Join(msg.To, ",")).
		Str("subject", msg.Subject).
		Msg("email not sent, mail provider is not configured")
	return nil
}
