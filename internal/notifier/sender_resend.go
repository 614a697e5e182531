// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"fmt"

	"github.com/resendlabs/resend-go"
)

// ResendSender delivers messages through the Resend API.
type ResendSender struct {
	send func(req *resend.SendEmailRequest) error
}

func NewResendSender(apiKey string) *ResendSender {
	client := resend.NewClient(apiKey)

	return &ResendSender{
		send: func(req *resend.SendEmailRequest) error {
			_, err := client.Emails.Send(req)
			return err
		},
	}
}

// Send delivers msg. The Resend client does not take a context, so ctx is
// only checked before the call.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.send(&resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("%w via Resend: %w", ErrSendingEmail, err)
	}
	return nil
}
