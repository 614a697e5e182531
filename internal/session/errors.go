// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrUnsupportedBackend = errors.New("unsupported session backend")
	ErrEncodingSession    = errors.New("error encoding session state")
	ErrDecodingSession    = errors.New("error decoding session state")
)
