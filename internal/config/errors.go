// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid record store settings
	// (for example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates invalid session backend settings
	// (for example, the redis backend without a redis URL).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative number of notifier workers).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
