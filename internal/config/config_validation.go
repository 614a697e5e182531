// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Supported record store drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
	DriverLibSQL   = "libsql"
)

// Supported session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Defaults applied to unset fields by [StructuredConfig.applyDefaults].
const (
	DefaultHTTPAddress          = ":5001"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultSessionTTL           = 24 * time.Hour
	DefaultSessionCookieName    = "ncm_session"
	DefaultDriver               = DriverSQLite
	DefaultDSN                  = "ncm.db"
	DefaultPublicURL            = "http://localhost:5001"
	DefaultVersion              = "dev"
	DefaultFromEmail            = "onboarding@resend.dev"
	DefaultFromName             = "Conta Azul - Crédito Tributário"
	DefaultNotifierQueueSize    = 64
	DefaultNotifierSendTimeout  = 10 * time.Second
	DefaultNotifierWorkers      = 2
	DefaultSessionSweepInterval = 10 * time.Minute
)

// applyDefaults fills every unset field with its default value. An empty
// session secret is replaced with 32 random bytes, hex-encoded.
func (cfg *StructuredConfig) applyDefaults() error {
	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)

	setDefault(&cfg.App.SessionTTL, DefaultSessionTTL)
	setDefault(&cfg.App.PasswordCost, bcrypt.DefaultCost)
	setDefault(&cfg.App.PublicURL, DefaultPublicURL)
	setDefault(&cfg.App.Version, DefaultVersion)

	setDefault(&cfg.Storage.DB.Driver, DefaultDriver)
	if cfg.Storage.DB.Driver == DriverSQLite {
		setDefault(&cfg.Storage.DB.DSN, DefaultDSN)
	}
	setDefault(&cfg.Storage.Session.Backend, SessionBackendMemory)
	setDefault(&cfg.Storage.Session.CookieName, DefaultSessionCookieName)

	setDefault(&cfg.Notifier.FromEmail, DefaultFromEmail)
	setDefault(&cfg.Notifier.FromName, DefaultFromName)
	setDefault(&cfg.Notifier.QueueSize, DefaultNotifierQueueSize)
	setDefault(&cfg.Notifier.SendTimeout, DefaultNotifierSendTimeout)

	setDefault(&cfg.Workers.NotifierWorkers, DefaultNotifierWorkers)
	setDefault(&cfg.Workers.SessionSweepInterval, DefaultSessionSweepInterval)

	if cfg.App.SessionSecret == "" {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("error generating session secret: %w", err)
		}
		cfg.App.SessionSecret = hex.EncodeToString(secret)
	}

	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite, DriverLibSQL:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.Storage.Session.RedisURL == "" {
			return fmt.Errorf("%w: redis backend requires a redis URL", ErrInvalidSessionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSessionConfigs, cfg.Storage.Session.Backend)
	}

	if cfg.App.PasswordCost < bcrypt.MinCost || cfg.App.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost must be between %d and %d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.App.SessionTTL < 0 {
		return fmt.Errorf("%w: negative session TTL", ErrInvalidAppConfigs)
	}

	if cfg.Workers.NotifierWorkers < 0 || cfg.Notifier.QueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
