// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder_AppliesDefaults verifies that building with no
// configs yields a valid config made only of defaults.
func TestBuild_EmptyBuilder_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultSessionTTL, cfg.App.SessionTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.PasswordCost)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, SessionBackendMemory, cfg.Storage.Session.Backend)
	assert.Equal(t, DefaultSessionCookieName, cfg.Storage.Session.CookieName)
	assert.Equal(t, DefaultFromEmail, cfg.Notifier.FromEmail)
	assert.Equal(t, DefaultFromName, cfg.Notifier.FromName)
	assert.Len(t, cfg.App.SessionSecret, 64, "generated secret is 32 hex-encoded bytes")
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:1111"},
			App:    App{SessionSecret: "from-env"},
		},
		&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:2222"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "from-env", cfg.App.SessionSecret)
}

// TestBuild_PostgresWithoutDSN verifies that only the SQLite driver receives
// a default DSN.
func TestBuild_PostgresWithoutDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{Driver: DriverPostgres}},
	})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := &StructuredConfig{}
		require.NoError(t, cfg.applyDefaults())
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "redis without url",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Session.Backend = SessionBackendRedis },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name: "redis with url",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Session.Backend = SessionBackendRedis
				cfg.Storage.Session.RedisURL = "redis://localhost:6379/0"
			},
		},
		{
			name:    "unknown session backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Session.Backend = "cookie" },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordCost = 40 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionTTL = -time.Second },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative workers",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.NotifierWorkers = -1 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that no config is appended when no
// earlier source names a JSON file.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that the JSON file named
// by an earlier source is parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeRawJSON(t, `{"server": {"http_address": "localhost:7000"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "localhost:7000", b.configs[1].Server.HTTPAddress)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing JSON file is
// recorded as a builder error.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithFlags_SetsError_OnUnknownFlag verifies that unknown flags fail the
// build instead of exiting the process.
func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── GetStructuredConfigWith ───────────────────────────────────────────────────

// TestGetStructuredConfigWith_OverrideBeatsEnv verifies that the override
// replaces env values and that untouched fields still come from env.
func TestGetStructuredConfigWith_OverrideBeatsEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("SERVER_ADDRESS", ":7000")

	cfg, err := GetStructuredConfigWith(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "cli.db"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "cli.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
}
