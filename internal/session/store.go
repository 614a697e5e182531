// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/models"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Store persists session states by id.
type Store interface {
	// Get returns the state stored under id or [ErrSessionNotFound] when it
	// is missing or expired.
	Get(ctx context.Context, id string) (*models.SessionState, error)

	// Set stores state under id for ttl.
	Set(ctx context.Context, id string, state *models.SessionState, ttl time.Duration) error

	// Delete removes id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// NewStore builds the backend selected by cfg.Backend. The returned close
// function releases the backend's connections.
func NewStore(ctx context.Context, cfg config.Session, log *logger.Logger) (Store, func() error, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		log.Info().Msg("using in-memory session store")
		return NewMemoryStore(), func() error { return nil }, nil
	case BackendRedis:
		store, err := NewRedisStoreFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("using redis session store")
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, cfg.Backend)
	}
}

func encodeState(state *models.SessionState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}
	return data, nil
}

func decodeState(data []byte) (*models.SessionState, error) {
	var state models.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}
	return &state, nil
}
