// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ncm-lead/models"
	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces session keys in a shared redis.
const redisKeyPrefix = "ncm-lead:session:"

// RedisStore keeps JSON-encoded states in redis, letting redis expire them.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client. The caller owns its lifecycle.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisStoreFromURL connects to url (e.g. "redis://localhost:6379/0") and
// pings it.
func NewRedisStoreFromURL(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.SessionState, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return decodeState(data)
}

func (s *RedisStore) Set(ctx context.Context, id string, state *models.SessionState, ttl time.Duration) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	if err = s.client.Set(ctx, redisKey(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
