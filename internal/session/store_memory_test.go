// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/ncm-lead/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	state := &models.SessionState{}
	state.SetNcmData(models.NcmData{Ncm: "100630", Descricao: "Arroz"})

	require.NoError(t, s.Set(ctx, "a", state, time.Hour))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, state.NcmData, got.NcmData)
	assert.False(t, got.Dirty())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	state := &models.SessionState{}
	state.SignIn("ana@example.com", "Ana")
	require.NoError(t, s.Set(ctx, "a", state, time.Hour))

	state.SetUserName("changed")
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	got.SetUserEmail("mutated@example.com")

	again, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.UserName)
	assert.Equal(t, "ana@example.com", again.UserEmail)
}

func TestMemoryStore_Missing(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", &models.SessionState{Authenticated: true}, time.Minute))
	require.NoError(t, s.Set(ctx, "long", &models.SessionState{Authenticated: true}, time.Hour))

	now = now.Add(2 * time.Minute)

	_, err := s.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Get(ctx, "long")
	assert.NoError(t, err)

	removed, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", &models.SessionState{Authenticated: true}, time.Hour))

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s-%d", i%4)
			_ = s.Set(ctx, id, &models.SessionState{Authenticated: true, UserEmail: id}, time.Hour)
			_, _ = s.Get(ctx, id)
			_, _ = s.Sweep(ctx)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, s.Len())
}
