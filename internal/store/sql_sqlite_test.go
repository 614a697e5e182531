// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/models"
)

func newSQLiteStorages(t *testing.T) (*DB, *Storages) {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db, NewStorages(db, logger.Nop())
}

func TestSQLite_NcmLookup(t *testing.T) {
	ctx := context.Background()
	_, s := newSQLiteStorages(t)

	require.NoError(t, s.NcmRepository.InsertBatch(ctx, []models.NcmRecord{
		{Ncm: "10063011", Descricao: "Arroz parboilizado"},
		{Ncm: "100630", Descricao: "Arroz semibranqueado", Cclasstrib: "200003", Cst: "200", DescricaoCst: "Alíquota reduzida"},
		{Ncm: "10063021", Descricao: "Arroz polido"},
	}))

	t.Run("exact match wins over earlier prefix rows", func(t *testing.T) {
		rec, err := s.NcmRepository.FindByCode(ctx, "100630")
		require.NoError(t, err)
		assert.Equal(t, "Arroz semibranqueado", rec.Descricao)
		assert.Equal(t, "Alíquota reduzida", rec.DescricaoCst)
	})

	t.Run("prefix takes first row in storage order", func(t *testing.T) {
		rec, err := s.NcmRepository.FindByCode(ctx, "1006")
		require.NoError(t, err)
		assert.Equal(t, "10063011", rec.Ncm)
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		_, err := s.NcmRepository.FindByCode(ctx, "1006_")
		require.ErrorIs(t, err, ErrNcmNotFound)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := s.NcmRepository.FindByCode(ctx, "9999")
		require.ErrorIs(t, err, ErrNcmNotFound)
	})

	count, err := s.NcmRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	deleted, err := s.NcmRepository.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestSQLite_LeadLifecycle(t *testing.T) {
	ctx := context.Background()
	_, s := newSQLiteStorages(t)
	repo := s.LeadRepository

	first := models.Lead{Nome: "Ana", Email: "ana@x.com", Telefone: "11", Cnpj: "123", Senha: "hash-1", Ncm: "100630"}
	require.NoError(t, repo.Create(ctx, first))

	// same email again must fail distinctly and leave the first row intact
	err := repo.Create(ctx, models.Lead{Nome: "Other", Email: "ana@x.com", Senha: "hash-2"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	stored, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.Nome)
	assert.Equal(t, "hash-1", stored.Senha)
	assert.False(t, stored.CreatedAt.IsZero())

	require.NoError(t, repo.Create(ctx, models.Lead{Nome: "Bia", Email: "bia@x.com", Senha: "hash-3"}))

	err = repo.Update(ctx, models.LeadUpdate{OldEmail: "bia@x.com", Nome: "Bia", Email: "ana@x.com"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	newHash := "hash-4"
	require.NoError(t, repo.Update(ctx, models.LeadUpdate{
		OldEmail: "ana@x.com", Nome: "Ana Maria", Email: "ana.maria@x.com", Telefone: "22", Cnpj: "456", SenhaHash: &newHash,
	}))

	_, err = repo.FindByEmail(ctx, "ana@x.com")
	require.ErrorIs(t, err, ErrLeadNotFound)

	updated, err := repo.FindByEmail(ctx, "ana.maria@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Nome)
	assert.Equal(t, "hash-4", updated.Senha)
	assert.Equal(t, "100630", updated.Ncm)

	err = repo.Update(ctx, models.LeadUpdate{OldEmail: "ghost@x.com", Email: "ghost@x.com"})
	require.ErrorIs(t, err, ErrLeadNotFound)
}

func TestSQLite_ConcurrentRegistrationSameEmail(t *testing.T) {
	ctx := context.Background()
	_, s := newSQLiteStorages(t)

	const racers = 8
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.LeadRepository.Create(ctx, models.Lead{Nome: "R", Email: "race@x.com", Senha: "h"})
		}()
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrEmailAlreadyExists):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, racers-1, dup)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}
