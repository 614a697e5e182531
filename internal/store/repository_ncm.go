// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/models"
)

// ncmRepository is the SQL implementation of [NcmRepository].
type ncmRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNcmRepository constructs a [NcmRepository] over db.
func NewNcmRepository(db *DB, logger *logger.Logger) NcmRepository {
	logger.Debug().Msg("creating ncm repository")
	return &ncmRepository{
		db:     db,
		logger: logger,
	}
}

// FindByCode tries an exact match first and falls back to a prefix match.
// Both queries run on the same pooled connection.
func (r *ncmRepository) FindByCode(ctx context.Context, code string) (models.NcmRecord, error) {
	log := logger.FromContext(ctx)

	var found models.NcmRecord
	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		query, args, err := buildFindNcmExactQuery(r.db.builder(), code)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		found, err = scanNcm(conn.QueryRowContext(ctx, query, args...))
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		log.Debug().Str("func", "*ncmRepository.FindByCode").Str("ncm", code).Msg("no exact match, trying prefix")

		query, args, err = buildFindNcmByPrefixQuery(r.db.builder(), code)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		found, err = scanNcm(conn.QueryRowContext(ctx, query, args...))
		return err
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.NcmRecord{}, ErrNcmNotFound
	case err != nil:
		log.Err(err).Str("func", "*ncmRepository.FindByCode").Msg("error looking up ncm")
		return models.NcmRecord{}, err
	}

	return found, nil
}

// DeleteAll empties the ncm table.
func (r *ncmRepository) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllNcmQuery(r.db.builder())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*ncmRepository.DeleteAll").Msg("error deleting ncm rows")
		return 0, err
	}

	return deleted, nil
}

// InsertBatch writes records with one multi-row INSERT inside a transaction.
func (r *ncmRepository) InsertBatch(ctx context.Context, records []models.NcmRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNcmBatchQuery(r.db.builder(), records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*ncmRepository.InsertBatch").Int("batch", len(records)).Msg("error inserting ncm batch")
		return err
	}

	return nil
}

// Count returns the number of ncm rows.
func (r *ncmRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := buildCountNcmQuery(r.db.builder())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ncmRepository.Count").Msg("error counting ncm rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func scanNcm(row *sql.Row) (models.NcmRecord, error) {
	var rec models.NcmRecord
	err := row.Scan(&rec.ID, &rec.Ncm, &rec.Descricao, &rec.Cclasstrib, &rec.Cst, &rec.DescricaoCst)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.NcmRecord{}, err
	case err != nil:
		return models.NcmRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}
