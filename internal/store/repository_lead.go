// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/models"
)

// leadRepository is the SQL implementation of [LeadRepository].
//
// Uniqueness of leads.email is enforced by the database; the dialect's
// [ErrorClassificator] turns the driver error into [ErrEmailAlreadyExists].
type leadRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLeadRepository constructs a [LeadRepository] over db.
func NewLeadRepository(db *DB, logger *logger.Logger) LeadRepository {
	logger.Debug().Msg("creating lead repository")
	return &leadRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts lead inside a transaction.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *leadRepository) Create(ctx context.Context, lead models.Lead) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLeadQuery(r.db.builder(), lead)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*leadRepository.Create").Msg("error creating lead")
		return err
	}

	return nil
}

// FindByEmail returns the full lead record, including the password hash.
func (r *leadRepository) FindByEmail(ctx context.Context, email string) (models.Lead, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindLeadByEmailQuery(r.db.builder(), email)
	if err != nil {
		return models.Lead{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lead models.Lead
	err = r.db.withConn(ctx, func(conn *sql.Conn) error {
		var createdAt dbTime
		err := conn.QueryRowContext(ctx, query, args...).Scan(
			&lead.ID, &lead.Nome, &lead.Email, &lead.Telefone, &lead.Cnpj, &lead.Senha, &lead.Ncm, &createdAt,
		)
		lead.CreatedAt = createdAt.Time
		return err
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Lead{}, ErrLeadNotFound
	case err != nil:
		log.Err(err).Str("func", "*leadRepository.FindByEmail").Msg("error finding lead")
		return models.Lead{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return lead, nil
}

// Update rewrites the lead keyed by update.OldEmail.
//
// Error handling:
//   - unique violation on the new email → [ErrEmailAlreadyExists].
//   - no row for the old email → [ErrLeadNotFound].
func (r *leadRepository) Update(ctx context.Context, update models.LeadUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLeadQuery(r.db.builder(), update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrLeadNotFound
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*leadRepository.Update").Msg("error updating lead")
		return err
	}

	return nil
}

// dbTime scans timestamps that drivers hand back as time.Time, text or
// bytes.
type dbTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", s)
}
