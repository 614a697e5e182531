// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/migrations"
)

// maxTxAttempts bounds how many times a transaction is replayed when the
// driver reports a transient failure.
const maxTxAttempts = 3

// DB is a connection pool bound to one SQL dialect. It knows how to render
// queries for that dialect and how to classify the errors its driver returns.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the record store selected by cfg.Driver and verifies the
// connection with a ping.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	case config.DriverLibSQL:
		db, err = NewConnectLibSQL(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return db, nil
}

// Dialect returns the goose dialect name of the underlying database.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending migrations for the database dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}

// withConn runs fn on a single pooled connection and always returns it to
// the pool.
func (db *DB) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(conn)
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. Transient failures reported by the
// error classifier replay the whole transaction up to maxTxAttempts times.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || !db.retryable(err) || ctx.Err() != nil {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.withTx").
			Int("attempt", attempt).
			Msg("transient database error, replaying transaction")
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
