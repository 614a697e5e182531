// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the ncm and leads tables for
// PostgreSQL and SQLite and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a database.
var ErrNilDB = errors.New("migration error: db is nil")

// migrationDirs maps a goose dialect to its directory in embedMigrations.
var migrationDirs = map[string]string{
	"postgres": "postgres",
	"pgx":      "postgres",
	"sqlite3":  "sqlite",
	"sqlite":   "sqlite",
}

// Migrate applies every pending migration for dialect ("postgres" or
// "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the current schema version recorded by goose.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	if db == nil {
		return 0, ErrNilDB
	}
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db)
}
