// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/MKhiriev/ncm-lead/internal/config"
	"github.com/MKhiriev/ncm-lead/internal/logger"
)

// NewConnectLibSQL opens a remote Turso database through libsql-client-go.
// A non-empty cfg.AuthToken is appended to the DSN as the authToken query
// parameter.
func NewConnectLibSQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, err := libSQLConnString(cfg.DSN, cfg.AuthToken)
	if err != nil {
		log.Err(err).Str("func", "NewConnectLibSQL").Msg("invalid libsql DSN")
		return nil, fmt.Errorf("invalid libsql DSN: %w", err)
	}

	conn, err := sql.Open("libsql", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectLibSQL").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectLibSQL").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectLibSQL").Msg("connected to turso database successfully")

	return &DB{
		DB:                 conn,
		dialect:            "sqlite3",
		placeholder:        sq.Question,
		errorClassificator: NewLibSQLErrorClassifier(),
		logger:             log,
	}, nil
}

func libSQLConnString(dsn, authToken string) (string, error) {
	if authToken == "" {
		return dsn, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("authToken", authToken)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// LibSQLErrorClassifier implements [ErrorClassificator] for the libsql
// remote protocol. The protocol reports SQLite failures as plain text, so the
// SQLite extended result name is the only signal available.
type LibSQLErrorClassifier struct{}

// NewLibSQLErrorClassifier constructs a [LibSQLErrorClassifier].
func NewLibSQLErrorClassifier() *LibSQLErrorClassifier {
	return &LibSQLErrorClassifier{}
}

// Classify treats SQLITE_BUSY as transient.
func (c *LibSQLErrorClassifier) Classify(err error) ErrorClassification {
	if err != nil && strings.Contains(err.Error(), "SQLITE_BUSY") {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *LibSQLErrorClassifier) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_CONSTRAINT_UNIQUE") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
