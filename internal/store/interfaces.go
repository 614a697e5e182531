// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/ncm-lead/models"
)

// NcmRepository reads and bulk-loads the ncm reference table.
type NcmRepository interface {
	// FindByCode returns the row whose ncm equals code. When there is none,
	// the first row whose ncm starts with code is returned instead.
	// Returns [ErrNcmNotFound] when neither exists.
	FindByCode(ctx context.Context, code string) (models.NcmRecord, error)

	// DeleteAll removes every row and reports how many were deleted.
	DeleteAll(ctx context.Context) (int64, error)

	// InsertBatch inserts records in a single transaction.
	InsertBatch(ctx context.Context, records []models.NcmRecord) error

	// Count returns the number of rows.
	Count(ctx context.Context) (int64, error)
}

// LeadRepository persists registered leads.
type LeadRepository interface {
	// Create inserts a lead. Returns [ErrEmailAlreadyExists] when the email
	// is taken.
	Create(ctx context.Context, lead models.Lead) error

	// FindByEmail returns the lead with the given email or [ErrLeadNotFound].
	FindByEmail(ctx context.Context, email string) (models.Lead, error)

	// Update rewrites the lead identified by update.OldEmail. The password
	// hash is only touched when update.SenhaHash is set.
	Update(ctx context.Context, update models.LeadUpdate) error
}

// ErrorClassificator interprets driver errors for one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
