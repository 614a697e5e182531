// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/ncm-lead/internal/logger"

// Storages aggregates the repositories served by one [DB].
type Storages struct {
	NcmRepository  NcmRepository
	LeadRepository LeadRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		NcmRepository:  NewNcmRepository(db, log),
		LeadRepository: NewLeadRepository(db, log),
	}
}
