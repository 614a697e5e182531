// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/ncm-lead/internal/app"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/internal/store"
	"github.com/MKhiriev/ncm-lead/internal/validators"
	"github.com/MKhiriev/ncm-lead/models"
)

// lookupService is the concrete implementation of LookupService.
type lookupService struct {
	ncmRepository store.NcmRepository
	validator     validators.Validator
	metrics       *metrics.Metrics
	logger        *logger.Logger
}

// NewLookupService wires a LookupService to the ncm table.
func NewLookupService(ncmRepository store.NcmRepository, validator validators.Validator, m *metrics.Metrics, logger *logger.Logger) LookupService {
	return &lookupService{
		ncmRepository: ncmRepository,
		validator:     validator,
		metrics:       m,
		logger:        logger,
	}
}

// Lookup trims the code, queries the store and on a hit copies the five
// public fields into the session.
//
// Returns:
//   - *ValidationError if the code is blank.
//   - ErrNcmNotFound if neither an exact nor a prefix match exists.
//   - A wrapped storage error otherwise.
func (s *lookupService) Lookup(ctx context.Context, state *models.SessionState, req models.LookupRequest) (models.NcmData, error) {
	log := logger.FromContext(ctx)

	req.Ncm = strings.TrimSpace(req.Ncm)
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("lookup rejected by validator")
		return models.NcmData{}, newValidationError(app.MsgNcmRequired, err)
	}

	record, err := s.ncmRepository.FindByCode(ctx, req.Ncm)
	if errors.Is(err, store.ErrNcmNotFound) {
		s.metrics.ObserveLookup(false)
		log.Debug().Str("ncm", req.Ncm).Msg("ncm not found")
		return models.NcmData{}, ErrNcmNotFound
	}
	if err != nil {
		log.Err(err).Str("ncm", req.Ncm).Msg("ncm lookup ended with error")
		return models.NcmData{}, fmt.Errorf("ncm lookup ended with error: %w", err)
	}

	data := record.Data()
	state.SetNcmData(data)
	s.metrics.ObserveLookup(true)

	return data, nil
}
