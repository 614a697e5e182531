// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/ncm-lead/internal/crypto"
	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/metrics"
	"github.com/MKhiriev/ncm-lead/internal/store"
	"github.com/MKhiriev/ncm-lead/internal/validators"
)

// Services groups the application services consumed by the HTTP handlers.
type Services struct {
	LookupService  LookupService
	LeadService    LeadService
	AppInfoService AppInfoService
	Flow           Flow
}

// NewServices wires every service to the given storages. appInfo is built
// separately because it can fail on missing build metadata.
func NewServices(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	notifier WelcomeNotifier,
	appInfo AppInfoService,
	m *metrics.Metrics,
	logger *logger.Logger,
) *Services {
	validator := validators.NewLeadValidator()

	return &Services{
		LookupService:  NewLookupService(storages.NcmRepository, validator, m, logger),
		LeadService:    NewLeadService(storages.LeadRepository, hasher, validator, notifier, m, logger),
		AppInfoService: appInfo,
		Flow:           NewFlow(),
	}
}
