// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/ncm-lead/models"
)

// LookupService resolves NCM codes for the visitor.
type LookupService interface {
	// Lookup finds code (exact, then prefix) and stores the match in state.
	// On a miss it returns [ErrNcmNotFound] and leaves state untouched.
	Lookup(ctx context.Context, state *models.SessionState, req models.LookupRequest) (models.NcmData, error)
}

// LeadService registers, authenticates and edits leads.
type LeadService interface {
	// Register creates the lead, signs the visitor in and schedules the
	// welcome email.
	Register(ctx context.Context, state *models.SessionState, req models.RegisterRequest) error

	// Authenticate signs the visitor in with email and password.
	Authenticate(ctx context.Context, state *models.SessionState, req models.LoginRequest) (models.UserSummary, error)

	// Profile returns the signed-in lead's public fields. When the lead no
	// longer exists the session is cleared and [ErrLeadNotFound] returned.
	Profile(ctx context.Context, state *models.SessionState) (models.LeadData, error)

	// UpdateProfile edits the signed-in lead, optionally changing the
	// password.
	UpdateProfile(ctx context.Context, state *models.SessionState, req models.ProfileUpdateRequest) (models.ProfileUpdate, error)

	// IdentifyAuthenticated copies a signed-in lead into state.LeadData.
	// It reports false when the visitor is anonymous or the lead vanished.
	IdentifyAuthenticated(ctx context.Context, state *models.SessionState) (bool, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// WelcomeNotifier schedules the welcome email. Implementations must not
// block on delivery.
type WelcomeNotifier interface {
	Enqueue(ctx context.Context, email models.WelcomeEmail) error
}
