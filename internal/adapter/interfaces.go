// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter drives the public routes of a running ncm-lead server the
// way a browser would: one cookie jar, no automatic redirects.
//
// Non-2xx answers are mapped to the sentinel errors in errors.go so callers
// can branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/ncm-lead/models"
)

// FlowClient replays the visitor flow against a server.
type FlowClient interface {
	// Lookup posts an NCM code to /consultar.
	Lookup(ctx context.Context, ncm string) error

	// SaveLead posts the capture form to /salvar-lead.
	SaveLead(ctx context.Context, req models.RegisterRequest) error

	// Login posts credentials to /api/login.
	Login(ctx context.Context, req models.LoginRequest) (models.UserSummary, error)

	// UpdateProfile posts a profile edit to /api/perfil.
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.ProfileUpdateResponse, error)

	// Page fetches a page and reports either its status or, for a gate
	// redirect, the target path.
	Page(ctx context.Context, path string) (PageResult, error)

	// Logout ends the session.
	Logout(ctx context.Context) error

	// Version returns the server build info.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}

// PageResult is what a page request produced.
type PageResult struct {
	Status   int
	Location string
}

// Redirected reports whether the page answered with a redirect.
func (p PageResult) Redirected() bool {
	return p.Location != ""
}
