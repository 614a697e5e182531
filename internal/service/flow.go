// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/ncm-lead/models"

// Stage is how far a visitor got through lookup → registration.
type Stage int

const (
	// StageFresh means nothing was looked up yet.
	StageFresh Stage = iota
	// StageLookedUp means ncm_data is set.
	StageLookedUp
	// StageIdentified means both ncm_data and lead_data are set.
	StageIdentified
)

func (s Stage) String() string {
	switch s {
	case StageLookedUp:
		return "looked_up"
	case StageIdentified:
		return "identified"
	default:
		return "fresh"
	}
}

// Redirect targets used by the gate.
const (
	PathIndex  = "/"
	PathLogin  = "/login"
	PathResult = "/resultado"
)

// Flow decides which pages a visitor may reach from the contents of their
// session. Authentication is a separate axis from [Stage].
type Flow struct{}

// NewFlow returns the page gate.
func NewFlow() Flow {
	return Flow{}
}

// Stage classifies state.
func (Flow) Stage(state *models.SessionState) Stage {
	switch {
	case state == nil || state.NcmData == nil:
		return StageFresh
	case state.LeadData == nil:
		return StageLookedUp
	default:
		return StageIdentified
	}
}

// Authenticated reports whether the visitor signed in or registered.
func (Flow) Authenticated(state *models.SessionState) bool {
	return state != nil && state.Authenticated
}

// EnterIndex applies the entry page rule: anonymous visitors start over.
// It reports whether the session was reset.
func (f Flow) EnterIndex(state *models.SessionState) bool {
	if state == nil || f.Authenticated(state) || state.IsEmpty() {
		return false
	}
	state.Clear()
	return true
}

// RequireLookedUp gates the lead capture page. When ok is false the visitor
// must be redirected to the returned path.
func (f Flow) RequireLookedUp(state *models.SessionState) (redirect string, ok bool) {
	if f.Stage(state) < StageLookedUp {
		return PathIndex, false
	}
	return "", true
}

// RequireIdentified gates the result and simulation pages.
func (f Flow) RequireIdentified(state *models.SessionState) (redirect string, ok bool) {
	if f.Stage(state) < StageIdentified {
		return PathIndex, false
	}
	return "", true
}

// RequireAuthenticated gates the profile page.
func (f Flow) RequireAuthenticated(state *models.SessionState) (redirect string, ok bool) {
	if !f.Authenticated(state) {
		return PathLogin, false
	}
	return "", true
}

// RequireAnonymous gates the login page: signed-in visitors go home.
func (f Flow) RequireAnonymous(state *models.SessionState) (redirect string, ok bool) {
	if f.Authenticated(state) {
		return PathIndex, false
	}
	return "", true
}
