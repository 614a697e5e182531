// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrLeadDataWithoutContext is returned by [SessionState.SetLeadData] when
// neither a looked-up NCM nor an authenticated identity is present.
var ErrLeadDataWithoutContext = errors.New("lead data requires a looked-up ncm or an authenticated user")

// SessionState is the server-side state of one visitor, addressed by an
// opaque session token kept in a cookie.
//
// Fields accumulate across the lookup → registration → result flow and are
// wiped by [SessionState.Clear]. Mutations should go through the methods so
// that the session middleware can tell whether the state must be persisted.
type SessionState struct {
	// Authenticated reports whether the visitor registered or signed in
	// during this session.
	Authenticated bool `json:"user_authenticated"`

	// UserEmail is the email of the authenticated lead.
	UserEmail string `json:"user_email,omitempty"`

	// UserName is the display name of the authenticated lead.
	UserName string `json:"user_name,omitempty"`

	// NcmData is the copy of the last successfully looked-up NCM.
	NcmData *NcmData `json:"ncm_data,omitempty"`

	// LeadData is the copy of the lead's public fields.
	LeadData *LeadData `json:"lead_data,omitempty"`

	dirty bool
}

// Clear resets every field. Clearing an already empty state is a no-op and
// does not mark the state dirty.
func (s *SessionState) Clear() {
	if s.IsEmpty() {
		return
	}

	*s = SessionState{dirty: true}
}

// IsEmpty reports whether no field is set.
func (s *SessionState) IsEmpty() bool {
	return !s.Authenticated &&
		s.UserEmail == "" &&
		s.UserName == "" &&
		s.NcmData == nil &&
		s.LeadData == nil
}

// SetNcmData stores the public fields of a looked-up NCM.
func (s *SessionState) SetNcmData(data NcmData) {
	s.NcmData = &data
	s.dirty = true
}

// SetLeadData stores the public fields of a lead. It is only allowed once an
// NCM has been looked up or the visitor is authenticated.
func (s *SessionState) SetLeadData(data LeadData) error {
	if s.NcmData == nil && !s.Authenticated {
		return ErrLeadDataWithoutContext
	}

	s.LeadData = &data
	s.dirty = true
	return nil
}

// SignIn marks the visitor as authenticated as the given lead.
func (s *SessionState) SignIn(email, name string) {
	s.Authenticated = true
	s.UserEmail = email
	s.UserName = name
	s.dirty = true
}

// SetUserEmail replaces the email of the authenticated lead.
func (s *SessionState) SetUserEmail(email string) {
	s.UserEmail = email
	s.dirty = true
}

// SetUserName replaces the display name of the authenticated lead.
func (s *SessionState) SetUserName(name string) {
	s.UserName = name
	s.dirty = true
}

// Dirty reports whether the state was mutated since it was loaded.
func (s *SessionState) Dirty() bool {
	return s.dirty
}

// MarkClean resets the dirty flag after the state has been persisted.
func (s *SessionState) MarkClean() {
	s.dirty = false
}
