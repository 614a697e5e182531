// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SuccessResponse is the body returned by endpoints that only report success.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body returned on any failure. Success is only written
// by endpoints that report it explicitly on failure (e.g. a lookup miss).
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
}

// UserSummary is the part of a lead echoed back after signing in.
type UserSummary struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// LoginResponse is the body returned by POST /api/login on success.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
}

// ProfileUpdateResponse is the body returned by POST /api/perfil on success.
//
// NomeAtualizado tells the page to refresh the cached display name.
type ProfileUpdateResponse struct {
	Success        bool `json:"success"`
	NomeAtualizado bool `json:"nome_atualizado"`
}

// ProfileUpdate is the outcome of a profile edit.
type ProfileUpdate struct {
	Lead        LeadData
	NameChanged bool
}
