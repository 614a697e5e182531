// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Lead represents a registered prospective customer. It is both the captured
// lead and the account used to sign in.
// Sensitive fields must never be exposed outside trusted boundaries.
type Lead struct {
	// ID is the internal unique identifier of the lead.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// Nome is the display name of the lead.
	Nome string `json:"nome"`

	// Email is the unique identity key of the lead, used to sign in.
	Email string `json:"email"`

	// Telefone is the contact phone number as typed by the visitor.
	Telefone string `json:"telefone"`

	// Cnpj is the company tax ID as typed by the visitor.
	Cnpj string `json:"cnpj"`

	// Senha stores the one-way hash of the lead's password, never plaintext.
	Senha string `json:"-"`

	// Ncm is the code the visitor was viewing when they signed up.
	// Empty when the lead registered without a prior lookup.
	Ncm string `json:"ncm"`

	// CreatedAt is the timestamp assigned by the database on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Lead.
func (l Lead) TableName() string {
	return "leads"
}

// Data returns the public fields of the lead as they are kept in the
// visitor's session.
func (l Lead) Data() LeadData {
	return LeadData{
		Nome:     l.Nome,
		Email:    l.Email,
		Telefone: l.Telefone,
		Cnpj:     l.Cnpj,
	}
}

// LeadData is the session copy of a lead's public fields.
type LeadData struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Cnpj     string `json:"cnpj"`
}

// LeadUpdate carries a profile edit. The row is addressed by OldEmail, the
// email the lead had before the edit. When SenhaHash is nil the stored
// password hash is left untouched.
type LeadUpdate struct {
	OldEmail  string
	Nome      string
	Email     string
	Telefone  string
	Cnpj      string
	SenhaHash *string
}
