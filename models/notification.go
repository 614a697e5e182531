// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WelcomeEmail is the message sent to a lead right after registration.
//
// Senha is the plaintext password the lead just chose. It only lives in
// memory until the email is composed and is never serialised.
type WelcomeEmail struct {
	To    string   `json:"to"`
	Nome  string   `json:"nome"`
	Senha string   `json:"-"`
	Ncm   *NcmData `json:"ncm,omitempty"`
}
