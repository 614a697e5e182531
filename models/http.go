// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LookupRequest is the body of POST /consultar.
type LookupRequest struct {
	// Ncm is the code typed by the visitor. Surrounding whitespace is ignored.
	Ncm string `json:"ncm"`
}

// RegisterRequest is the body of POST /salvar-lead.
type RegisterRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Cnpj     string `json:"cnpj"`

	// Senha is the plaintext password. It is hashed before storage and only
	// kept in memory long enough to compose the welcome email.
	Senha string `json:"senha"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// ProfileUpdateRequest is the body of POST /api/perfil.
//
// The password is changed only when both SenhaAtual and SenhaNova are set.
type ProfileUpdateRequest struct {
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Telefone   string `json:"telefone"`
	Cnpj       string `json:"cnpj"`
	SenhaAtual string `json:"senha_atual,omitempty"`
	SenhaNova  string `json:"senha_nova,omitempty"`
}

// ChangesPassword reports whether the request asks for a password change.
func (r ProfileUpdateRequest) ChangesPassword() bool {
	return r.SenhaAtual != "" && r.SenhaNova != ""
}
