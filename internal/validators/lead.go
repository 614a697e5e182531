// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/ncm-lead/models"
)

// Field names, matching the JSON keys of the request bodies.
const (
	FieldNcm       = "ncm"
	FieldNome      = "nome"
	FieldEmail     = "email"
	FieldTelefone  = "telefone"
	FieldCnpj      = "cnpj"
	FieldSenha     = "senha"
	FieldSenhaNova = "senha_nova"
)

// MinPasswordLength is the minimum number of characters in a password.
const MinPasswordLength = 6

// LeadValidator validates lookup, registration, login and profile requests.
type LeadValidator struct{}

// NewLeadValidator returns a [Validator] for the lead flow requests.
func NewLeadValidator() Validator {
	return &LeadValidator{}
}

// Validate implements [Validator].
func (v *LeadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LookupRequest:
		return v.validateLookup(value, fields...)
	case *models.LookupRequest:
		return v.validateLookup(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ProfileUpdateRequest:
		return v.validateProfile(value, fields...)
	case *models.ProfileUpdateRequest:
		return v.validateProfile(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LeadValidator) validateLookup(req models.LookupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNcm}
	}

	for _, f := range fields {
		switch f {
		case FieldNcm:
			if isBlank(req.Ncm) {
				return fieldError(f, ErrRequired)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LeadValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNome, FieldEmail, FieldTelefone, FieldCnpj, FieldSenha}
	}

	// presence of every field is checked before the password length
	for _, f := range fields {
		var value string
		switch f {
		case FieldNome:
			value = req.Nome
		case FieldEmail:
			value = req.Email
		case FieldTelefone:
			value = req.Telefone
		case FieldCnpj:
			value = req.Cnpj
		case FieldSenha:
			value = req.Senha
		default:
			return ErrUnknownField
		}
		if isBlank(value) {
			return fieldError(f, ErrRequired)
		}
	}

	for _, f := range fields {
		if f == FieldSenha && utf8.RuneCountInString(req.Senha) < MinPasswordLength {
			return fieldError(f, ErrPasswordTooShort)
		}
	}
	return nil
}

func (v *LeadValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldSenha}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return fieldError(f, ErrRequired)
			}
		case FieldSenha:
			if req.Senha == "" {
				return fieldError(f, ErrRequired)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LeadValidator) validateProfile(req models.ProfileUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNome, FieldEmail, FieldTelefone, FieldCnpj}
		if req.ChangesPassword() {
			fields = append(fields, FieldSenhaNova)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldNome:
			if isBlank(req.Nome) {
				return fieldError(f, ErrRequired)
			}
		case FieldEmail:
			if isBlank(req.Email) {
				return fieldError(f, ErrRequired)
			}
		case FieldTelefone:
			if isBlank(req.Telefone) {
				return fieldError(f, ErrRequired)
			}
		case FieldCnpj:
			if isBlank(req.Cnpj) {
				return fieldError(f, ErrRequired)
			}
		case FieldSenhaNova:
			if utf8.RuneCountInString(req.SenhaNova) < MinPasswordLength {
				return fieldError(f, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
