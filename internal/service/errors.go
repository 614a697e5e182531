// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrNcmNotFound is returned when a lookup has neither an exact nor a
	// prefix match.
	ErrNcmNotFound = errors.New("ncm not found")

	// ErrDuplicateEmail is returned when the email already belongs to a lead.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrEmailTakenByAnotherUser is the profile-edit flavour of
	// [ErrDuplicateEmail].
	ErrEmailTakenByAnotherUser = fmt.Errorf("email taken by another lead: %w", ErrDuplicateEmail)

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongCurrentPassword is the profile-edit flavour of
	// [ErrInvalidCredentials].
	ErrWrongCurrentPassword = fmt.Errorf("current password incorrect: %w", ErrInvalidCredentials)

	// ErrUnauthenticated is returned by operations that need a signed-in
	// lead.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrLeadNotFound is returned when the session points at a lead that no
	// longer exists.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService for an empty
	// version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries the message shown to the visitor together with the
// validator error that caused it.
type ValidationError struct {
	Message string
	Err     error
}

func newValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes both [ErrValidation] and the underlying validator error.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}
