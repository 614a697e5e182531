// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by Compare when the password is wrong.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrUnsupportedHash is returned by Compare for hashes in an unknown
	// format.
	ErrUnsupportedHash = errors.New("unsupported password hash format")
)
