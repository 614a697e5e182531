// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is the one-way credential codec. Plaintext passwords are
// never recoverable from the hashes it produces.
type PasswordHasher interface {
	// Hash returns a salted bcrypt hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] otherwise. Besides bcrypt, hashes written by
	// the werkzeug pbkdf2 and scrypt formats are accepted.
	Compare(hash, password string) error

	// NeedsRehash reports whether hash should be replaced by a fresh
	// bcrypt hash at the configured cost.
	NeedsRehash(hash string) bool
}
