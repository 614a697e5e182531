// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// passwordHasher is the bcrypt implementation of [PasswordHasher].
type passwordHasher struct {
	cost int
}

// NewPasswordHasher returns a [PasswordHasher] using the given bcrypt cost.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordHasher{cost: cost}
}

// Hash implements [PasswordHasher].
func (p *passwordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// Compare implements [PasswordHasher].
func (p *passwordHasher) Compare(hashed, password string) error {
	switch {
	case strings.HasPrefix(hashed, "pbkdf2:"):
		return comparePBKDF2(hashed, password)
	case strings.HasPrefix(hashed, "scrypt:"):
		return compareScrypt(hashed, password)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %w", ErrUnsupportedHash, err)
	}
}

// NeedsRehash implements [PasswordHasher].
func (p *passwordHasher) NeedsRehash(hashed string) bool {
	cost, err := bcrypt.Cost([]byte(hashed))
	if err != nil {
		return true
	}
	return cost != p.cost
}

// comparePBKDF2 checks werkzeug hashes of the form
// "pbkdf2:<digest>:<iterations>$<salt>$<hex>".
func comparePBKDF2(hashed, password string) error {
	method, salt, want, err := splitWerkzeug(hashed)
	if err != nil {
		return err
	}

	params := strings.Split(method, ":")
	digest := "sha256"
	iterations := 600000
	if len(params) > 1 {
		digest = params[1]
	}
	if len(params) > 2 {
		if iterations, err = strconv.Atoi(params[2]); err != nil || iterations < 1 {
			return fmt.Errorf("%w: bad pbkdf2 iterations", ErrUnsupportedHash)
		}
	}

	var h func() hash.Hash
	switch digest {
	case "sha256":
		h = sha256.New
	case "sha512":
		h = sha512.New
	case "sha1":
		h = sha1.New
	default:
		return fmt.Errorf("%w: pbkdf2 digest %q", ErrUnsupportedHash, digest)
	}

	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), h)
	return constantTimeMatch(got, want)
}

// compareScrypt checks werkzeug hashes of the form
// "scrypt:<n>:<r>:<p>$<salt>$<hex>".
func compareScrypt(hashed, password string) error {
	method, salt, want, err := splitWerkzeug(hashed)
	if err != nil {
		return err
	}

	n, r, par := 32768, 8, 1
	params := strings.Split(method, ":")
	if len(params) == 4 {
		values := make([]int, 3)
		for i, s := range params[1:] {
			if values[i], err = strconv.Atoi(s); err != nil {
				return fmt.Errorf("%w: bad scrypt parameters", ErrUnsupportedHash)
			}
		}
		n, r, par = values[0], values[1], values[2]
	}

	got, err := scrypt.Key([]byte(password), []byte(salt), n, r, par, len(want))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedHash, err)
	}
	return constantTimeMatch(got, want)
}

func splitWerkzeug(hashed string) (method, salt string, digest []byte, err error) {
	parts := strings.SplitN(hashed, "$", 3)
	if len(parts) != 3 {
		return "", "", nil, fmt.Errorf("%w: expected method$salt$hash", ErrUnsupportedHash)
	}

	digest, err = hex.DecodeString(parts[2])
	if err != nil || len(digest) == 0 {
		return "", "", nil, fmt.Errorf("%w: bad hex digest", ErrUnsupportedHash)
	}
	return parts[0], parts[1], digest, nil
}

func constantTimeMatch(got, want []byte) error {
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
