// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "ncm-lead"

// TokenCodec signs session ids into the cookie value and verifies them back.
type TokenCodec struct {
	signKey []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewTokenCodec(signKey string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		signKey: []byte(signKey),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue returns an HS256 token whose subject is id.
func (c *TokenCodec) Issue(id string) (string, error) {
	if id == "" || len(c.signKey) == 0 || c.ttl <= 0 {
		return "", errors.New("invalid params for issuing session token")
	}

	now := c.now()
	claims := &jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   id,
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns the session id it names.
func (c *TokenCodec) Parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return c.signKey, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := parsed.Claims.GetSubject()
	if err != nil || id == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return id, nil
}
