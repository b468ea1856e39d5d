// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"

	"github.com/google/uuid"
)

// ErrUnauthorized is returned when the admin password does not match.
var ErrUnauthorized = errors.New("invalid admin password")

// NewSessionID mints an opaque visitor session token. The token is the
// only thing tying a browser to its stored record, so it must be
// unguessable.
func NewSessionID() string {
	return uuid.NewString()
}

// CheckAdminPassword compares a submitted password against the
// configured one in constant time.
func CheckAdminPassword(got, want string) error {
	if want == "" {
		// Refuse everything rather than matching an empty secret.
		return ErrUnauthorized
	}
	if !hmac.Equal([]byte(got), []byte(want)) {
		return ErrUnauthorized
	}
	return nil
}
