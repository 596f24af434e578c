// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the claim set carried by session credentials issued by
// the backend.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// iss) and adds the signed-in email address. The subject holds the same email
// so that either claim identifies the user.
type IdentityClaims struct {
	// Email is the address the credential was issued for.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// ExpiresAtTime returns the expiry of the credential or the zero time when
// the claim is absent.
func (c IdentityClaims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
