// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a point-in-time copy of the signed-in identity.
//
// The live, mutable session lives in the session package; code that needs the
// credential takes a Session snapshot and never holds on to the live object's
// fields directly.
type Session struct {
	// Email is the address of the signed-in teacher or staff member.
	Email string `json:"email"`

	// IDToken is the opaque bearer credential re-issued by the backend on
	// every successful refresh.
	IDToken string `json:"id_token"`

	// UpdatedAt is the moment the credential was last set or rotated.
	UpdatedAt time.Time `json:"updated_at"`
}

// Authenticated reports whether the snapshot carries a usable credential.
func (s Session) Authenticated() bool {
	return s.IDToken != ""
}
