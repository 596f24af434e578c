// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/jander15/BathroomPass-sub000/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the signed-in session on the client device.
// There is at most one stored session.
type SessionRepository interface {
	// SaveSession stores s, replacing any previous session.
	SaveSession(ctx context.Context, s models.Session) error
	// LoadSession returns the stored session or ErrSessionNotFound.
	LoadSession(ctx context.Context) (models.Session, error)
	// DeleteSession removes the stored session. Deleting a missing session
	// is not an error.
	DeleteSession(ctx context.Context) error
}
