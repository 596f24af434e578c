// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/jander15/BathroomPass-sub000/models"
)

// AuthService issues and checks session credentials in the stub backend.
type AuthService interface {
	// SignIn accepts an external sign-in credential and issues the first
	// session credential for creds.Email.
	SignIn(ctx context.Context, creds models.Credentials) (string, error)

	// Verify checks a credential presented with an action. It returns
	// ErrTokenExpired for a genuine but stale credential and ErrInvalidToken
	// for anything else that does not identify email.
	Verify(ctx context.Context, email, token string) (models.IdentityClaims, error)

	// Refresh re-issues a credential for email. The presented credential
	// must be genuine and belong to email; it may be expired.
	Refresh(ctx context.Context, email, token string) (string, error)
}

// RecordService keeps the facility records served by the stub backend.
type RecordService interface {
	// LogPass records a pass event on behalf of loggedBy.
	LogPass(ctx context.Context, loggedBy string, pass models.BathroomPass) error

	// Report returns the pass events of a class in logging order.
	Report(ctx context.Context, query models.ReportQuery) ([]map[string]any, error)

	// LogTutoring records a tutoring session.
	LogTutoring(ctx context.Context, entry models.TutoringEntry) error

	// TutoringLog returns the tutoring sessions of a teacher.
	TutoringLog(ctx context.Context, query models.TutoringQuery) ([]map[string]any, error)
}
