package service

import (
	"context"

	"github.com/jander15/BathroomPass-sub000/models"
)

// ClientAuthService owns the signed-in session of the console client.
type ClientAuthService interface {
	// SignIn exchanges the external sign-in credential for the first session
	// credential and starts the session. The session is persisted locally.
	// Returns ErrSignInRejected when the backend refuses the credential.
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Restore loads the locally persisted session into memory. Returns
	// ErrNoSavedSession when nothing was saved.
	Restore(ctx context.Context) (models.Session, error)

	// SignOut clears the session in memory and in the local store.
	SignOut(ctx context.Context) error

	// Current returns a snapshot of the session.
	Current() models.Session
}

// ClientActionService calls backend actions on behalf of the signed-in user.
// Expired credentials are refreshed transparently by the adapter; when that
// is impossible the methods return ErrSignInRequired.
type ClientActionService interface {
	// Run sends an arbitrary action and returns the response envelope as is,
	// domain errors included.
	Run(ctx context.Context, action string, fields map[string]any) (models.Response, error)

	// GetReportData returns the pass report rows of a class.
	GetReportData(ctx context.Context, query models.ReportQuery) ([]map[string]any, error)

	// LogPass records a bathroom pass sign-out or sign-in.
	LogPass(ctx context.Context, pass models.BathroomPass) error

	// GetTutoringLog returns the tutoring log rows of a teacher.
	GetTutoringLog(ctx context.Context, query models.TutoringQuery) ([]map[string]any, error)
}
