package service

import "errors"

var (
	// ErrSignInRequired means there is no usable session: the user never
	// signed in, signed out, or the credential could not be refreshed.
	ErrSignInRequired = errors.New("sign in required")

	// ErrSignInRejected means the backend refused the sign-in credential.
	ErrSignInRejected = errors.New("sign in rejected")

	// ErrNoSavedSession is returned by Restore when nothing was persisted.
	ErrNoSavedSession = errors.New("no saved session")

	// ErrActionFailed wraps a domain error envelope returned to a typed
	// action helper.
	ErrActionFailed = errors.New("action failed")

	// ErrEmptyAction is returned by Run when no action tag is given.
	ErrEmptyAction = errors.New("action is not specified")
)

// Stub backend errors.
var (
	// ErrInvalidToken means the presented credential is not genuine or does
	// not belong to the claimed email.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired means the presented credential is genuine but stale.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenSignKeyNotSpecified is returned when the stub is configured
	// without a signing key.
	ErrTokenSignKeyNotSpecified = errors.New("token sign key is not specified")
)
