// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the stub backend's
// handlers and middleware.
//
// The expiry markers are not here: they are part of the client protocol and
// live in the models package.
package app

const (
	// MsgMalformedRequest is the plain-text body of a 400 answer to a body
	// that is not a JSON object.
	MsgMalformedRequest = "Malformed request"

	// MsgRefreshDenied is the envelope error of a refused refreshToken call.
	// It must never contain an expiry marker.
	MsgRefreshDenied = "Refresh denied"

	// MsgUnknownAction is the envelope error of an action the stub does not
	// serve. It never echoes the action name.
	MsgUnknownAction = "Unknown action"

	// MsgInternalError is the plain-text body of a 500 answer.
	MsgInternalError = "Internal error"
)
