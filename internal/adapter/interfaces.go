// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the spreadsheet-backed backend.
//
// Every backend operation is a POST of a JSON object to one endpoint, tagged
// by its "action" field. [BackendAdapter] stamps the session credentials into
// each request, recognises an expired credential, refreshes it at most once
// at a time for the whole process, and retries the original request once.
//
// Error values defined in errors.go let callers use [errors.Is] and
// [errors.As]: [ErrNotAuthenticated], [ErrSessionExpired], [ErrMalformedResponse]
// and [*HTTPError]. Envelopes with result "error" that are not about the
// credential are returned as values, not errors.
package adapter

import (
	"context"

	"github.com/jander15/BathroomPass-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter sends actions to the backend endpoint.
type BackendAdapter interface {
	// Send posts req with the current session's userEmail and idToken
	// stamped over any caller-set values. It fails with ErrNotAuthenticated
	// when the session has no credential.
	//
	// When the backend reports an expired credential, Send waits for the
	// single in-flight refresh (starting it if none is running), then posts
	// req once more with the refreshed credential. A failed refresh or a
	// second expiry is returned as ErrSessionExpired; the session keeps its
	// previous credential in that case.
	Send(ctx context.Context, req models.Request) (models.Response, error)

	// Exchange posts req as is, without session credentials and without
	// expiry recovery. It is used for the initial sign-in exchange that
	// produces the first credential.
	Exchange(ctx context.Context, req models.Request) (models.Response, error)
}
