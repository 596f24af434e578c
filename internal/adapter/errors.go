package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotAuthenticated is returned by Send when the session carries no
	// credential. No request is made.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired signals a stale credential. Send recovers from it
	// once through a silent refresh; it is surfaced when the refresh fails
	// or the retried request expires again.
	ErrSessionExpired = errors.New("session expired")

	// ErrRefreshRejected is returned by the refresh routine when the backend
	// answers without a new credential. Callers see it wrapped together with
	// ErrSessionExpired.
	ErrRefreshRejected = errors.New("session refresh rejected")

	// ErrMalformedResponse is returned when a successful HTTP response does
	// not carry a JSON object.
	ErrMalformedResponse = errors.New("malformed backend response")
)

// HTTPError is a non-2xx transport status whose body carries no expiry
// marker. It is never retried.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, body)
}
