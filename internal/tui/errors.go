// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/service"
)

// humanizeError turns a service error into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *adapter.HTTPError
	switch {
	case errors.Is(err, service.ErrSignInRejected):
		return "The backend rejected the sign-in credential"
	case errors.Is(err, service.ErrSignInRequired):
		return "Session expired, please sign in again"
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "The backend answered with something that is not JSON"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("Backend answered %d: %s", httpErr.Status, fitText(httpErr.Body, 120))
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the backend is unavailable"
	}

	return err.Error()
}
