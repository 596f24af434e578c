// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/models"
)

// mapAdapterError translates the adapter's credential errors into
// ErrSignInRequired. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotAuthenticated),
		errors.Is(err, adapter.ErrSessionExpired):
		return fmt.Errorf("%w: %w", ErrSignInRequired, err)
	}

	return err
}

// envelopeError turns a domain error envelope into ErrActionFailed.
func envelopeError(action string, resp models.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := resp.ErrorMessage()
	if msg == "" {
		msg = fmt.Sprintf("unexpected result %q", resp.Result())
	}
	return fmt.Errorf("%w: %s: %s", ErrActionFailed, action, msg)
}
