// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user and request input before it reaches the
// backend (on the client) or the action table (in the stub backend).
//
// Rules are declared as `validate` struct tags on the models and enforced by
// go-playground/validator. Failures are reported as [ErrInvalidInput] wrapped
// with a "field: rule" description, using the JSON field names.
package validators

import "context"

// Validator validates a model value.
type Validator interface {
	Validate(ctx context.Context, v any) error
}
