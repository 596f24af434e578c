// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// FieldData holds the rows of list-returning actions.
const FieldData = "data"

// Envelope result values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Response is the decoded JSON object returned by the backend. By convention
// it carries a "result" field ("success" or "error") and, for errors, an
// "error" message; everything else is action specific.
type Response map[string]any

// Result returns the envelope result value.
func (r Response) Result() string {
	return r.String("result")
}

// ErrorMessage returns the envelope error message.
func (r Response) ErrorMessage() string {
	return r.String("error")
}

// IsSuccess reports whether the envelope result is "success".
func (r Response) IsSuccess() bool {
	return r.Result() == ResultSuccess
}

// IsError reports whether the envelope result is "error".
func (r Response) IsError() bool {
	return r.Result() == ResultError
}

// String returns field key as a string. Non-string scalars are formatted,
// missing fields yield an empty string.
func (r Response) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Rows returns field key as a list of JSON objects. Elements that are not
// objects are skipped.
func (r Response) Rows(key string) []map[string]any {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}

	rows := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if row, ok := item.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Expiry markers. A credential must be refreshed when an error body or an
// envelope error message contains either of them.
const (
	MarkerInvalidToken = "Invalid token"
	MarkerTokenExpired = "Token expired"
)

// IsExpiryMessage reports whether msg carries an expiry marker.
func IsExpiryMessage(msg string) bool {
	return strings.Contains(msg, MarkerInvalidToken) || strings.Contains(msg, MarkerTokenExpired)
}
