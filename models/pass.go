// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PassDirection tells whether a student is leaving or returning.
type PassDirection string

const (
	PassOut PassDirection = "out"
	PassIn  PassDirection = "in"
)

// BathroomPass is a single sign-out or sign-in event recorded for a student.
type BathroomPass struct {
	// Student is the display name of the student as it appears on the roster.
	Student string `json:"student" validate:"required"`

	// Class is the class or period code (e.g. "5A").
	Class string `json:"class" validate:"required"`

	// Direction is either "out" or "in".
	Direction PassDirection `json:"direction" validate:"required,oneof=out in"`

	// At is the moment of the event. The backend stamps its own time when
	// the field is zero.
	At time.Time `json:"at,omitempty"`
}

// Fields converts the pass to request fields.
func (p BathroomPass) Fields() map[string]any {
	fields := map[string]any{
		"student":   p.Student,
		"class":     p.Class,
		"direction": string(p.Direction),
	}
	if !p.At.IsZero() {
		fields["at"] = p.At.UTC().Format(time.RFC3339)
	}
	return fields
}
