// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Field names shared by every request sent to the backend endpoint.
const (
	FieldAction     = "action"
	FieldUserEmail  = "userEmail"
	FieldIDToken    = "idToken"
	FieldEmail      = "email"
	FieldCredential = "credential"
)

// Action tags understood by the backend endpoint.
const (
	ActionVerifyGoogleToken = "verifyGoogleToken"
	ActionRefreshToken      = "refreshToken"
	ActionGetReportData     = "getReportData"
	ActionLogPass           = "logBathroomPass"
	ActionGetTutoringLog    = "getTutoringLog"
	ActionLogTutoring       = "logTutoringSession"
)

// Request is a single JSON object posted to the backend. The "action" field
// names the backend operation; every other field is action specific.
//
// userEmail and idToken are stamped by the adapter right before transmission
// and must not be relied upon when set by callers.
type Request map[string]any

// NewRequest builds a Request for action with a copy of fields.
func NewRequest(action string, fields map[string]any) Request {
	req := make(Request, len(fields)+3)
	maps.Copy(req, fields)
	req[FieldAction] = action
	return req
}

// Action returns the action tag of the request or an empty string.
func (r Request) Action() string {
	action, _ := r[FieldAction].(string)
	return action
}

// Clone returns a shallow copy of the request.
func (r Request) Clone() Request {
	return maps.Clone(r)
}

// WithSession returns a copy of the request carrying the credentials of s,
// overwriting any caller-provided userEmail and idToken.
func (r Request) WithSession(s Session) Request {
	out := r.Clone()
	if out == nil {
		out = make(Request, 2)
	}
	out[FieldUserEmail] = s.Email
	out[FieldIDToken] = s.IDToken
	return out
}
