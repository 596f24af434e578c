package models

import "time"

// Credentials is the sign-in input exchanged for the first session
// credential.
type Credentials struct {
	Email      string `json:"email" validate:"required,email"`
	Credential string `json:"credential" validate:"required"`
}

// Fields converts the credentials to request fields.
func (c Credentials) Fields() map[string]any {
	return map[string]any{
		FieldEmail:      c.Email,
		FieldCredential: c.Credential,
	}
}

// ReportQuery selects the pass report of one class.
type ReportQuery struct {
	Class string `json:"class" validate:"required,max=32"`
}

// Fields converts the query to request fields.
func (q ReportQuery) Fields() map[string]any {
	return map[string]any{"class": q.Class}
}

// TutoringQuery selects the tutoring log of one teacher.
type TutoringQuery struct {
	Teacher string `json:"teacher" validate:"required,max=128"`
}

// Fields converts the query to request fields.
func (q TutoringQuery) Fields() map[string]any {
	return map[string]any{"teacher": q.Teacher}
}

// TutoringEntry is one tutoring session kept by the stub backend.
type TutoringEntry struct {
	Teacher string    `json:"teacher" validate:"required,max=128"`
	Student string    `json:"student" validate:"required"`
	Minutes int       `json:"minutes" validate:"gt=0,lte=600"`
	At      time.Time `json:"at,omitempty"`
}
