package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier for correlating a client
// request with the backend log. Falls back to a random UUID when a v7 value
// cannot be produced.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
