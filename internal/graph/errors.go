// File: internal/graph/errors.go
package graph

import (
	"encoding/json"
	"fmt"
)

// Error is a failed Graph API call. StatusCode is zero when the request never
// got a response.
type Error struct {
	StatusCode int
	Message    string
	Type       string
	Code       int
	cause      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func transportError(err error) *Error {
	return &Error{Message: err.Error(), cause: err}
}

// statusError prefers the upstream error.message and falls back to a generic one.
func statusError(status int, body []byte) *Error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil && env.Error.Message != "" {
		return fromBody(status, env.Error)
	}
	return &Error{StatusCode: status, Message: fmt.Sprintf("Request failed with status code %d", status)}
}

func fromBody(status int, b *errorBody) *Error {
	return &Error{StatusCode: status, Message: b.Message, Type: b.Type, Code: b.Code}
}
