package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Standard domain errors
var (
	ErrInvalidRequest    = errors.New("invalid request parameters")
	ErrUnauthorized      = errors.New("missing or invalid bearer token")
	ErrRateLimitExceeded = errors.New("rate limit exceeded: too many requests")
	ErrInternalServer    = errors.New("an internal error occurred")
)

// FieldError describes one failed constraint on a request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (f FieldError) String() string {
	if f.Param == "" {
		return fmt.Sprintf("%s: %s", f.Field, f.Rule)
	}
	return fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param)
}

// ValidationError is returned when a request fails its field constraints.
// It matches ErrInvalidRequest with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
