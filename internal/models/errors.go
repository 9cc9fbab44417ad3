package models

import (
	"fmt"
	"strings"
)

// ErrorKind is the fixed taxonomy of fetch failures surfaced to callers.
type ErrorKind string

const (
	ErrInvalidInput   ErrorKind = "INVALID_INPUT"
	ErrNotFound       ErrorKind = "NOT_FOUND"
	ErrSchemaMismatch ErrorKind = "SCHEMA_MISMATCH"
	ErrRateLimited    ErrorKind = "RATE_LIMITED"
	ErrPrivateProfile ErrorKind = "PRIVATE_PROFILE"
	ErrAPIError       ErrorKind = "API_ERROR"
)

// FetchError is a classified upstream failure.
type FetchError struct {
	Kind    ErrorKind
	Message string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Error: %s - %s", e.Kind, e.Message)
}

// NewFetchError creates a FetchError with the given kind and message.
func NewFetchError(kind ErrorKind, format string, args ...any) *FetchError {
	return &FetchError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ClassifyError maps an arbitrary upstream error onto the taxonomy by
// case-insensitive substring matching on its message. Already-classified
// errors pass through unchanged.
func ClassifyError(err error) *FetchError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FetchError); ok {
		return fe
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	var kind ErrorKind
	switch {
	case strings.Contains(lower, "rate limit"):
		kind = ErrRateLimited
	case strings.Contains(lower, "private"), strings.Contains(lower, "protected"):
		kind = ErrPrivateProfile
	case strings.Contains(lower, "not found"):
		kind = ErrNotFound
	default:
		kind = ErrAPIError
	}

	return &FetchError{Kind: kind, Message: msg}
}
