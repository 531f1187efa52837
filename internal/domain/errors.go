package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Engine specific errors
	ErrBackendUnavailable    ErrorCode = "BACKEND_UNAVAILABLE"
	ErrSchemaViolation       ErrorCode = "SCHEMA_VIOLATION"
	ErrGenerationUnavailable ErrorCode = "GENERATION_UNAVAILABLE"
	ErrProfileCorrupt        ErrorCode = "PROFILE_CORRUPT"
	ErrInvariantViolation    ErrorCode = "INVARIANT_VIOLATION"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

// NewBackendUnavailableError wraps a transport or timeout failure reaching a
// generation backend. Always recoverable via the next fallback tier.
func NewBackendUnavailableError(err error) *DomainError {
	return NewError(ErrBackendUnavailable, "Generation backend unreachable", err)
}

// NewSchemaViolationError marks a backend response that failed validation.
// Callers treat it identically to a transport failure.
func NewSchemaViolationError(message string, err error) *DomainError {
	return NewError(ErrSchemaViolation, message, err)
}

// NewGenerationUnavailableError is returned when every fallback tier has
// failed and no quiz content can be produced. Fatal for the request.
func NewGenerationUnavailableError(err error) *DomainError {
	return NewError(ErrGenerationUnavailable, "All generation tiers exhausted", err)
}

func NewProfileCorruptError(userID string, err error) *DomainError {
	return NewError(ErrProfileCorrupt, fmt.Sprintf("Stored profile for %s failed to deserialize", userID), err)
}

func NewInvariantViolationError(message string) *DomainError {
	return NewError(ErrInvariantViolation, message, nil)
}

// IsErrorCode reports whether err is a DomainError carrying the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == code
}

// IsRecoverable reports whether an error may be downgraded to the next
// fallback tier instead of being surfaced to the caller.
func IsRecoverable(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == ErrBackendUnavailable || de.Code == ErrSchemaViolation
}
