package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInputRead ErrorType = iota
	ErrInvalidJSON
	ErrInvalidShape
	ErrTypeMismatch
	ErrRender
	ErrSigning
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInputRead:
		return "InputRead"
	case ErrInvalidJSON:
		return "InvalidJSON"
	case ErrInvalidShape:
		return "InvalidShape"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrRender:
		return "Render"
	case ErrSigning:
		return "Signing"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// DiffError represents an error raised while preparing or reporting a comparison
type DiffError struct {
	Type  ErrorType
	Input string
	Err   error
}

// Error implements the error interface
func (e *DiffError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Input, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *DiffError) Unwrap() error {
	return e.Err
}

// IsErrorType reports whether err carries a DiffError of the given type
func IsErrorType(err error, t ErrorType) bool {
	var de *DiffError
	if !errors.As(err, &de) {
		return false
	}
	return de.Type == t
}
