package metadata

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrValidation matches every ValidationError
	ErrValidation = errors.New("metadata validation failed")
	// ErrContract matches every DecodeError: the payload did not follow the DataCite schema
	ErrContract = errors.New("response does not match the DataCite schema")
	// ErrUnknownValue indicates a string outside a closed vocabulary
	ErrUnknownValue = errors.New("value not in vocabulary")
)

// ValidationError reports metadata that cannot be sent to the API yet.
// It is returned when encoding, never when building a value.
type ValidationError struct {
	Type   string
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("invalid metadata: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s %s", e.Type, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DecodeError reports a payload member that is missing or has the wrong shape
type DecodeError struct {
	Type   string
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	msg := "decode " + e.Type
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrContract) match
func (e *DecodeError) Is(target error) bool {
	return target == ErrContract
}
