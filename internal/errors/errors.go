package errors

import (
	"encoding/json"
	"fmt"
)

// ValidationErr signals malformed input: empty required text or out-of-range enum
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewValidationErr builds new ValidationErr for the given target field
func NewValidationErr(target string, msg string) *ValidationErr {
	return &ValidationErr{
		target:  target,
		message: msg,
	}
}

// NotFoundErr signals that the row is absent or owned by another user.
// The two cases are collapsed on purpose, so existence of foreign rows
// is never leaked.
type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

// NewNotFoundErr builds new NotFoundErr
func NewNotFoundErr(msg string) *NotFoundErr {
	return &NotFoundErr{message: msg}
}

// UnauthenticatedErr signals absence of a valid session at the boundary
type UnauthenticatedErr struct {
	message string
}

func (e *UnauthenticatedErr) Error() string {
	return e.message
}

// NewUnauthenticatedErr builds new UnauthenticatedErr
func NewUnauthenticatedErr(msg string) *UnauthenticatedErr {
	return &UnauthenticatedErr{message: msg}
}

// StoreErr signals that the underlying persistence call failed for
// infrastructure reasons
type StoreErr struct {
	cause error
}

func (e *StoreErr) Error() string {
	return fmt.Sprintf("store unavailable - %v", e.cause)
}

func (e *StoreErr) Unwrap() error {
	return e.cause
}

// NewStoreErr wraps infrastructure error into StoreErr
func NewStoreErr(cause error) *StoreErr {
	return &StoreErr{cause: cause}
}
