package services

import (
	"errors"

	"resident-records-service/internal/error/code"
)

// Error kinds. Match with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrExpired    = errors.New("expired")
	ErrAuth       = errors.New("authentication error")
)

// Error is a domain failure carrying its kind and response code.
type Error struct {
	Kind    error
	Code    int
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, errorCode int) *Error {
	return &Error{Kind: kind, Code: errorCode, Message: code.GetMessage(errorCode)}
}

func validationError(errorCode int, fields ...string) *Error {
	e := newError(ErrValidation, errorCode)
	e.Fields = fields
	return e
}

func conflictError(errorCode int) *Error {
	return newError(ErrConflict, errorCode)
}

func notFoundError(errorCode int) *Error {
	return newError(ErrNotFound, errorCode)
}

func expiredError(errorCode int) *Error {
	return newError(ErrExpired, errorCode)
}

func authError(errorCode int) *Error {
	return newError(ErrAuth, errorCode)
}
