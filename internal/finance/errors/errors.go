package errors

import (
	"errors"
)

// ValidationError marks user input the operation rejected. It maps to a 400
// response with the message shown verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// AuthorizationError marks an operation attempted against a record the acting
// user does not own. It maps to a 403 response and the record stays unchanged.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string {
	return e.Msg
}

func NewAuthorizationError(msg string) error {
	return &AuthorizationError{Msg: msg}
}

func IsAuthorizationError(err error) bool {
	var authorizationError *AuthorizationError
	ok := errors.As(err, &authorizationError)
	return ok
}

// NotFoundError marks a lookup by identifier that matched no record.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

var ErrExpenseNotFound = NewNotFoundError("expense not found")
var ErrIncomeNotFound = NewNotFoundError("income not found")
var ErrNotRecordOwner = NewAuthorizationError("you are not authorized to modify this record")
