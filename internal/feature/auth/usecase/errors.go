// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidInput is returned when a register input fails domain validation.
	// Transport-level binding normally rejects these before the usecase runs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned when the email or password is wrong.
	// Lookup failure and password mismatch share this value so callers cannot
	// tell which one happened.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
