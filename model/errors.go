package model

import "errors"

var (
	// ErrEventNotFound is returned when an event id resolves to no document.
	ErrEventNotFound = errors.New("event not found")
	// ErrUserNotFound is returned when a profile lookup finds no document.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when signup collides with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on failed sign-in.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidStatus is returned when an RSVP status is outside the enum.
	ErrInvalidStatus = errors.New("status must be going, maybe or declined")
)
