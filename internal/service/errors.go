package service

import "errors"

// Domain failures surfaced by the services. Controllers translate
// these into client-facing responses; anything else is an internal
// error and gets a generic response.
var (
	ErrEmailInUse      = errors.New("email in use")
	ErrUsernameInUse   = errors.New("username in use")
	ErrUnknownUser     = errors.New("unknown user")
	ErrInvalidPassword = errors.New("invalid password")
	ErrSelfFollow      = errors.New("user cannot follow self")
)
