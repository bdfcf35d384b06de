package service

import "errors"

// Sentinel errors raised by the auth service. Handlers map them onto
// HTTP statuses; everything unexpected is treated as a store failure
// and reported as a 500 without internals.
var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("not authenticated")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("already exists")
	ErrResetTokenExpired    = errors.New("reset password token expired")
	ErrTooManyResetAttempts = errors.New("too many password reset attempts")
)
