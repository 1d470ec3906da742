package common

import "errors"

var (
	// Storage errors.
	ErrStorage = errors.New("storage error")

	// Account errors.
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
