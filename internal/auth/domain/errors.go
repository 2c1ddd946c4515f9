package domain

import (
	"github.com/allisson/jsondocs/internal/errors"
)

// Authentication errors.
var (
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrInvalidCredentials is returned for unknown users, wrong passwords and
	// invalid tokens alike.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	ErrUserInactive = errors.Wrap(errors.ErrForbidden, "user is inactive")
)
