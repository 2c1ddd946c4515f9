package domain

import (
	apperrors "github.com/allisson/jsondocs/internal/errors"
)

// ErrRoleNotFound indicates the role does not exist.
var ErrRoleNotFound = apperrors.Wrap(apperrors.ErrNotFound, "role not found")
