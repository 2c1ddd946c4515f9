package domain

import (
	apperrors "github.com/allisson/jsondocs/internal/errors"
)

// Document errors.
var (
	ErrDocumentNotFound = apperrors.Wrap(apperrors.ErrNotFound, "document not found")

	ErrRevisionNotFound = apperrors.Wrap(apperrors.ErrNotFound, "revision not found")

	ErrInvalidStatus = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid status")

	// ErrInvalidContent is returned when write-time JSON validation is enabled and the body does not parse.
	ErrInvalidContent = apperrors.Wrap(apperrors.ErrInvalidInput, "content is not valid JSON")

	ErrAlreadyTrashed = apperrors.Wrap(apperrors.ErrConflict, "document is already in the trash")

	ErrRevisionsNotSupported = apperrors.Wrap(apperrors.ErrNotFound, "content type does not support revisions")

	ErrForbidden = apperrors.Wrap(apperrors.ErrForbidden, "insufficient capabilities for document")

	// ErrAuthenticationRequired is returned to anonymous readers of anything but published documents.
	ErrAuthenticationRequired = apperrors.Wrap(apperrors.ErrUnauthorized, "authentication required to read document")
)
