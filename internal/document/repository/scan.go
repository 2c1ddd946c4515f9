package repository

import (
	"database/sql"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

type scanner interface {
	Scan(dest ...any) error
}

func checkAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
