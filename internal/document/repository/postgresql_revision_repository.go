package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/jsondocs/internal/database"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	apperrors "github.com/allisson/jsondocs/internal/errors"
)

// PostgreSQLRevisionRepository implements Revision persistence for PostgreSQL.
// Revisions are removed with their document through ON DELETE CASCADE.
type PostgreSQLRevisionRepository struct {
	db *sql.DB
}

// Create inserts a new Revision.
func (p *PostgreSQLRevisionRepository) Create(ctx context.Context, rev *documentDomain.Revision) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO document_revisions (` + revisionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		rev.ID,
		rev.DocumentID,
		rev.Title,
		rev.Content,
		rev.AuthorID,
		rev.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create revision")
	}
	return nil
}

// ListByDocument retrieves the revisions of a document, newest first.
func (p *PostgreSQLRevisionRepository) ListByDocument(
	ctx context.Context,
	documentID uuid.UUID,
) ([]*documentDomain.Revision, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + revisionColumns + ` FROM document_revisions
			  WHERE document_id = $1 ORDER BY id DESC`

	rows, err := querier.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list revisions")
	}
	defer func() {
		_ = rows.Close()
	}()

	revs := make([]*documentDomain.Revision, 0)
	for rows.Next() {
		var rev documentDomain.Revision
		if err := rows.Scan(
			&rev.ID,
			&rev.DocumentID,
			&rev.Title,
			&rev.Content,
			&rev.AuthorID,
			&rev.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan revision")
		}
		revs = append(revs, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate revisions")
	}
	return revs, nil
}

// Get retrieves one revision of a document.
func (p *PostgreSQLRevisionRepository) Get(
	ctx context.Context,
	documentID, revisionID uuid.UUID,
) (*documentDomain.Revision, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + revisionColumns + ` FROM document_revisions
			  WHERE document_id = $1 AND id = $2`

	var rev documentDomain.Revision
	err := querier.QueryRowContext(ctx, query, documentID, revisionID).Scan(
		&rev.ID,
		&rev.DocumentID,
		&rev.Title,
		&rev.Content,
		&rev.AuthorID,
		&rev.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, documentDomain.ErrRevisionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get revision")
	}
	return &rev, nil
}

// NewPostgreSQLRevisionRepository creates a new PostgreSQL Revision repository.
func NewPostgreSQLRevisionRepository(db *sql.DB) *PostgreSQLRevisionRepository {
	return &PostgreSQLRevisionRepository{db: db}
}
