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

// MySQLRevisionRepository implements Revision persistence for MySQL.
type MySQLRevisionRepository struct {
	db *sql.DB
}

// Create inserts a new Revision.
func (m *MySQLRevisionRepository) Create(ctx context.Context, rev *documentDomain.Revision) error {
	querier := database.GetTx(ctx, m.db)

	ids, err := marshalIDs(rev.ID, rev.DocumentID, rev.AuthorID)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal revision ids")
	}

	query := `INSERT INTO document_revisions (` + revisionColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, ids[0], ids[1], rev.Title, rev.Content, ids[2], rev.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create revision")
	}
	return nil
}

// ListByDocument retrieves the revisions of a document, newest first.
func (m *MySQLRevisionRepository) ListByDocument(
	ctx context.Context,
	documentID uuid.UUID,
) ([]*documentDomain.Revision, error) {
	querier := database.GetTx(ctx, m.db)

	docID, err := documentID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal document id")
	}

	query := `SELECT ` + revisionColumns + ` FROM document_revisions
			  WHERE document_id = ? ORDER BY id DESC`

	rows, err := querier.QueryContext(ctx, query, docID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list revisions")
	}
	defer func() {
		_ = rows.Close()
	}()

	revs := make([]*documentDomain.Revision, 0)
	for rows.Next() {
		rev, err := scanMySQLRevision(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan revision")
		}
		revs = append(revs, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate revisions")
	}
	return revs, nil
}

// Get retrieves one revision of a document.
func (m *MySQLRevisionRepository) Get(
	ctx context.Context,
	documentID, revisionID uuid.UUID,
) (*documentDomain.Revision, error) {
	querier := database.GetTx(ctx, m.db)

	ids, err := marshalIDs(documentID, revisionID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal revision ids")
	}

	query := `SELECT ` + revisionColumns + ` FROM document_revisions
			  WHERE document_id = ? AND id = ?`

	rev, err := scanMySQLRevision(querier.QueryRowContext(ctx, query, ids[0], ids[1]))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, documentDomain.ErrRevisionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get revision")
	}
	return rev, nil
}

func scanMySQLRevision(row scanner) (*documentDomain.Revision, error) {
	var (
		rev                      documentDomain.Revision
		id, documentID, authorID []byte
	)
	if err := row.Scan(&id, &documentID, &rev.Title, &rev.Content, &authorID, &rev.CreatedAt); err != nil {
		return nil, err
	}

	for _, pair := range []struct {
		dst *uuid.UUID
		src []byte
	}{
		{&rev.ID, id},
		{&rev.DocumentID, documentID},
		{&rev.AuthorID, authorID},
	} {
		if err := pair.dst.UnmarshalBinary(pair.src); err != nil {
			return nil, err
		}
	}
	return &rev, nil
}

func marshalIDs(ids ...uuid.UUID) ([][]byte, error) {
	out := make([][]byte, len(ids))
	for i, id := range ids {
		b, err := id.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// NewMySQLRevisionRepository creates a new MySQL Revision repository.
func NewMySQLRevisionRepository(db *sql.DB) *MySQLRevisionRepository {
	return &MySQLRevisionRepository{db: db}
}
