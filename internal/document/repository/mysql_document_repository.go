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

// MySQLDocumentRepository implements Document persistence for MySQL.
type MySQLDocumentRepository struct {
	db *sql.DB
}

// Create inserts a new Document.
func (m *MySQLDocumentRepository) Create(ctx context.Context, doc *documentDomain.Document) error {
	querier := database.GetTx(ctx, m.db)

	id, err := doc.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}
	authorID, err := doc.AuthorID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal author id")
	}

	query := `INSERT INTO documents (` + documentColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		doc.Type,
		doc.Title,
		doc.Content,
		string(doc.Status),
		authorID,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create document")
	}
	return nil
}

// Update persists the mutable fields of a Document. MySQL reports unchanged rows as
// unaffected, so a missing row is not detected here; callers load the row first.
func (m *MySQLDocumentRepository) Update(ctx context.Context, doc *documentDomain.Document) error {
	querier := database.GetTx(ctx, m.db)

	id, err := doc.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}

	query := `UPDATE documents
			  SET title = ?,
			      content = ?,
			      status = ?,
			      updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		doc.Title,
		doc.Content,
		string(doc.Status),
		doc.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update document")
	}
	return nil
}

// Get retrieves a Document by ID.
func (m *MySQLDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	return m.get(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
}

// GetForUpdate retrieves a Document by ID and locks its row for the current transaction.
func (m *MySQLDocumentRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	return m.get(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ? FOR UPDATE`, id)
}

func (m *MySQLDocumentRepository) get(
	ctx context.Context,
	query string,
	id uuid.UUID,
) (*documentDomain.Document, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal document id")
	}

	doc, err := scanMySQLDocument(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, documentDomain.ErrDocumentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get document")
	}
	return doc, nil
}

// List retrieves documents matching filter, newest first.
func (m *MySQLDocumentRepository) List(
	ctx context.Context,
	filter documentDomain.ListFilter,
) ([]*documentDomain.Document, error) {
	querier := database.GetTx(ctx, m.db)

	var authorID any
	if filter.AuthorID != nil {
		b, err := filter.AuthorID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal author id")
		}
		authorID = b
	}
	query, args := listQuery(filter, authorID, questionPlaceholder)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list documents")
	}
	defer func() {
		_ = rows.Close()
	}()

	docs := make([]*documentDomain.Document, 0)
	for rows.Next() {
		doc, err := scanMySQLDocument(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan document")
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate documents")
	}
	return docs, nil
}

// Delete removes a Document permanently.
func (m *MySQLDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete document")
	}
	return checkAffected(result, documentDomain.ErrDocumentNotFound)
}

func scanMySQLDocument(row scanner) (*documentDomain.Document, error) {
	var (
		doc           documentDomain.Document
		status        string
		idBytes       []byte
		authorIDBytes []byte
	)
	err := row.Scan(
		&idBytes,
		&doc.Type,
		&doc.Title,
		&doc.Content,
		&status,
		&authorIDBytes,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := doc.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal document id")
	}
	if err := doc.AuthorID.UnmarshalBinary(authorIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal author id")
	}
	doc.Status = documentDomain.Status(status)
	return &doc, nil
}

// NewMySQLDocumentRepository creates a new MySQL Document repository.
func NewMySQLDocumentRepository(db *sql.DB) *MySQLDocumentRepository {
	return &MySQLDocumentRepository{db: db}
}
