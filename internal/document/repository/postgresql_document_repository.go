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

// PostgreSQLDocumentRepository implements Document persistence for PostgreSQL.
type PostgreSQLDocumentRepository struct {
	db *sql.DB
}

// Create inserts a new Document.
func (p *PostgreSQLDocumentRepository) Create(ctx context.Context, doc *documentDomain.Document) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO documents (` + documentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Type,
		doc.Title,
		doc.Content,
		string(doc.Status),
		doc.AuthorID,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create document")
	}
	return nil
}

// Update persists the mutable fields of a Document.
func (p *PostgreSQLDocumentRepository) Update(ctx context.Context, doc *documentDomain.Document) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE documents
			  SET title = $1,
			      content = $2,
			      status = $3,
			      updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		doc.Title,
		doc.Content,
		string(doc.Status),
		doc.UpdatedAt,
		doc.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update document")
	}
	return checkAffected(result, documentDomain.ErrDocumentNotFound)
}

// Get retrieves a Document by ID.
func (p *PostgreSQLDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return p.get(ctx, query, id)
}

// GetForUpdate retrieves a Document by ID and locks its row for the current transaction.
func (p *PostgreSQLDocumentRepository) GetForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*documentDomain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 FOR UPDATE`
	return p.get(ctx, query, id)
}

func (p *PostgreSQLDocumentRepository) get(
	ctx context.Context,
	query string,
	id uuid.UUID,
) (*documentDomain.Document, error) {
	querier := database.GetTx(ctx, p.db)

	doc, err := scanPostgreSQLDocument(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, documentDomain.ErrDocumentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get document")
	}
	return doc, nil
}

// List retrieves documents matching filter, newest first.
func (p *PostgreSQLDocumentRepository) List(
	ctx context.Context,
	filter documentDomain.ListFilter,
) ([]*documentDomain.Document, error) {
	querier := database.GetTx(ctx, p.db)

	var authorID any
	if filter.AuthorID != nil {
		authorID = *filter.AuthorID
	}
	query, args := listQuery(filter, authorID, dollarPlaceholder)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list documents")
	}
	defer func() {
		_ = rows.Close()
	}()

	docs := make([]*documentDomain.Document, 0)
	for rows.Next() {
		doc, err := scanPostgreSQLDocument(rows)
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
func (p *PostgreSQLDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete document")
	}
	return checkAffected(result, documentDomain.ErrDocumentNotFound)
}

func scanPostgreSQLDocument(row scanner) (*documentDomain.Document, error) {
	var (
		doc    documentDomain.Document
		status string
	)
	err := row.Scan(
		&doc.ID,
		&doc.Type,
		&doc.Title,
		&doc.Content,
		&status,
		&doc.AuthorID,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	doc.Status = documentDomain.Status(status)
	return &doc, nil
}

// NewPostgreSQLDocumentRepository creates a new PostgreSQL Document repository.
func NewPostgreSQLDocumentRepository(db *sql.DB) *PostgreSQLDocumentRepository {
	return &PostgreSQLDocumentRepository{db: db}
}
