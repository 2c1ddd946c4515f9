// Package usecase implements document lifecycle, revision history and export.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

// DocumentRepository defines persistence operations for documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *documentDomain.Document) error

	// Update persists title, content, status and updated_at. Returns ErrDocumentNotFound if not found.
	Update(ctx context.Context, doc *documentDomain.Document) error

	// Get retrieves a document by ID. Returns ErrDocumentNotFound if not found.
	Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error)

	// GetForUpdate retrieves a document by ID and locks it until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error)

	List(ctx context.Context, filter documentDomain.ListFilter) ([]*documentDomain.Document, error)

	// Delete removes a document and its revisions. Returns ErrDocumentNotFound if not found.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RevisionRepository defines persistence operations for document revisions.
type RevisionRepository interface {
	Create(ctx context.Context, rev *documentDomain.Revision) error

	// ListByDocument returns the revisions of a document, newest first.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*documentDomain.Revision, error)

	// Get retrieves one revision of a document. Returns ErrRevisionNotFound if not found.
	Get(ctx context.Context, documentID, revisionID uuid.UUID) (*documentDomain.Revision, error)
}

// DocumentUseCase manages documents of a content type on behalf of an actor.
// Every operation returns ErrForbidden when the actor lacks the needed capability and
// ErrDocumentNotFound when the document does not exist or belongs to another type.
type DocumentUseCase interface {
	// CreateDraft stores an empty auto-draft placeholder owned by actor.
	CreateDraft(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
	) (*documentDomain.Document, error)

	// Create stores a new document. An empty status means draft.
	Create(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
		input *documentDomain.CreateDocumentInput,
	) (*documentDomain.Document, error)

	// Get returns one document. A nil actor is an anonymous reader and only sees
	// published documents.
	Get(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
		id uuid.UUID,
	) (*documentDomain.Document, error)

	// List returns documents of ct. Without a status filter, trashed documents and
	// auto-drafts are left out. A nil actor lists published documents only.
	List(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
		filter documentDomain.ListFilter,
	) ([]*documentDomain.Document, error)

	// Update applies a partial update. Saving an auto-draft without a status makes it a draft.
	Update(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
		id uuid.UUID,
		input *documentDomain.UpdateDocumentInput,
	) (*documentDomain.Document, error)

	// Delete moves a document to the trash, or removes it permanently when force is set.
	// It returns the document as it was before a permanent delete.
	Delete(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
		id uuid.UUID,
		force bool,
	) (*documentDomain.Document, error)

	ListRevisions(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
		id uuid.UUID,
	) ([]*documentDomain.Revision, error)

	GetRevision(
		ctx context.Context,
		actor *authDomain.Principal,
		ct contentTypeDomain.ContentType,
		id, revisionID uuid.UUID,
	) (*documentDomain.Revision, error)
}

// ExportUseCase writes document representations to a blob bucket.
type ExportUseCase interface {
	// Export writes every non-trashed document of every REST-visible content type as
	// <prefix><id>.json and returns how many were written.
	Export(ctx context.Context, bucketURL, prefix string) (int, error)
}
