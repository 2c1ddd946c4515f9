package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	"github.com/allisson/jsondocs/internal/database"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	customValidation "github.com/allisson/jsondocs/internal/validation"
)

const (
	defaultListLimit = 50
	maxListLimit     = 1000
)

// visibleStatuses are listed when no status filter is given.
var visibleStatuses = []documentDomain.Status{
	documentDomain.StatusDraft,
	documentDomain.StatusPending,
	documentDomain.StatusPrivate,
	documentDomain.StatusPublish,
}

type documentUseCase struct {
	txManager       database.TxManager
	documentRepo    DocumentRepository
	revisionRepo    RevisionRepository
	validateOnWrite bool
}

func (d *documentUseCase) CreateDraft(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
) (*documentDomain.Document, error) {
	if !documentDomain.NewPolicy(ct).CanCreate(actor) {
		return nil, documentDomain.ErrForbidden
	}

	now := time.Now().UTC()
	doc := &documentDomain.Document{
		ID:        uuid.Must(uuid.NewV7()),
		Type:      ct.Name,
		Status:    documentDomain.StatusAutoDraft,
		AuthorID:  actor.User.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *documentUseCase) Create(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	input *documentDomain.CreateDocumentInput,
) (*documentDomain.Document, error) {
	policy := documentDomain.NewPolicy(ct)
	if !policy.CanCreate(actor) {
		return nil, documentDomain.ErrForbidden
	}

	status := input.Status
	if status == "" {
		status = documentDomain.StatusDraft
	}
	if !policy.CanSetStatus(actor, status) {
		return nil, documentDomain.ErrForbidden
	}
	if err := d.validateContent(input.Content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &documentDomain.Document{
		ID:        uuid.Must(uuid.NewV7()),
		Type:      ct.Name,
		Title:     input.Title,
		Content:   input.Content,
		Status:    status,
		AuthorID:  actor.User.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := d.documentRepo.Create(ctx, doc); err != nil {
			return err
		}
		if !ct.SupportsFeature("revisions") {
			return nil
		}
		return d.revisionRepo.Create(ctx, documentDomain.NewRevision(doc, actor.User.ID, now))
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *documentUseCase) Get(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
) (*documentDomain.Document, error) {
	doc, err := d.documentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Type != ct.Name {
		return nil, documentDomain.ErrDocumentNotFound
	}
	if !documentDomain.NewPolicy(ct).CanRead(actor, doc) {
		if actor == nil {
			return nil, documentDomain.ErrAuthenticationRequired
		}
		return nil, documentDomain.ErrForbidden
	}
	return doc, nil
}

func (d *documentUseCase) List(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	filter documentDomain.ListFilter,
) ([]*documentDomain.Document, error) {
	policy := documentDomain.NewPolicy(ct)
	filter.Type = ct.Name

	switch {
	case actor == nil:
		for _, status := range filter.Statuses {
			if status != documentDomain.StatusPublish {
				return nil, documentDomain.ErrAuthenticationRequired
			}
		}
		filter.AuthorID = nil
		filter.Statuses = []documentDomain.Status{documentDomain.StatusPublish}
	case !policy.CanCreate(actor):
		return nil, documentDomain.ErrForbidden
	default:
		if !policy.CanListOthers(actor) {
			authorID := actor.User.ID
			filter.AuthorID = &authorID
		}
		if len(filter.Statuses) == 0 {
			filter.Statuses = visibleStatuses
		}
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return d.documentRepo.List(ctx, filter)
}

func (d *documentUseCase) Update(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
	input *documentDomain.UpdateDocumentInput,
) (*documentDomain.Document, error) {
	policy := documentDomain.NewPolicy(ct)
	if input.Content != nil {
		if err := d.validateContent(*input.Content); err != nil {
			return nil, err
		}
	}

	var doc *documentDomain.Document
	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		doc, err = d.documentRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if doc.Type != ct.Name {
			return documentDomain.ErrDocumentNotFound
		}
		if !policy.CanEdit(actor, doc) {
			return documentDomain.ErrForbidden
		}

		changed := false
		if input.Title != nil && *input.Title != doc.Title {
			doc.Title = *input.Title
			changed = true
		}
		if input.Content != nil && *input.Content != doc.Content {
			doc.Content = *input.Content
			changed = true
		}

		switch {
		case input.Status != nil:
			if *input.Status != doc.Status && !policy.CanSetStatus(actor, *input.Status) {
				return documentDomain.ErrForbidden
			}
			doc.Status = *input.Status
		case doc.Status == documentDomain.StatusAutoDraft:
			doc.Status = documentDomain.StatusDraft
		}

		now := time.Now().UTC()
		doc.UpdatedAt = now
		if err := d.documentRepo.Update(ctx, doc); err != nil {
			return err
		}

		if !changed || !ct.SupportsFeature("revisions") {
			return nil
		}
		return d.revisionRepo.Create(ctx, documentDomain.NewRevision(doc, actor.User.ID, now))
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *documentUseCase) Delete(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
	force bool,
) (*documentDomain.Document, error) {
	var doc *documentDomain.Document
	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		doc, err = d.documentRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if doc.Type != ct.Name {
			return documentDomain.ErrDocumentNotFound
		}
		if !documentDomain.NewPolicy(ct).CanEdit(actor, doc) {
			return documentDomain.ErrForbidden
		}

		if force {
			return d.documentRepo.Delete(ctx, id)
		}
		if doc.Status == documentDomain.StatusTrash {
			return documentDomain.ErrAlreadyTrashed
		}

		doc.Status = documentDomain.StatusTrash
		doc.UpdatedAt = time.Now().UTC()
		return d.documentRepo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *documentUseCase) ListRevisions(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
) ([]*documentDomain.Revision, error) {
	if _, err := d.editableWithRevisions(ctx, actor, ct, id); err != nil {
		return nil, err
	}
	return d.revisionRepo.ListByDocument(ctx, id)
}

func (d *documentUseCase) GetRevision(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id, revisionID uuid.UUID,
) (*documentDomain.Revision, error) {
	if _, err := d.editableWithRevisions(ctx, actor, ct, id); err != nil {
		return nil, err
	}
	return d.revisionRepo.Get(ctx, id, revisionID)
}

// editableWithRevisions loads a document whose history the actor may inspect.
func (d *documentUseCase) editableWithRevisions(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
) (*documentDomain.Document, error) {
	if !ct.SupportsFeature("revisions") {
		return nil, documentDomain.ErrRevisionsNotSupported
	}

	doc, err := d.documentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Type != ct.Name {
		return nil, documentDomain.ErrDocumentNotFound
	}
	if !documentDomain.NewPolicy(ct).CanEdit(actor, doc) {
		return nil, documentDomain.ErrForbidden
	}
	return doc, nil
}

func (d *documentUseCase) validateContent(content string) error {
	if !d.validateOnWrite {
		return nil
	}
	if err := validation.Validate(content, customValidation.JSONDocument); err != nil {
		return apperrors.Wrap(documentDomain.ErrInvalidContent, err.Error())
	}
	return nil
}

// NewDocumentUseCase creates a new DocumentUseCase. With validateOnWrite set, bodies that
// are not valid JSON text are rejected with ErrInvalidContent.
func NewDocumentUseCase(
	txManager database.TxManager,
	documentRepo DocumentRepository,
	revisionRepo RevisionRepository,
	validateOnWrite bool,
) DocumentUseCase {
	return &documentUseCase{
		txManager:       txManager,
		documentRepo:    documentRepo,
		revisionRepo:    revisionRepo,
		validateOnWrite: validateOnWrite,
	}
}
