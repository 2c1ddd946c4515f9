package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) Create(ctx context.Context, doc *documentDomain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockDocumentRepository) Update(ctx context.Context, doc *documentDomain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Document), args.Error(1)
}

func (m *mockDocumentRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*documentDomain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Document), args.Error(1)
}

func (m *mockDocumentRepository) List(
	ctx context.Context,
	filter documentDomain.ListFilter,
) ([]*documentDomain.Document, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documentDomain.Document), args.Error(1)
}

func (m *mockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRevisionRepository struct {
	mock.Mock
}

func (m *mockRevisionRepository) Create(ctx context.Context, rev *documentDomain.Revision) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *mockRevisionRepository) ListByDocument(
	ctx context.Context,
	documentID uuid.UUID,
) ([]*documentDomain.Revision, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documentDomain.Revision), args.Error(1)
}

func (m *mockRevisionRepository) Get(
	ctx context.Context,
	documentID, revisionID uuid.UUID,
) (*documentDomain.Revision, error) {
	args := m.Called(ctx, documentID, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Revision), args.Error(1)
}

type staticContentTypes []contentTypeDomain.ContentType

func (s staticContentTypes) RESTTypes() []contentTypeDomain.ContentType {
	return s
}
