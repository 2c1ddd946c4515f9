// Package mocks provides testify mocks of the document use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

// MockDocumentUseCase is a mock implementation of usecase.DocumentUseCase.
type MockDocumentUseCase struct {
	mock.Mock
}

func (m *MockDocumentUseCase) document(args mock.Arguments) (*documentDomain.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Document), args.Error(1)
}

func (m *MockDocumentUseCase) CreateDraft(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
) (*documentDomain.Document, error) {
	return m.document(m.Called(ctx, actor, ct))
}

func (m *MockDocumentUseCase) Create(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	input *documentDomain.CreateDocumentInput,
) (*documentDomain.Document, error) {
	return m.document(m.Called(ctx, actor, ct, input))
}

func (m *MockDocumentUseCase) Get(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
) (*documentDomain.Document, error) {
	return m.document(m.Called(ctx, actor, ct, id))
}

func (m *MockDocumentUseCase) List(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	filter documentDomain.ListFilter,
) ([]*documentDomain.Document, error) {
	args := m.Called(ctx, actor, ct, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documentDomain.Document), args.Error(1)
}

func (m *MockDocumentUseCase) Update(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
	input *documentDomain.UpdateDocumentInput,
) (*documentDomain.Document, error) {
	return m.document(m.Called(ctx, actor, ct, id, input))
}

func (m *MockDocumentUseCase) Delete(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
	force bool,
) (*documentDomain.Document, error) {
	return m.document(m.Called(ctx, actor, ct, id, force))
}

func (m *MockDocumentUseCase) ListRevisions(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
) ([]*documentDomain.Revision, error) {
	args := m.Called(ctx, actor, ct, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documentDomain.Revision), args.Error(1)
}

func (m *MockDocumentUseCase) GetRevision(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id, revisionID uuid.UUID,
) (*documentDomain.Revision, error) {
	args := m.Called(ctx, actor, ct, id, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.Revision), args.Error(1)
}
