package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	"github.com/allisson/jsondocs/internal/metrics"
)

const metricsDomain = "documents"

type documentUseCaseWithMetrics struct {
	next    DocumentUseCase
	metrics metrics.BusinessMetrics
}

// NewDocumentUseCaseWithMetrics wraps a DocumentUseCase with metrics recording.
func NewDocumentUseCaseWithMetrics(useCase DocumentUseCase, m metrics.BusinessMetrics) DocumentUseCase {
	return &documentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *documentUseCaseWithMetrics) CreateDraft(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
) (*documentDomain.Document, error) {
	start := time.Now()
	doc, err := d.next.CreateDraft(ctx, actor, ct)
	metrics.Observe(ctx, d.metrics, metricsDomain, "document_create_draft", start, err)
	return doc, err
}

func (d *documentUseCaseWithMetrics) Create(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	input *documentDomain.CreateDocumentInput,
) (*documentDomain.Document, error) {
	start := time.Now()
	doc, err := d.next.Create(ctx, actor, ct, input)
	metrics.Observe(ctx, d.metrics, metricsDomain, "document_create", start, err)
	return doc, err
}

func (d *documentUseCaseWithMetrics) Get(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
) (*documentDomain.Document, error) {
	start := time.Now()
	doc, err := d.next.Get(ctx, actor, ct, id)
	metrics.Observe(ctx, d.metrics, metricsDomain, "document_get", start, err)
	return doc, err
}

func (d *documentUseCaseWithMetrics) List(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	filter documentDomain.ListFilter,
) ([]*documentDomain.Document, error) {
	start := time.Now()
	docs, err := d.next.List(ctx, actor, ct, filter)
	metrics.Observe(ctx, d.metrics, metricsDomain, "document_list", start, err)
	return docs, err
}

func (d *documentUseCaseWithMetrics) Update(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
	input *documentDomain.UpdateDocumentInput,
) (*documentDomain.Document, error) {
	start := time.Now()
	doc, err := d.next.Update(ctx, actor, ct, id, input)
	metrics.Observe(ctx, d.metrics, metricsDomain, "document_update", start, err)
	return doc, err
}

func (d *documentUseCaseWithMetrics) Delete(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
	force bool,
) (*documentDomain.Document, error) {
	start := time.Now()
	doc, err := d.next.Delete(ctx, actor, ct, id, force)
	metrics.Observe(ctx, d.metrics, metricsDomain, "document_delete", start, err)
	return doc, err
}

func (d *documentUseCaseWithMetrics) ListRevisions(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id uuid.UUID,
) ([]*documentDomain.Revision, error) {
	start := time.Now()
	revs, err := d.next.ListRevisions(ctx, actor, ct, id)
	metrics.Observe(ctx, d.metrics, metricsDomain, "revision_list", start, err)
	return revs, err
}

func (d *documentUseCaseWithMetrics) GetRevision(
	ctx context.Context,
	actor *authDomain.Principal,
	ct contentTypeDomain.ContentType,
	id, revisionID uuid.UUID,
) (*documentDomain.Revision, error) {
	start := time.Now()
	rev, err := d.next.GetRevision(ctx, actor, ct, id, revisionID)
	metrics.Observe(ctx, d.metrics, metricsDomain, "revision_get", start, err)
	return rev, err
}
