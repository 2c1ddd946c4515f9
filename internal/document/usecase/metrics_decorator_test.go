package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	"github.com/allisson/jsondocs/internal/metrics"
)

func TestDocumentUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(ctx))
	}()

	bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	f := newDocumentFixture(t, false)
	a := actor("edit_json")
	doc := storedDocument(a.User.ID, documentDomain.StatusDraft)
	missing := uuid.Must(uuid.NewV7())

	f.docs.On("Get", ctx, doc.ID).Return(doc, nil).Once()
	f.docs.On("Get", ctx, missing).Return(nil, documentDomain.ErrDocumentNotFound).Once()

	uc := NewDocumentUseCaseWithMetrics(f.uc, bm)

	got, err := uc.Get(ctx, a, jsonType(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)

	_, err = uc.Get(ctx, a, jsonType(), missing)
	assert.ErrorIs(t, err, documentDomain.ErrDocumentNotFound)

	_, err = uc.List(ctx, actor(), jsonType(), documentDomain.ListFilter{})
	assert.ErrorIs(t, err, documentDomain.ErrForbidden)

	f.docs.AssertExpectations(t)
}
