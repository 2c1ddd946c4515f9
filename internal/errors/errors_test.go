package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})
}

func TestWrapf(t *testing.T) {
	baseErr := errors.New("base error")

	wrapped := Wrapf(baseErr, "document %d", 123)
	require.Error(t, wrapped)
	assert.Equal(t, "document 123: base error", wrapped.Error())
	assert.ErrorIs(t, wrapped, baseErr)
	assert.NoError(t, Wrapf(nil, "document %d", 1))
}

func TestIs(t *testing.T) {
	notFound := Wrap(ErrNotFound, "document not found")
	assert.True(t, Is(notFound, ErrNotFound))
	assert.False(t, Is(notFound, ErrConflict))

	trashed := Wrap(Wrap(ErrConflict, "document is already in the trash"), "failed to delete document")
	assert.True(t, Is(trashed, ErrConflict))
	assert.Equal(t, "failed to delete document: document is already in the trash: conflict", trashed.Error())
}
