package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	authMocks "github.com/allisson/jsondocs/internal/auth/http/mocks"
)

func TestRunCleanExpiredTokens(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output", func(t *testing.T) {
		useCase := &authMocks.MockTokenUseCase{}
		useCase.On("CleanupExpired", ctx, 30, false).Return(int64(5), nil)

		var out bytes.Buffer
		err := RunCleanExpiredTokens(ctx, useCase, logger, IOTuple{Writer: &out}, 30, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 5 expired token(s) older than 30 day(s)")
		useCase.AssertExpectations(t)
	})

	t.Run("dry-run", func(t *testing.T) {
		useCase := &authMocks.MockTokenUseCase{}
		useCase.On("CleanupExpired", ctx, 7, true).Return(int64(2), nil)

		var out bytes.Buffer
		err := RunCleanExpiredTokens(ctx, useCase, logger, IOTuple{Writer: &out}, 7, true, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Dry-run mode: Would delete 2 expired token(s)")
		useCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		useCase := &authMocks.MockTokenUseCase{}
		useCase.On("CleanupExpired", ctx, 0, false).Return(int64(0), nil)

		var out bytes.Buffer
		err := RunCleanExpiredTokens(ctx, useCase, logger, IOTuple{Writer: &out}, 0, false, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"dry_run": false`)
		useCase.AssertExpectations(t)
	})

	t.Run("negative-days", func(t *testing.T) {
		err := RunCleanExpiredTokens(ctx, &authMocks.MockTokenUseCase{}, logger, IOTuple{Writer: &bytes.Buffer{}}, -1, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "days must be a positive number")
	})

	t.Run("use-case-error", func(t *testing.T) {
		useCase := &authMocks.MockTokenUseCase{}
		useCase.On("CleanupExpired", ctx, 1, false).Return(int64(0), errors.New("db down"))

		err := RunCleanExpiredTokens(ctx, useCase, logger, IOTuple{Writer: &bytes.Buffer{}}, 1, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to cleanup expired tokens")
	})
}
