package commands

import (
	"context"
	"fmt"
	"log/slog"

	authUseCase "github.com/allisson/jsondocs/internal/auth/usecase"
)

// RunCleanExpiredTokens deletes bearer tokens that expired more than days ago.
// Supports dry-run mode to preview the deletion count and both text/JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredTokens(
	ctx context.Context,
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
	io IOTuple,
	days int,
	dryRun bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	logger.Info("cleaning expired tokens", slog.Int("days", days), slog.Bool("dry_run", dryRun))

	count, err := tokenUseCase.CleanupExpired(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to cleanup expired tokens: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		}); err != nil {
			return err
		}
	} else if dryRun {
		_, _ = fmt.Fprintf(io.Writer, "Dry-run mode: Would delete %d expired token(s) older than %d day(s)\n", count, days)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Successfully deleted %d expired token(s) older than %d day(s)\n", count, days)
	}

	logger.Info("cleanup completed", slog.Int64("count", count), slog.Bool("dry_run", dryRun))
	return nil
}
