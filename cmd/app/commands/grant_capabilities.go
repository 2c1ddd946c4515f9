package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

// CapabilityGranter grants the capabilities of the registered content types to roles.
type CapabilityGranter interface {
	GrantContentTypeCapabilities(ctx context.Context, roles []string) (*roleDomain.GrantResult, error)
}

// RunGrantCapabilities grants the content type capabilities to roles, falling back to
// GRANT_ROLES when none are given. Re-running it is a no-op for roles already holding
// every capability.
//
// Requirements: Database must be migrated and accessible.
func RunGrantCapabilities(
	ctx context.Context,
	granter CapabilityGranter,
	logger *slog.Logger,
	io IOTuple,
	roles []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("granting content type capabilities", slog.Any("roles", roles))

	result, err := granter.GrantContentTypeCapabilities(ctx, roles)
	if err != nil {
		return fmt.Errorf("failed to grant capabilities: %w", err)
	}

	if format == "json" {
		return writeJSON(io.Writer, map[string][]string{
			"updated":   nonNil(result.Updated),
			"unchanged": nonNil(result.Unchanged),
			"skipped":   nonNil(result.Skipped),
		})
	}

	_, _ = fmt.Fprintf(io.Writer, "Updated: %s\n", joinOrNone(result.Updated))
	_, _ = fmt.Fprintf(io.Writer, "Unchanged: %s\n", joinOrNone(result.Unchanged))
	_, _ = fmt.Fprintf(io.Writer, "Skipped (unknown role): %s\n", joinOrNone(result.Skipped))
	return nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
