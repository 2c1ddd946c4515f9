// Package usecase implements role management and capability grants.
package usecase

import (
	"context"

	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

// RoleRepository defines persistence operations for roles.
// Implementations must support transaction-aware operations via context propagation.
type RoleRepository interface {
	// Get retrieves a role by name. Returns ErrRoleNotFound if not found.
	Get(ctx context.Context, name string) (*roleDomain.Role, error)

	// GetForUpdate retrieves a role by name and locks it for the current transaction.
	GetForUpdate(ctx context.Context, name string) (*roleDomain.Role, error)

	List(ctx context.Context) ([]*roleDomain.Role, error)

	// UpdateCapabilities persists the capability set of an existing role.
	UpdateCapabilities(ctx context.Context, role *roleDomain.Role) error
}

// RoleUseCase defines role operations.
type RoleUseCase interface {
	// GrantCapabilities adds caps to every named role that is missing any of them.
	// Roles that do not exist are reported as skipped rather than failing the run.
	GrantCapabilities(ctx context.Context, roles []string, caps []string) (*roleDomain.GrantResult, error)

	Get(ctx context.Context, name string) (*roleDomain.Role, error)

	List(ctx context.Context) ([]*roleDomain.Role, error)
}
