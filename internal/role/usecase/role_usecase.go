package usecase

import (
	"context"
	"time"

	"github.com/allisson/jsondocs/internal/database"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

type roleUseCase struct {
	txManager database.TxManager
	roleRepo  RoleRepository
}

// GrantCapabilities applies the grant to each role in its own transaction so one failing
// role does not roll back grants already applied to the others.
func (r *roleUseCase) GrantCapabilities(
	ctx context.Context,
	roles []string,
	caps []string,
) (*roleDomain.GrantResult, error) {
	result := &roleDomain.GrantResult{}
	seen := make(map[string]struct{}, len(roles))

	for _, name := range roles {
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}

		var updated bool
		err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
			role, err := r.roleRepo.GetForUpdate(ctx, name)
			if err != nil {
				return err
			}
			if role.HasAll(caps) {
				return nil
			}

			role.AddCapabilities(caps)
			role.UpdatedAt = time.Now().UTC()
			updated = true

			return r.roleRepo.UpdateCapabilities(ctx, role)
		})

		switch {
		case apperrors.Is(err, roleDomain.ErrRoleNotFound):
			result.Skipped = append(result.Skipped, name)
		case err != nil:
			return result, err
		case updated:
			result.Updated = append(result.Updated, name)
		default:
			result.Unchanged = append(result.Unchanged, name)
		}
	}

	return result, nil
}

func (r *roleUseCase) Get(ctx context.Context, name string) (*roleDomain.Role, error) {
	return r.roleRepo.Get(ctx, name)
}

func (r *roleUseCase) List(ctx context.Context) ([]*roleDomain.Role, error) {
	return r.roleRepo.List(ctx)
}

// NewRoleUseCase creates a new RoleUseCase.
func NewRoleUseCase(txManager database.TxManager, roleRepo RoleRepository) RoleUseCase {
	return &roleUseCase{
		txManager: txManager,
		roleRepo:  roleRepo,
	}
}
