package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/allisson/jsondocs/internal/database"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
	roleRepository "github.com/allisson/jsondocs/internal/role/repository"
	roleUseCase "github.com/allisson/jsondocs/internal/role/usecase"
)

type roleComponents struct {
	roleRepository roleUseCase.RoleRepository
	roleUseCase    roleUseCase.RoleUseCase

	roleRepositoryInit sync.Once
	roleUseCaseInit    sync.Once
}

// RoleRepository returns the role repository based on database driver.
func (c *Container) RoleRepository() (roleUseCase.RoleRepository, error) {
	err := c.once(&c.roleRepositoryInit, "roleRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for role repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.roleRepository = roleRepository.NewMySQLRoleRepository(db)
		case database.DriverPostgres:
			c.roleRepository = roleRepository.NewPostgreSQLRoleRepository(db)
		default:
			return c.unsupportedDriver()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.roleRepository, nil
}

// RoleUseCase returns the role use case.
func (c *Container) RoleUseCase() (roleUseCase.RoleUseCase, error) {
	err := c.once(&c.roleUseCaseInit, "roleUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for role use case: %w", err)
		}
		repository, err := c.RoleRepository()
		if err != nil {
			return fmt.Errorf("failed to get role repository for role use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for role use case: %w", err)
		}

		c.roleUseCase = roleUseCase.NewRoleUseCaseWithMetrics(
			roleUseCase.NewRoleUseCase(txManager, repository),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.roleUseCase, nil
}

// GrantContentTypeCapabilities grants the capabilities of every registered content type to
// roles. An empty roles list falls back to GRANT_ROLES.
func (c *Container) GrantContentTypeCapabilities(
	ctx context.Context,
	roles []string,
) (*roleDomain.GrantResult, error) {
	if len(roles) == 0 {
		roles = c.config.GrantRoles
	}

	registry, err := c.ContentTypeRegistry()
	if err != nil {
		return nil, err
	}
	useCase, err := c.RoleUseCase()
	if err != nil {
		return nil, err
	}

	var caps []string
	for _, ct := range registry.List() {
		caps = append(caps, ct.GrantSet()...)
	}

	result, err := useCase.GrantCapabilities(ctx, roles, caps)
	if err != nil {
		return nil, err
	}

	c.Logger().Info("content type capabilities granted",
		slog.Any("updated", result.Updated),
		slog.Any("unchanged", result.Unchanged),
		slog.Any("skipped", result.Skipped))
	return result, nil
}
