package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/jsondocs/internal/database"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

// PostgreSQLRoleRepository implements Role persistence for PostgreSQL.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// Get retrieves a role by name.
func (r *PostgreSQLRoleRepository) Get(ctx context.Context, name string) (*roleDomain.Role, error) {
	query := `SELECT name, display_name, capabilities, created_at, updated_at FROM roles WHERE name = $1`
	return r.get(ctx, query, name)
}

// GetForUpdate retrieves a role by name, locking the row until the surrounding transaction ends.
func (r *PostgreSQLRoleRepository) GetForUpdate(ctx context.Context, name string) (*roleDomain.Role, error) {
	query := `SELECT name, display_name, capabilities, created_at, updated_at FROM roles WHERE name = $1 FOR UPDATE`
	return r.get(ctx, query, name)
}

func (r *PostgreSQLRoleRepository) get(ctx context.Context, query, name string) (*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	role, err := scanRole(querier.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, roleDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role")
	}
	return role, nil
}

// List retrieves every role ordered by name.
func (r *PostgreSQLRoleRepository) List(ctx context.Context) ([]*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT name, display_name, capabilities, created_at, updated_at FROM roles ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer func() {
		_ = rows.Close()
	}()

	roles := make([]*roleDomain.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}
	return roles, nil
}

// UpdateCapabilities persists the role's capability set and update time.
func (r *PostgreSQLRoleRepository) UpdateCapabilities(ctx context.Context, role *roleDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	caps, err := encodeCapabilities(role.Capabilities)
	if err != nil {
		return err
	}

	query := `UPDATE roles SET capabilities = $1, updated_at = $2 WHERE name = $3`

	result, err := querier.ExecContext(ctx, query, caps, role.UpdatedAt, role.Name)
	if err != nil {
		return apperrors.Wrap(err, "failed to update role capabilities")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return roleDomain.ErrRoleNotFound
	}
	return nil
}

// NewPostgreSQLRoleRepository creates a new PostgreSQL Role repository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}
