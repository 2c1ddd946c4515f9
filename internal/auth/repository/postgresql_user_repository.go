// Package repository implements persistence for users and tokens.
//
// PostgreSQL uses native UUID columns, MySQL stores UUIDs as BINARY(16).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	"github.com/allisson/jsondocs/internal/database"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

// PostgreSQLUserRepository implements User persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User. Returns ErrUserAlreadyExists when the username is taken.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, username, password_hash, role, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return authDomain.ErrUserAlreadyExists
		}
		if database.IsForeignKeyViolation(err) {
			return roleDomain.ErrRoleNotFound
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a User by ID.
func (p *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*authDomain.User, error) {
	query := `SELECT id, username, password_hash, role, is_active, created_at FROM users WHERE id = $1`
	return p.get(ctx, query, userID)
}

// GetByUsername retrieves a User by username.
func (p *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*authDomain.User, error) {
	query := `SELECT id, username, password_hash, role, is_active, created_at FROM users WHERE username = $1`
	return p.get(ctx, query, username)
}

func (p *PostgreSQLUserRepository) get(ctx context.Context, query string, arg any) (*authDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	var user authDomain.User

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	return &user, nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL User repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
