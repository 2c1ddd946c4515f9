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

// MySQLUserRepository implements User persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User. Returns ErrUserAlreadyExists when the username is taken.
func (m *MySQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, username, password_hash, role, is_active, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*authDomain.User, error) {
	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT id, username, password_hash, role, is_active, created_at FROM users WHERE id = ?`
	return m.get(ctx, query, id)
}

// GetByUsername retrieves a User by username.
func (m *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*authDomain.User, error) {
	query := `SELECT id, username, password_hash, role, is_active, created_at FROM users WHERE username = ?`
	return m.get(ctx, query, username)
}

func (m *MySQLUserRepository) get(ctx context.Context, query string, arg any) (*authDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	var (
		user    authDomain.User
		idBytes []byte
	)

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&idBytes,
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

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &user, nil
}

// NewMySQLUserRepository creates a new MySQL User repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
