// Package usecase implements user management and token-based authentication.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create stores a new user. Returns ErrUserAlreadyExists if the username is taken.
	Create(ctx context.Context, user *authDomain.User) error

	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID uuid.UUID) (*authDomain.User, error)

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*authDomain.User, error)
}

// TokenRepository defines persistence operations for bearer tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *authDomain.Token) error

	// GetByTokenHash retrieves a token by hash. Returns ErrTokenNotFound if not found.
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.Token, error)

	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
	CountExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

// RoleReader resolves the capabilities of a user's role.
type RoleReader interface {
	Get(ctx context.Context, name string) (*roleDomain.Role, error)
}

// UserUseCase manages user accounts.
type UserUseCase interface {
	// Create hashes the password and stores a user assigned to an existing role.
	Create(ctx context.Context, input *authDomain.CreateUserInput) (*authDomain.User, error)
}

// TokenUseCase issues tokens and authenticates requests.
type TokenUseCase interface {
	// Issue exchanges a username and password for a bearer token.
	// Unknown users and wrong passwords both return ErrInvalidCredentials.
	Issue(ctx context.Context, input *authDomain.IssueTokenInput) (*authDomain.IssueTokenOutput, error)

	// Authenticate resolves a token hash to a principal.
	Authenticate(ctx context.Context, tokenHash string) (*authDomain.Principal, error)

	// AuthenticatePassword resolves a username and password to a principal.
	AuthenticatePassword(ctx context.Context, username, password string) (*authDomain.Principal, error)

	// CleanupExpired deletes tokens that expired more than days ago. With dryRun it only
	// counts them.
	CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error)
}
