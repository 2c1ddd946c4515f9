package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	authService "github.com/allisson/jsondocs/internal/auth/service"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

type tokenUseCase struct {
	expiration      time.Duration
	userRepo        UserRepository
	tokenRepo       TokenRepository
	roleReader      RoleReader
	passwordService authService.PasswordService
	tokenService    authService.TokenService
}

func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	user, err := t.verifyPassword(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	plainToken, tokenHash, err := t.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	token := &authDomain.Token{
		ID:        uuid.Must(uuid.NewV7()),
		TokenHash: tokenHash,
		UserID:    user.ID,
		ExpiresAt: now.Add(t.expiration),
		CreatedAt: now,
	}
	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &authDomain.IssueTokenOutput{
		PlainToken: plainToken,
		ExpiresAt:  token.ExpiresAt,
	}, nil
}

// Authenticate returns ErrInvalidCredentials for unknown, expired and revoked tokens,
// and ErrUserInactive when the owner has been deactivated.
func (t *tokenUseCase) Authenticate(ctx context.Context, tokenHash string) (*authDomain.Principal, error) {
	token, err := t.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrTokenNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !token.IsValid(time.Now().UTC()) {
		return nil, authDomain.ErrInvalidCredentials
	}

	user, err := t.userRepo.Get(ctx, token.UserID)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, authDomain.ErrUserInactive
	}

	return t.principal(ctx, user)
}

func (t *tokenUseCase) AuthenticatePassword(
	ctx context.Context,
	username, password string,
) (*authDomain.Principal, error) {
	user, err := t.verifyPassword(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return t.principal(ctx, user)
}

func (t *tokenUseCase) verifyPassword(ctx context.Context, username, password string) (*authDomain.User, error) {
	user, err := t.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !t.passwordService.ComparePassword(password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, authDomain.ErrUserInactive
	}
	return user, nil
}

// principal resolves the user's role. A role removed after the user was created leaves
// the principal without capabilities.
func (t *tokenUseCase) principal(ctx context.Context, user *authDomain.User) (*authDomain.Principal, error) {
	p := &authDomain.Principal{User: user}

	role, err := t.roleReader.Get(ctx, user.Role)
	switch {
	case apperrors.Is(err, roleDomain.ErrRoleNotFound):
		return p, nil
	case err != nil:
		return nil, err
	}

	p.Capabilities = role.Capabilities
	return p, nil
}

func (t *tokenUseCase) CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "days must be non-negative")
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	if dryRun {
		return t.tokenRepo.CountExpired(ctx, cutoff)
	}
	return t.tokenRepo.DeleteExpired(ctx, cutoff)
}

// NewTokenUseCase creates a new TokenUseCase issuing tokens valid for expiration.
func NewTokenUseCase(
	expiration time.Duration,
	userRepo UserRepository,
	tokenRepo TokenRepository,
	roleReader RoleReader,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		expiration:      expiration,
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		roleReader:      roleReader,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
