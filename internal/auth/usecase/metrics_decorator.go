package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	"github.com/allisson/jsondocs/internal/metrics"
)

const metricsDomain = "auth"

type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{next: useCase, metrics: m}
}

func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	start := time.Now()
	output, err := t.next.Issue(ctx, input)
	metrics.Observe(ctx, t.metrics, metricsDomain, "token_issue", start, err)
	return output, err
}

func (t *tokenUseCaseWithMetrics) Authenticate(ctx context.Context, tokenHash string) (*authDomain.Principal, error) {
	start := time.Now()
	principal, err := t.next.Authenticate(ctx, tokenHash)
	metrics.Observe(ctx, t.metrics, metricsDomain, "token_authenticate", start, err)
	return principal, err
}

func (t *tokenUseCaseWithMetrics) AuthenticatePassword(
	ctx context.Context,
	username, password string,
) (*authDomain.Principal, error) {
	start := time.Now()
	principal, err := t.next.AuthenticatePassword(ctx, username, password)
	metrics.Observe(ctx, t.metrics, metricsDomain, "password_authenticate", start, err)
	return principal, err
}

func (t *tokenUseCaseWithMetrics) CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := t.next.CleanupExpired(ctx, days, dryRun)
	metrics.Observe(ctx, t.metrics, metricsDomain, "token_cleanup", start, err)
	return count, err
}

type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{next: useCase, metrics: m}
}

func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	input *authDomain.CreateUserInput,
) (*authDomain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_create", start, err)
	return user, err
}
