package usecase

import (
	"context"
	"time"

	"github.com/allisson/jsondocs/internal/metrics"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

const metricsDomain = "roles"

type roleUseCaseWithMetrics struct {
	next    RoleUseCase
	metrics metrics.BusinessMetrics
}

// NewRoleUseCaseWithMetrics wraps a RoleUseCase with metrics recording.
func NewRoleUseCaseWithMetrics(useCase RoleUseCase, m metrics.BusinessMetrics) RoleUseCase {
	return &roleUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *roleUseCaseWithMetrics) GrantCapabilities(
	ctx context.Context,
	roles []string,
	caps []string,
) (*roleDomain.GrantResult, error) {
	start := time.Now()
	result, err := r.next.GrantCapabilities(ctx, roles, caps)
	metrics.Observe(ctx, r.metrics, metricsDomain, "grant_capabilities", start, err)
	return result, err
}

func (r *roleUseCaseWithMetrics) Get(ctx context.Context, name string) (*roleDomain.Role, error) {
	start := time.Now()
	role, err := r.next.Get(ctx, name)
	metrics.Observe(ctx, r.metrics, metricsDomain, "role_get", start, err)
	return role, err
}

func (r *roleUseCaseWithMetrics) List(ctx context.Context) ([]*roleDomain.Role, error) {
	start := time.Now()
	roles, err := r.next.List(ctx)
	metrics.Observe(ctx, r.metrics, metricsDomain, "role_list", start, err)
	return roles, err
}
