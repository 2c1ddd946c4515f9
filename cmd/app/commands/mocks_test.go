package commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(ctx context.Context, input *authDomain.CreateUserInput) (*authDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

type mockGranter struct {
	mock.Mock
}

func (m *mockGranter) GrantContentTypeCapabilities(
	ctx context.Context,
	roles []string,
) (*roleDomain.GrantResult, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roleDomain.GrantResult), args.Error(1)
}

type mockExportUseCase struct {
	mock.Mock
}

func (m *mockExportUseCase) Export(ctx context.Context, bucketURL, prefix string) (int, error) {
	args := m.Called(ctx, bucketURL, prefix)
	return args.Int(0), args.Error(1)
}
