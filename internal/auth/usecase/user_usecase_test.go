package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	databaseMocks "github.com/allisson/jsondocs/internal/database/mocks"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	input := &authDomain.CreateUserInput{Username: "alice", Password: "secret-password", Role: "editor", IsActive: true}

	t.Run("Success", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		users := &mockUserRepository{}
		roles := &mockRoleReader{}
		passwords := &mockPasswordService{}

		passwords.On("HashPassword", "secret-password").Return("hashed", nil).Once()
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		roles.On("Get", ctx, "editor").Return(&roleDomain.Role{Name: "editor"}, nil).Once()
		users.On("Create", ctx, mock.MatchedBy(func(u *authDomain.User) bool {
			return u.Username == "alice" && u.PasswordHash == "hashed" && u.Role == "editor" && u.IsActive
		})).Return(nil).Once()

		uc := NewUserUseCase(txManager, users, roles, passwords)
		user, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		users.AssertExpectations(t)
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		users := &mockUserRepository{}
		roles := &mockRoleReader{}
		passwords := &mockPasswordService{}

		passwords.On("HashPassword", "secret-password").Return("hashed", nil).Once()
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		roles.On("Get", ctx, "editor").Return(nil, roleDomain.ErrRoleNotFound).Once()

		uc := NewUserUseCase(txManager, users, roles, passwords)
		_, err := uc.Create(ctx, input)
		assert.ErrorIs(t, err, roleDomain.ErrRoleNotFound)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicateUsername", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		users := &mockUserRepository{}
		roles := &mockRoleReader{}
		passwords := &mockPasswordService{}

		passwords.On("HashPassword", "secret-password").Return("hashed", nil).Once()
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		roles.On("Get", ctx, "editor").Return(&roleDomain.Role{Name: "editor"}, nil).Once()
		users.On("Create", ctx, mock.Anything).Return(authDomain.ErrUserAlreadyExists).Once()

		uc := NewUserUseCase(txManager, users, roles, passwords)
		_, err := uc.Create(ctx, input)
		assert.ErrorIs(t, err, authDomain.ErrUserAlreadyExists)
	})

	t.Run("Error_InvalidInput", func(t *testing.T) {
		tests := []struct {
			name  string
			input *authDomain.CreateUserInput
		}{
			{"short password", &authDomain.CreateUserInput{Username: "alice", Password: "short", Role: "editor"}},
			{"blank password", &authDomain.CreateUserInput{Username: "alice", Password: "          ", Role: "editor"}},
			{"uppercase username", &authDomain.CreateUserInput{Username: "Alice", Password: "secret-password", Role: "editor"}},
			{"missing role", &authDomain.CreateUserInput{Username: "alice", Password: "secret-password"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				passwords := &mockPasswordService{}
				uc := NewUserUseCase(databaseMocks.NewMockTxManager(t), &mockUserRepository{}, &mockRoleReader{}, passwords)

				_, err := uc.Create(ctx, tt.input)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				passwords.AssertNotCalled(t, "HashPassword", mock.Anything)
			})
		}
	})
}
