package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	authService "github.com/allisson/jsondocs/internal/auth/service"
	"github.com/allisson/jsondocs/internal/database"
	customValidation "github.com/allisson/jsondocs/internal/validation"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 256
)

type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	roleReader      RoleReader
	passwordService authService.PasswordService
}

// Create fails with ErrRoleNotFound when the role does not exist.
func (u *userUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateUserInput,
) (*authDomain.User, error) {
	if err := validateCreateUserInput(input); err != nil {
		return nil, err
	}

	hashed, err := u.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &authDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     input.Username,
		PasswordHash: hashed,
		Role:         input.Role,
		IsActive:     input.IsActive,
		CreatedAt:    time.Now().UTC(),
	}

	err = u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := u.roleReader.Get(ctx, input.Role); err != nil {
			return err
		}
		return u.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func validateCreateUserInput(input *authDomain.CreateUserInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Username,
			validation.Required,
			validation.Length(1, 255),
			customValidation.Identifier,
		),
		validation.Field(&input.Password,
			validation.Required,
			customValidation.PasswordStrength{MinLength: minPasswordLength, MaxLength: maxPasswordLength},
		),
		validation.Field(&input.Role, validation.Required, customValidation.Identifier),
	)
	return customValidation.WrapValidationError(err)
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	roleReader RoleReader,
	passwordService authService.PasswordService,
) UserUseCase {
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		roleReader:      roleReader,
		passwordService: passwordService,
	}
}
