package app

import (
	"fmt"
	"log/slog"
	"sync"

	authHTTP "github.com/allisson/jsondocs/internal/auth/http"
	authRepository "github.com/allisson/jsondocs/internal/auth/repository"
	authService "github.com/allisson/jsondocs/internal/auth/service"
	authUseCase "github.com/allisson/jsondocs/internal/auth/usecase"
	"github.com/allisson/jsondocs/internal/database"
)

type authComponents struct {
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	userRepository  authUseCase.UserRepository
	tokenRepository authUseCase.TokenRepository
	userUseCase     authUseCase.UserUseCase
	tokenUseCase    authUseCase.TokenUseCase

	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	userRepositoryInit  sync.Once
	tokenRepositoryInit sync.Once
	userUseCaseInit     sync.Once
	tokenUseCaseInit    sync.Once
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the token service for authentication operations.
func (c *Container) TokenService() authService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = authService.NewTokenService()
	})
	return c.tokenService
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (authUseCase.UserRepository, error) {
	err := c.once(&c.userRepositoryInit, "userRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for user repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.userRepository = authRepository.NewMySQLUserRepository(db)
		case database.DriverPostgres:
			c.userRepository = authRepository.NewPostgreSQLUserRepository(db)
		default:
			return c.unsupportedDriver()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.userRepository, nil
}

// TokenRepository returns the token repository based on database driver.
func (c *Container) TokenRepository() (authUseCase.TokenRepository, error) {
	err := c.once(&c.tokenRepositoryInit, "tokenRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for token repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.tokenRepository = authRepository.NewMySQLTokenRepository(db)
		case database.DriverPostgres:
			c.tokenRepository = authRepository.NewPostgreSQLTokenRepository(db)
		default:
			return c.unsupportedDriver()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.tokenRepository, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (authUseCase.UserUseCase, error) {
	err := c.once(&c.userUseCaseInit, "userUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for user use case: %w", err)
		}
		userRepository, err := c.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository for user use case: %w", err)
		}
		roleRepository, err := c.RoleRepository()
		if err != nil {
			return fmt.Errorf("failed to get role repository for user use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}

		useCase := authUseCase.NewUserUseCase(txManager, userRepository, roleRepository, c.PasswordService())
		c.userUseCase = authUseCase.NewUserUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.userUseCase, nil
}

// TokenUseCase returns the token use case.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	err := c.once(&c.tokenUseCaseInit, "tokenUseCase", func() error {
		userRepository, err := c.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository for token use case: %w", err)
		}
		tokenRepository, err := c.TokenRepository()
		if err != nil {
			return fmt.Errorf("failed to get token repository for token use case: %w", err)
		}
		roleRepository, err := c.RoleRepository()
		if err != nil {
			return fmt.Errorf("failed to get role repository for token use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}

		useCase := authUseCase.NewTokenUseCase(
			c.config.AuthTokenExpiration,
			userRepository,
			tokenRepository,
			roleRepository,
			c.PasswordService(),
			c.TokenService(),
		)
		c.tokenUseCase = authUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.tokenUseCase, nil
}

// TokenHandler creates the handler of the token endpoint.
func (c *Container) TokenHandler(tokenUseCase authUseCase.TokenUseCase) *authHTTP.TokenHandler {
	return authHTTP.NewTokenHandler(tokenUseCase, c.Logger().With(slog.String("component", "token")))
}
