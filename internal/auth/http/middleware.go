package http

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/jsondocs/internal/auth/service"
	authUseCase "github.com/allisson/jsondocs/internal/auth/usecase"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	"github.com/allisson/jsondocs/internal/httputil"
)

const bearerPrefix = "bearer "

// AuthenticationMiddleware authenticates requests carrying "Authorization: Bearer <token>".
//
// Missing or malformed headers and invalid tokens respond 401, inactive users 403.
// On success the principal is available through GetPrincipal.
func AuthenticationMiddleware(
	tokenUseCase authUseCase.TokenUseCase,
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticateBearer(c, tokenUseCase, tokenService, logger) {
			c.Next()
		}
	}
}

// OptionalAuthenticationMiddleware lets requests without an Authorization header through
// anonymously, with no principal in the context. A header that is present is checked
// exactly like AuthenticationMiddleware does, so a bad token still responds 401.
func OptionalAuthenticationMiddleware(
	tokenUseCase authUseCase.TokenUseCase,
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		if authenticateBearer(c, tokenUseCase, tokenService, logger) {
			c.Next()
		}
	}
}

// authenticateBearer stores the principal of the bearer token in the request context.
// On failure it writes the error response, aborts and returns false.
func authenticateBearer(
	c *gin.Context,
	tokenUseCase authUseCase.TokenUseCase,
	tokenService authService.TokenService,
	logger *slog.Logger,
) bool {
	header := c.GetHeader("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		logger.Debug("authentication failed: missing or malformed authorization header")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
		c.Abort()
		return false
	}

	principal, err := tokenUseCase.Authenticate(
		c.Request.Context(),
		tokenService.HashToken(header[len(bearerPrefix):]),
	)
	if err != nil {
		logger.Debug("authentication failed", slog.String("error", err.Error()))
		httputil.HandleErrorGin(c, err, logger)
		c.Abort()
		return false
	}

	c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
	return true
}

// BasicAuthMiddleware authenticates browser requests with HTTP basic credentials.
// Failures respond 401 with a WWW-Authenticate challenge for realm.
func BasicAuthMiddleware(tokenUseCase authUseCase.TokenUseCase, realm string, logger *slog.Logger) gin.HandlerFunc {
	challenge := fmt.Sprintf("Basic realm=%q, charset=\"UTF-8\"", realm)

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", challenge)
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		principal, err := tokenUseCase.AuthenticatePassword(c.Request.Context(), username, password)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrUnauthorized) {
				c.Header("WWW-Authenticate", challenge)
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireCapability rejects principals lacking capability with 403.
// It must run after an authentication middleware.
func RequireCapability(capability string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !principal.Can(capability) {
			logger.Debug("authorization failed: missing capability",
				slog.String("user_id", principal.User.ID.String()),
				slog.String("capability", capability))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
