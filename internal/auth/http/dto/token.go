// Package dto provides request and response bodies for the authentication endpoints.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	customValidation "github.com/allisson/jsondocs/internal/validation"
)

// IssueTokenRequest is the body of POST /v1/token.
type IssueTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // request credential
}

// Validate checks the request fields.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password, validation.Required),
	)
}

// ToInput maps the request to the use case input.
func (r *IssueTokenRequest) ToInput() *authDomain.IssueTokenInput {
	return &authDomain.IssueTokenInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// IssueTokenResponse carries a freshly issued token. The token is returned only once.
type IssueTokenResponse struct {
	Token     string    `json:"token"` //nolint:gosec // returned once on issue
	ExpiresAt time.Time `json:"expires_at"`
}
