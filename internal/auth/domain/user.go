// Package domain defines authentication models: users, their tokens and the
// principal a request acts as.
//
// A user belongs to exactly one role. The principal carries the role's capabilities
// resolved at authentication time.
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is an account able to authenticate against the API and the admin UI.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

// Token is an issued bearer token. Only the SHA-256 hash of the plain token is stored.
type Token struct {
	ID        uuid.UUID
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsValid reports whether the token is neither expired nor revoked at now.
func (t *Token) IsValid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// Principal is the authenticated user together with the capabilities of its role.
type Principal struct {
	User         *User
	Capabilities []string
}

// Can reports whether the principal holds capability.
func (p *Principal) Can(capability string) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Capabilities, capability)
}

// Owns reports whether the principal is the given author.
func (p *Principal) Owns(authorID uuid.UUID) bool {
	return p != nil && p.User != nil && p.User.ID == authorID
}

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
	IsActive bool
}

// IssueTokenInput holds the credentials exchanged for a token.
type IssueTokenInput struct {
	Username string
	Password string
}

// IssueTokenOutput holds a freshly issued plain token. The plain value is never stored.
type IssueTokenOutput struct {
	PlainToken string
	ExpiresAt  time.Time
}
