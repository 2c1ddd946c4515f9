package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

func TestToken_IsValid(t *testing.T) {
	now := time.Now().UTC()
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name     string
		token    Token
		expected bool
	}{
		{name: "active", token: Token{ExpiresAt: now.Add(time.Hour)}, expected: true},
		{name: "expired", token: Token{ExpiresAt: now.Add(-time.Second)}, expected: false},
		{name: "revoked", token: Token{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.IsValid(now))
		})
	}
}

func TestPrincipal(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	p := &Principal{
		User:         &User{ID: userID},
		Capabilities: []string{"read", "edit_json"},
	}

	assert.True(t, p.Can("edit_json"))
	assert.False(t, p.Can("publish_json"))
	assert.True(t, p.Owns(userID))
	assert.False(t, p.Owns(uuid.Must(uuid.NewV7())))

	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.Can("read"))
	assert.False(t, nilPrincipal.Owns(userID))
}

func TestErrors(t *testing.T) {
	assert.True(t, apperrors.Is(ErrInvalidCredentials, apperrors.ErrUnauthorized))
	assert.True(t, apperrors.Is(ErrUserInactive, apperrors.ErrForbidden))
	assert.True(t, apperrors.Is(ErrUserAlreadyExists, apperrors.ErrConflict))
	assert.True(t, apperrors.Is(ErrUserNotFound, apperrors.ErrNotFound))
}
