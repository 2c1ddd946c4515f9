package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

const tokenBytes = 32

type tokenService struct{}

// GenerateToken returns 32 random bytes base64url-encoded, plus their SHA-256 hex hash.
func (t *tokenService) GenerateToken() (string, string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plain := base64.URLEncoding.EncodeToString(buf)
	return plain, t.HashToken(plain), nil
}

func (t *tokenService) HashToken(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}

// NewTokenService creates a TokenService.
func NewTokenService() TokenService {
	return &tokenService{}
}
