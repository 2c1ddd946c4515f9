// Package service provides the credential primitives used by authentication:
// password hashing and bearer token generation.
package service

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	HashPassword(plain string) (string, error)

	// ComparePassword reports whether plain matches hashed. Malformed hashes never match.
	ComparePassword(plain, hashed string) bool
}

// TokenService generates bearer tokens and hashes them for storage and lookup.
type TokenService interface {
	// GenerateToken returns a new plain token and its hash. Only the hash is persisted.
	GenerateToken() (plainToken string, tokenHash string, err error)

	HashToken(plainToken string) string
}
