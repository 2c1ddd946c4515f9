package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

// passwordService hashes passwords with Argon2id in PHC string format.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

func (s *passwordService) HashPassword(plain string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(plain))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

func (s *passwordService) ComparePassword(plain, hashed string) bool {
	ok, err := s.hasher.Verify([]byte(plain), hashed)
	return err == nil && ok
}

// NewPasswordService creates a PasswordService using the moderate Argon2id policy.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	if err != nil {
		// only fails on an invalid policy
		panic(err)
	}
	return &passwordService{hasher: hasher}
}
