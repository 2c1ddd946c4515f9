// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

// identifierRegex matches role names, usernames and content type names.
var identifierRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-]*$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength bounds password length in bytes. A zero MaxLength means no upper bound.
// Passwords made only of whitespace are rejected regardless of length.
type PasswordStrength struct {
	MinLength int
	MaxLength int
}

// Validate checks value against the configured bounds.
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_type", "password must be a string")
	}

	switch {
	case len(s) < p.MinLength:
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	case p.MaxLength > 0 && len(s) > p.MaxLength:
		return validation.NewError(
			"validation_password_max_length",
			fmt.Sprintf("password must be at most %d characters", p.MaxLength),
		)
	case strings.TrimSpace(s) == "":
		return validation.NewError("validation_password_blank", "password must not be blank")
	}
	return nil
}

// Identifier validates lowercase machine names such as "administrator" or "json".
var Identifier = validation.NewStringRuleWithError(
	func(s string) bool {
		return identifierRegex.MatchString(s)
	},
	validation.NewError(
		"validation_identifier",
		"must start with a lowercase letter or digit and contain only lowercase letters, digits, '-' or '_'",
	),
)

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
