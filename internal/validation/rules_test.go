package validation

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{MinLength: 8, MaxLength: 64}

	tests := []struct {
		name     string
		password interface{}
		errMsg   string
	}{
		{name: "valid password", password: "correct horse battery"},
		{name: "exact minimum", password: "12345678"},
		{name: "too short", password: "short", errMsg: "at least 8 characters"},
		{name: "too long", password: strings.Repeat("x", 65), errMsg: "at most 64 characters"},
		{name: "only whitespace", password: "          ", errMsg: "must not be blank"},
		{name: "not a string", password: 12345678, errMsg: "must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}

	assert.NoError(t, PasswordStrength{MinLength: 1}.Validate(strings.Repeat("x", 1024)), "no upper bound by default")
}

func TestIdentifier(t *testing.T) {
	valid := []string{"administrator", "json", "custom-role", "role_2", "9lives"}
	for _, v := range valid {
		assert.NoError(t, validation.Validate(v, Identifier), v)
	}

	invalid := []string{"Administrator", "-role", "has space", "role!", "_x"}
	for _, v := range invalid {
		assert.Error(t, validation.Validate(v, Identifier), v)
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("title", NotBlank))
	assert.NoError(t, validation.Validate(" padded ", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
}

func TestJSONDocument(t *testing.T) {
	valid := []interface{}{"", `{"a":1}`, `[1,2]`, `"str"`, `5`, `null`}
	for _, v := range valid {
		assert.NoError(t, validation.Validate(v, JSONDocument), v)
	}

	content := `{"a":1}`
	assert.NoError(t, validation.Validate(&content, JSONDocument))
	assert.NoError(t, validation.Validate((*string)(nil), JSONDocument))

	invalid := []interface{}{"not json", `{"a":}`, `{`}
	for _, v := range invalid {
		assert.Error(t, validation.Validate(v, JSONDocument), v)
	}

	assert.Error(t, validation.Validate(42, JSONDocument))
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(errors.New("title: cannot be blank"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "title: cannot be blank")
}
