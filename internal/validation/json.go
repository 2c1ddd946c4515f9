package validation

import (
	"encoding/json"

	validation "github.com/jellydator/validation"
)

// JSONDocument validates that a string (or *string) holds valid JSON text.
// Empty strings pass; combine with Required when a body is mandatory.
var JSONDocument = validation.By(func(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return validation.NewError("validation_json_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if !json.Valid([]byte(s)) {
		return validation.NewError("validation_json", "must be valid JSON text")
	}
	return nil
})
