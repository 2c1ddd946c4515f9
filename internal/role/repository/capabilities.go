// Package repository implements role persistence for PostgreSQL and MySQL.
//
// Capabilities are stored as a JSON array in a text column so both drivers share one encoding.
package repository

import (
	"encoding/json"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

func encodeCapabilities(caps []string) (string, error) {
	if caps == nil {
		caps = []string{}
	}
	b, err := json.Marshal(caps)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode capabilities")
	}
	return string(b), nil
}

func decodeCapabilities(raw string) ([]string, error) {
	caps := []string{}
	if raw == "" {
		return caps, nil
	}
	if err := json.Unmarshal([]byte(raw), &caps); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode capabilities")
	}
	return caps, nil
}
