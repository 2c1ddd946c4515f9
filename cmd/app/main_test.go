package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range getCommands("test") {
		names[cmd.Name] = true
	}

	for _, name := range []string{
		"server",
		"migrate",
		"create-user",
		"clean-expired-tokens",
		"grant-capabilities",
		"list-content-types",
		"export-documents",
	} {
		assert.True(t, names[name], "missing command %s", name)
	}
	assert.Len(t, names, 7)
}
