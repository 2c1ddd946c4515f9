// Package domain defines roles and the capability grants applied to them.
//
// A role is a named set of capabilities. Grants are additive: capabilities are only ever
// added, never removed, and re-applying a grant to a role that already holds every
// capability leaves it unchanged.
package domain

import (
	"slices"
	"time"
)

// ReadCapability is the base capability held by every seeded role.
const ReadCapability = "read"

// Role is a named set of capabilities assigned to users.
type Role struct {
	Name         string
	DisplayName  string
	Capabilities []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Has reports whether the role holds capability.
func (r *Role) Has(capability string) bool {
	return slices.Contains(r.Capabilities, capability)
}

// HasAll reports whether the role holds every capability in caps.
func (r *Role) HasAll(caps []string) bool {
	for _, c := range caps {
		if !r.Has(c) {
			return false
		}
	}
	return true
}

// AddCapabilities adds the capabilities the role is missing and returns them.
// Existing capabilities keep their position; duplicates in caps are ignored.
func (r *Role) AddCapabilities(caps []string) []string {
	var added []string
	for _, c := range caps {
		if c == "" || r.Has(c) {
			continue
		}
		r.Capabilities = append(r.Capabilities, c)
		added = append(added, c)
	}
	return added
}

// GrantResult reports what a grant run did to each requested role.
type GrantResult struct {
	// Updated lists roles that gained at least one capability.
	Updated []string
	// Unchanged lists roles that already held every capability.
	Unchanged []string
	// Skipped lists roles that do not exist.
	Skipped []string
}
