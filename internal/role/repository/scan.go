package repository

import (
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanRole(row scanner) (*roleDomain.Role, error) {
	var (
		role roleDomain.Role
		caps string
	)
	if err := row.Scan(&role.Name, &role.DisplayName, &caps, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return nil, err
	}

	decoded, err := decodeCapabilities(caps)
	if err != nil {
		return nil, err
	}
	role.Capabilities = decoded
	return &role, nil
}
