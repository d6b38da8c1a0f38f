// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can hold in the system.
type Role string

const (
	// RoleUser indicates a regular account role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrative role allowed to manage other accounts.
	RoleAdmin Role = "admin"
	// RoleSuperuser indicates an unrestricted role, typically granted to the
	// anonymous principal in open installations.
	RoleSuperuser Role = "superuser"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperuser:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
