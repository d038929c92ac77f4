// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a shopper can have in the storefront.
type Role string

const (
	// RoleUser indicates a regular shopper role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw claim value to a Role, falling back to
// RoleUser for unknown or empty values.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
