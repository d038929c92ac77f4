// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Session is the identity derived from the client-held bearer credential.
// It is never persisted directly; it is recomputed from the raw credential
// string on demand. A nil *Session means the caller is anonymous.
//
// The claims are decoded without signature or expiry verification, so a
// Session is a display/navigation convenience only. The remote API remains
// the sole authority for authorizing protected operations.
type Session struct {
	Email string // The subject email extracted from the credential claims.
	Role  Role   // The derived role; RoleUser when the claim is missing or unknown.
}

// IsAdmin reports whether the session carries the administrator role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
