package service

import "storefront/internal/domain/entity"

// TokenIssuer mints the bearer credential handed out by the login endpoint.
// Only the storefront API stub signs tokens; the client core never does.
type TokenIssuer interface {
	Issue(email string, role entity.Role) (string, error)
}
