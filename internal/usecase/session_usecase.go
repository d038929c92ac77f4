// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase defines the interface for session-related business operations.
//
// The session is whatever the persisted credential decodes to right now.
// There is no cached login state to invalidate; dropping the credential is
// the whole logout.
type SessionUsecase interface {
	// SignUp registers a new account with the remote API. It does not log
	// the account in.
	SignUp(ctx context.Context, input *SignUpInput) error

	// Login exchanges credentials for a bearer credential, persists it, and
	// returns the session decoded from it.
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// Logout drops the persisted credential. Logging out while anonymous is
	// a no-op.
	Logout(ctx context.Context) error

	// Current returns the session decoded from the persisted credential, or
	// nil when anonymous.
	Current(ctx context.Context) *entity.Session
}

// --- Input DTOs ---

// SignUpInput defines the data required to register an account.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
