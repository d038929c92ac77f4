// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
)

// ErrTokenNotFound is returned when no credential is persisted. Callers
// treat it as "anonymous", not as a failure.
var ErrTokenNotFound = errors.New("token not found")

// TokenStore persists the raw bearer credential between view loads.
type TokenStore interface {
	// Get returns the stored raw credential, or ErrTokenNotFound.
	Get(ctx context.Context) (string, error)

	// Set replaces the stored credential.
	Set(ctx context.Context, token string) error

	// Clear removes the stored credential. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
