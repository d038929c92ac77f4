// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore is the client-persistent home of the cart aggregate. Every
// mutating cart operation reads the latest persisted sequence and writes the
// full sequence back, so the stored footprint is the sole source of truth
// across view reloads.
type CartStore interface {
	// Load restores the persisted sequence. Absent or malformed stored data
	// yields an empty cart, never an error the caller must branch on.
	Load(ctx context.Context) (entity.Cart, error)

	// Save persists the full sequence, replacing any prior state.
	Save(ctx context.Context, cart entity.Cart) error

	// Clear removes the persisted sequence. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
