package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase defines the cart composition operations.
//
// Every mutating operation follows read-modify-persist against the injected
// CartStore: the persisted footprint is the sole source of truth, so a view
// reload always restores exactly what was last persisted.
type CartUsecase interface {
	// Load restores the persisted cart. No prior state yields an empty cart.
	Load(ctx context.Context) (entity.Cart, error)

	// Add appends a snapshot of the product as a new line entry and persists.
	// Returns ErrOutOfStock without touching the cart when the product has
	// no stock. The same product may be added repeatedly.
	Add(ctx context.Context, product entity.Product) (entity.Cart, error)

	// Remove deletes the line entry at the 0-based index and persists. An
	// out-of-range index is a logged no-op returning the cart unchanged.
	Remove(ctx context.Context, index int) (entity.Cart, error)

	// Total returns the undiscounted sum of the persisted cart.
	Total(ctx context.Context) (float64, error)

	// DiscountedTotal returns the coupon-adjusted total preview. An
	// out-of-range percent leaves the total unchanged.
	DiscountedTotal(ctx context.Context, couponPercent int) (float64, error)

	// Clear removes the persisted cart.
	Clear(ctx context.Context) error
}
