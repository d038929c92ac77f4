// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository defines order persistence for the storefront API stub.
type OrderRepository interface {
	// Create persists a new order record.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUserEmail retrieves all orders placed by the given email, in
	// insertion order.
	FindByUserEmail(ctx context.Context, email string) ([]entity.Order, error)
}
