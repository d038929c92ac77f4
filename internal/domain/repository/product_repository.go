// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository defines catalog persistence for the storefront API stub.
type ProductRepository interface {
	// List retrieves all catalog entries in insertion order.
	List(ctx context.Context) ([]entity.Product, error)

	// Create persists a new catalog entry.
	Create(ctx context.Context, product *entity.Product) error
}
