package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productRepository struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewProductRepository creates an in-memory ProductRepository
func NewProductRepository() repository.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) List(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Product, len(r.products))
	copy(out, r.products)

	return out, nil
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	if product == nil || product.Name == "" {
		return errors.New("product name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	r.products = append(r.products, *product)

	return nil
}
