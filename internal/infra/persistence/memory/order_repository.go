package memory

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderRepository struct {
	mu     sync.RWMutex
	orders []entity.Order
}

// NewOrderRepository creates an in-memory OrderRepository
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(_ context.Context, order *entity.Order) error {
	if order == nil || order.UserEmail == "" {
		return errors.New("order user email is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	r.orders = append(r.orders, *order)

	return nil
}

func (r *orderRepository) FindByUserEmail(_ context.Context, email string) ([]entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Order
	for _, order := range r.orders {
		if strings.EqualFold(order.UserEmail, email) {
			out = append(out, order)
		}
	}

	return out, nil
}
