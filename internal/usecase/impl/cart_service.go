package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
//
// Every mutation re-reads the persisted cart before changing it, so the
// store stays the single source of truth even when several views hold a
// reference to the same service.
type cartService struct {
	carts  repository.CartStore
	logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(carts repository.CartStore, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		carts:  carts,
		logger: logger,
	}
}

// Load restores the persisted cart.
func (srv *cartService) Load(ctx context.Context) (entity.Cart, error) {
	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// Add appends a snapshot of the product and persists the new sequence.
func (srv *cartService) Add(ctx context.Context, product entity.Product) (entity.Cart, error) {
	if !product.InStock() {
		return nil, errors.Wrapf(domainerrors.ErrOutOfStock, "product %q has no stock", product.Name)
	}

	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart = append(cart, entity.NewCartItem(product))
	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to persist cart")
	}

	srv.logger.Debug("Added product to cart", "product", product.Name, "items", len(cart))

	return cart, nil
}

// Remove deletes the line entry at the 0-based index and persists.
func (srv *cartService) Remove(ctx context.Context, index int) (entity.Cart, error) {
	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if index < 0 || index >= len(cart) {
		srv.logger.Warn("Ignoring out-of-range cart removal", "index", index, "items", len(cart))

		return cart, nil
	}

	cart = append(cart[:index], cart[index+1:]...)
	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to persist cart")
	}

	return cart, nil
}

// Total returns the undiscounted sum of the persisted cart.
func (srv *cartService) Total(ctx context.Context) (float64, error) {
	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load cart")
	}

	return cart.Total(), nil
}

// DiscountedTotal returns the coupon-adjusted total preview.
// This is display-side only; the remote API recomputes the price on
// submission.
func (srv *cartService) DiscountedTotal(ctx context.Context, couponPercent int) (float64, error) {
	total, err := srv.Total(ctx)
	if err != nil {
		return 0, err
	}

	return pricing.ApplyDiscount(total, couponPercent), nil
}

// Clear removes the persisted cart.
func (srv *cartService) Clear(ctx context.Context) error {
	if err := srv.carts.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
