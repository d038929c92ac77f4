// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials carries a signup/login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OrderRequest is the order-creation payload. Total is the undiscounted
// cart total; the remote API is the authority on applying the coupon, which
// travels as an out-of-band query parameter.
type OrderRequest struct {
	UserEmail string   `json:"user_email"`
	Products  []string `json:"products"`
	Total     float64  `json:"total"`
}

// OrderConfirmation is the remote acknowledgement of a recorded order.
type OrderConfirmation struct {
	FinalPrice float64 `json:"final_price"`
}

// StorefrontGateway is the thin HTTP-client contract to the remote
// storefront API. Implementations translate transport and remote rejections
// into the domain error taxonomy; they never panic across this boundary.
type StorefrontGateway interface {
	// Signup registers a new account.
	Signup(ctx context.Context, creds Credentials) error

	// Login exchanges credentials for a raw bearer credential.
	Login(ctx context.Context, creds Credentials) (string, error)

	// ListProducts fetches the catalog. Malformed entries are dropped, not
	// propagated.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// AddProduct publishes a new catalog entry (admin-only by convention,
	// enforced remotely).
	AddProduct(ctx context.Context, product entity.Product) error

	// CreateOrder issues a single order-creation request with the coupon
	// percent as query parameter.
	CreateOrder(ctx context.Context, order OrderRequest, couponPercent int) (*OrderConfirmation, error)

	// TrackOrders fetches all orders recorded for the given email.
	TrackOrders(ctx context.Context, email string) ([]entity.Order, error)
}
