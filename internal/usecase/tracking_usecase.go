package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// DisplayRow is one order rendered for the tracking table.
type DisplayRow struct {
	// ShortID is the tail of the order identifier shown to the user.
	ShortID string `json:"short_id"`

	// Status is the remote-owned lifecycle tag, verbatim.
	Status string `json:"status"`

	// Tone is the display treatment of the status badge.
	Tone string `json:"tone"`

	// Products is the joined product names of the order.
	Products string `json:"products"`

	// Total is the formatted order total.
	Total string `json:"total"`

	// Location is the last reported location, or a placeholder when the
	// remote has not reported one.
	Location string `json:"location"`
}

// TrackingUsecase defines the order tracking view-model operations.
type TrackingUsecase interface {
	// Fetch retrieves the orders of the current session's account.
	// Returns ErrNoSession when anonymous.
	Fetch(ctx context.Context) ([]entity.Order, error)

	// Present maps orders to display rows. Pure; empty in, empty out.
	Present(orders []entity.Order) []DisplayRow

	// TrackingQR renders a QR code image for sharing an order's tracking
	// reference.
	TrackingQR(orderID string) ([]byte, error)
}
