package service

import (
	"context"
)

// OrderPlacedEvent announces a confirmed order submission for downstream
// consumers (fulfilment dashboards, analytics). Publishing is best-effort
// and never fails the order itself.
type OrderPlacedEvent struct {
	OrderID       string   `json:"order_id,omitempty"`
	UserEmail     string   `json:"user_email"`
	Products      []string `json:"products"`
	Total         float64  `json:"total"`
	CouponPercent int      `json:"coupon_percent,omitempty"`
	PlacedAt      string   `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
