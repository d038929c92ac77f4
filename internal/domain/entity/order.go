package entity

import "time"

// OrderStatus is the remote-owned lifecycle tag of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Tone maps a status to the display treatment the tracking view applies to
// its badge.
func (s OrderStatus) Tone() string {
	switch s {
	case OrderStatusShipped:
		return "info"
	case OrderStatusDelivered:
		return "success"
	case OrderStatusCancelled:
		return "danger"
	default:
		return "pending"
	}
}

// Order is a remote order record. The core never mutates an Order; it only
// renders it. The JSON shape mirrors the wire format of the tracking
// endpoint.
type Order struct {
	ID                string      `json:"_id"`
	UserEmail         string      `json:"user_email"`
	Products          []string    `json:"products"`
	Total             float64     `json:"total"`
	Status            OrderStatus `json:"status"`
	Location          string      `json:"location,omitempty"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
}
