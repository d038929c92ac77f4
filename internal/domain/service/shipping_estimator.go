package service

import (
	"time"

	"github.com/paulmach/orb"
)

// ShippingEstimator provides the shipping figures the storefront API stub
// attaches to a recorded order.
type ShippingEstimator interface {
	// Distance returns the great-circle distance between two points in
	// kilometers.
	Distance(from, to orb.Point) float64

	// EstimateCost returns the shipping cost for a distance and parcel weight.
	EstimateCost(distanceKm, weightKg float64) float64

	// EstimateDelivery returns the expected delivery time for a distance.
	EstimateDelivery(distanceKm float64) time.Time

	// NewTrackingNumber generates a shipment tracking number.
	NewTrackingNumber() string
}
