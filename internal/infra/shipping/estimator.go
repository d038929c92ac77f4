package shipping

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type estimator struct {
	baseCost    float64
	costPerKm   float64
	costPerKg   float64
	avgSpeedKmh float64
}

// NewEstimator creates a ShippingEstimator from shipping configuration.
// Zero-valued config fields fall back to conservative defaults so the
// estimate never divides by zero.
func NewEstimator(cfg *config.ShippingConfig) service.ShippingEstimator {
	e := &estimator{
		baseCost:    50,
		costPerKm:   0.5,
		costPerKg:   10,
		avgSpeedKmh: 60,
	}
	if cfg != nil {
		if cfg.BaseCost > 0 {
			e.baseCost = cfg.BaseCost
		}
		if cfg.CostPerKm > 0 {
			e.costPerKm = cfg.CostPerKm
		}
		if cfg.CostPerKg > 0 {
			e.costPerKg = cfg.CostPerKg
		}
		if cfg.AvgSpeedKmh > 0 {
			e.avgSpeedKmh = cfg.AvgSpeedKmh
		}
	}

	return e
}

// Distance returns the great-circle distance between two points in kilometers
func (e *estimator) Distance(from, to orb.Point) float64 {
	return geo.Distance(from, to) / 1000
}

// EstimateCost returns the shipping cost for a distance and parcel weight
func (e *estimator) EstimateCost(distanceKm, weightKg float64) float64 {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}
	if weightKg < 0 || math.IsNaN(weightKg) {
		weightKg = 0
	}

	cost := e.baseCost + distanceKm*e.costPerKm + weightKg*e.costPerKg

	// Round to two decimal places for display
	return math.Round(cost*100) / 100
}

// EstimateDelivery returns the expected delivery time for a distance.
// Transit time is derived from the average fleet speed, plus one day of
// warehouse processing.
func (e *estimator) EstimateDelivery(distanceKm float64) time.Time {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}

	transitHours := distanceKm / e.avgSpeedKmh
	processing := 24 * time.Hour

	return time.Now().UTC().Add(processing + time.Duration(transitHours*float64(time.Hour)))
}

// NewTrackingNumber generates a shipment tracking number
func (e *estimator) NewTrackingNumber() string {
	buf := make([]byte, 10)
	for i := range buf {
		buf[i] = trackingAlphabet[rand.IntN(len(trackingAlphabet))]
	}

	return fmt.Sprintf("TRK%s", buf)
}
