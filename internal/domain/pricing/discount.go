// Package pricing holds the coupon discount rule shared by the client-side
// preview and the order-recording authority.
package pricing

// Coupon percentages the pricing authority accepts. Anything outside this
// range is ignored rather than clamped or extrapolated, matching the remote
// discount engine.
const (
	MinCouponPercent = 0
	MaxCouponPercent = 70
)

// ApplyDiscount returns the total after applying a coupon percentage.
// Out-of-range percentages leave the total unchanged.
func ApplyDiscount(total float64, percent int) float64 {
	if percent < MinCouponPercent || percent > MaxCouponPercent {
		return total
	}

	return total - total*float64(percent)/100.0
}
