package usecase

import (
	"context"
)

// CheckoutState is the submission state machine of the order workflow.
type CheckoutState string

const (
	// CheckoutIdle means no submission is in flight.
	CheckoutIdle CheckoutState = "idle"
	// CheckoutSubmitting means a submission is in flight; further
	// submissions are rejected until it resolves.
	CheckoutSubmitting CheckoutState = "submitting"
	// CheckoutSucceeded means the last submission was confirmed.
	CheckoutSucceeded CheckoutState = "succeeded"
	// CheckoutFailed means the last submission was rejected or never
	// reached the remote API.
	CheckoutFailed CheckoutState = "failed"
)

// PlaceOrderOutput is the result of a confirmed order submission.
type PlaceOrderOutput struct {
	// OrderTotal is the undiscounted cart total that was submitted.
	OrderTotal float64

	// FinalPrice is the remote-computed price after any coupon.
	FinalPrice float64

	// CartCleared reports whether the persisted cart was dropped after
	// confirmation. False means the confirmation stands but stale cart
	// state may survive locally.
	CartCleared bool

	// RedirectTo is the path the view layer should navigate to.
	RedirectTo string
}

// CheckoutUsecase defines the order submission workflow.
//
// A submission moves Idle → Submitting → Succeeded or Failed. Entry guards
// (empty cart, no session) fail before any network call and leave the state
// Idle. Failure preserves the cart exactly; a later PlaceOrder starts over
// from Idle. There is no automatic retry.
type CheckoutUsecase interface {
	// PlaceOrder submits the persisted cart as one order, with the coupon
	// percent travelling out-of-band. The submitted total is the
	// undiscounted cart total; the remote API is the pricing authority.
	PlaceOrder(ctx context.Context, couponPercent int) (*PlaceOrderOutput, error)

	// State returns the current submission state.
	State() CheckoutState
}
