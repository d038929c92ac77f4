// Package delivery defines the contract every transport-facing server
// implements.
package delivery

import "context"

// Delivery is a serving surface started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
