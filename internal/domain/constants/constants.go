// Package constants defines domain-wide constant values.
package constants

// Pub/Sub provider names accepted by the pubsub configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Client-storage keys. The persisted footprint under these keys is the sole
// source of truth for the session credential and the cart across view
// reloads.
const (
	StorageKeyToken = "token"
	StorageKeyCart  = "cart"
)

// Navigation paths the route guard redirects to.
const (
	PathLogin    = "/"
	PathProducts = "/products"
	PathTrack    = "/track"
)
