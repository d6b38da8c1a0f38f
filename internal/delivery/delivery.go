// Package delivery defines the contract shared by every transport that
// exposes the service.
package delivery

import "context"

// Delivery is a running transport (HTTP today). Serve blocks until the
// transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
