// Package delivery defines the contract every inbound adapter (HTTP, scheduler) satisfies.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
