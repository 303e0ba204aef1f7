// Package delivery defines the transport-facing entry points of the service.
package delivery

import "context"

// Delivery is a long-running transport server. Implementations block in Serve
// until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
