// Package delivery defines the inbound transport contract.
package delivery

import "context"

// Delivery is one serving surface of the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
