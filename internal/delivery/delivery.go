// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving front end of the application. Serve blocks until the
// listener stops; shutdown is driven through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
