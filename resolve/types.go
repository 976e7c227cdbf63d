// Package resolve defines the visitation states, sentinel errors, and
// functional options used by the order resolver.
package resolve

import (
	"context"
	"errors"
)

// Visitation state of a symbol during one resolution.
const (
	White = iota // White: the symbol has not been visited yet.
	Gray         // Gray: the symbol is on the current recursion path.
	Black        // Black: the symbol and all its successors are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *precedence.Graph is passed to Order.
	ErrGraphNil = errors.New("resolve: graph is nil")

	// ErrCycleDetected indicates that the constraint graph contains a
	// directed cycle, so no consistent total order exists.
	ErrCycleDetected = errors.New("resolve: cycle detected")
)

// Option configures optional behavior of Order.
type Option func(*options)

// options holds settings for Order, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
