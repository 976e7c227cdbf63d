// Package lexorder exposes the single public operation of the library:
// Infer, a pure function from a sorted word list to a total symbol order.
package lexorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/veltran/lexorder/alphabet"
	"github.com/veltran/lexorder/precedence"
	"github.com/veltran/lexorder/resolve"
)

// ErrImpossible indicates that no symbol order is consistent with the given
// word list — either a word precedes one of its own prefixes, or the derived
// constraints form a cycle. The wrapped error distinguishes the two:
// errors.Is reports precedence.ErrPrefixContradiction or
// resolve.ErrCycleDetected respectively.
var ErrImpossible = errors.New("lexorder: no consistent symbol order exists")

// Option configures optional behavior of Infer.
type Option func(*options)

// options holds configurable parameters for one inference.
type options struct {
	alpha *alphabet.Alphabet // symbol universe; defaults to Latin
	ctx   context.Context    // cancellation; defaults to Background
}

// defaultOptions returns the default inference settings:
// the lowercase Latin universe and a Background context.
func defaultOptions() options {
	return options{
		alpha: alphabet.Latin(),
		ctx:   context.Background(),
	}
}

// WithAlphabet returns an Option that sets the symbol universe.
// Passing a nil alphabet has no effect (Latin is retained).
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(o *options) {
		if a != nil {
			o.alpha = a
		}
	}
}

// WithCancelContext returns an Option that sets the cancellation context for
// the resolution phase. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Infer derives a total ordering of the symbol universe from words, which
// must already be sorted under the ordering being inferred.
//
// The result contains every universe symbol exactly once, consistent with
// all constraints derivable from consecutive word pairs. Symbols the words
// never constrain are placed after all constrained symbols, in the
// universe's natural enumeration order. A list of zero or one word yields
// the universe in its natural order.
//
// If the words admit no consistent ordering, Infer returns ErrImpossible.
// Infer is deterministic and safe for concurrent use.
func Infer(words []string, opts ...Option) (string, error) {
	order, err := InferRunes(words, opts...)
	if err != nil {
		return "", err
	}

	return string(order), nil
}

// InferRunes is Infer for generalized alphabets: it returns the order as a
// rune sequence instead of a string. Infer(words) == string of
// InferRunes(words) for every input.
func InferRunes(words []string, opts ...Option) ([]rune, error) {
	// 1. Apply options
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 2. Extract constraints; a prefix violation is terminal
	g, err := precedence.FromWords(o.alpha, words)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImpossible, err)
	}
	// 3. Resolve the total order; a cycle is terminal
	order, err := resolve.Order(g, resolve.WithCancelContext(o.ctx))
	if err != nil {
		if errors.Is(err, resolve.ErrCycleDetected) {
			return nil, fmt.Errorf("%w: %w", ErrImpossible, err)
		}
		// cancellation and other non-ordering failures pass through
		return nil, err
	}

	return order, nil
}
