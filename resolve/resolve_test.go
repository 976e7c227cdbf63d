package resolve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltran/lexorder/alphabet"
	"github.com/veltran/lexorder/precedence"
	"github.com/veltran/lexorder/resolve"
)

// position returns the index of sym in order, or -1 if not found.
func position(order []rune, sym rune) int {
	for i, s := range order {
		if s == sym {
			return i
		}
	}

	return -1
}

// TestOrder_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestOrder_NilGraph(t *testing.T) {
	order, err := resolve.Order(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, resolve.ErrGraphNil)
}

// TestOrder_EmptyGraph covers a graph with no constraints: the result is the
// universe in natural enumeration order.
func TestOrder_EmptyGraph(t *testing.T) {
	g := precedence.NewGraph(nil)
	order, err := resolve.Order(g)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", string(order))
}

// TestOrder_SimpleChain verifies a linear chain c→b→a sorts before the
// unconstrained remainder.
func TestOrder_SimpleChain(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('c', 'b')
	g.AddConstraint('b', 'a')

	order, err := resolve.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []rune{'c', 'b', 'a'}, order[:3])
	assert.Equal(t, "defghijklmnopqrstuvwxyz", string(order[3:]))
}

// TestOrder_EverySymbolExactlyOnce checks the cardinality invariant on a
// branching constraint set.
func TestOrder_EverySymbolExactlyOnce(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('m', 'a')
	g.AddConstraint('m', 'z')
	g.AddConstraint('a', 'k')
	g.AddConstraint('z', 'k')

	order, err := resolve.Order(g)
	require.NoError(t, err)
	assert.Len(t, order, 26)
	seen := make(map[rune]int, len(order))
	for _, s := range order {
		seen[s]++
	}
	for _, s := range g.Alphabet().Symbols() {
		assert.Equal(t, 1, seen[s], "symbol %q", string(s))
	}
	// constraints must hold
	assert.Less(t, position(order, 'm'), position(order, 'a'))
	assert.Less(t, position(order, 'm'), position(order, 'z'))
	assert.Less(t, position(order, 'a'), position(order, 'k'))
	assert.Less(t, position(order, 'z'), position(order, 'k'))
}

// TestOrder_DirectCycle ensures a→b plus b→a yields ErrCycleDetected.
func TestOrder_DirectCycle(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('a', 'b')
	g.AddConstraint('b', 'a')

	order, err := resolve.Order(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, resolve.ErrCycleDetected)
}

// TestOrder_TransitiveCycle ensures a longer cycle a→b→c→a is caught too.
func TestOrder_TransitiveCycle(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('a', 'b')
	g.AddConstraint('b', 'c')
	g.AddConstraint('c', 'a')

	order, err := resolve.Order(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, resolve.ErrCycleDetected)
}

// TestOrder_SelfLoop verifies that an explicit self-constraint is reported
// as a cycle. The extractor can never produce one, but the graph API does
// not forbid it.
func TestOrder_SelfLoop(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('a', 'a')

	_, err := resolve.Order(g)
	assert.ErrorIs(t, err, resolve.ErrCycleDetected)
}

// TestOrder_DuplicateEdgesHarmless checks that repeated constraints do not
// disturb the result.
func TestOrder_DuplicateEdgesHarmless(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('b', 'a')
	g.AddConstraint('b', 'a')
	g.AddConstraint('b', 'a')

	order, err := resolve.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []rune{'b', 'a'}, order[:2])
	assert.Len(t, order, 26)
}

// TestOrder_Deterministic verifies that repeated resolutions of the same
// graph produce identical output.
func TestOrder_Deterministic(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('x', 'z')
	g.AddConstraint('a', 'b')
	g.AddConstraint('x', 'a')

	first, err := resolve.Order(g)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := resolve.Order(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestOrder_UnconstrainedSuffixNaturalOrder checks the tie-break policy:
// unconstrained symbols follow all constrained ones, in natural order.
func TestOrder_UnconstrainedSuffixNaturalOrder(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('x', 'z')
	g.AddConstraint('a', 'b')
	g.AddConstraint('x', 'a')

	order, err := resolve.Order(g)
	require.NoError(t, err)
	assert.Equal(t, "xabzcdefghijklmnopqrstuvwy", string(order))
}

// TestOrder_CustomAlphabet verifies resolution over a non-Latin universe.
func TestOrder_CustomAlphabet(t *testing.T) {
	a, err := alphabet.New([]rune{'0', '1', '2', '3'})
	require.NoError(t, err)

	g := precedence.NewGraph(a)
	g.AddConstraint('3', '0')

	order, err := resolve.Order(g)
	require.NoError(t, err)
	assert.Equal(t, "3012", string(order))
}

// TestOrder_ForeignSymbolsSortByConstraints verifies that symbols registered
// only through constraints (outside the configured alphabet) still appear,
// positioned by their constraints.
func TestOrder_ForeignSymbolsSortByConstraints(t *testing.T) {
	a, err := alphabet.New([]rune{'a', 'b'})
	require.NoError(t, err)

	g := precedence.NewGraph(a)
	g.AddConstraint('9', 'a')

	order, err := resolve.Order(g)
	require.NoError(t, err)
	assert.Equal(t, "9ab", string(order))
}

// TestOrder_CancelContext ensures an already-cancelled context aborts
// resolution with context.Canceled.
func TestOrder_CancelContext(t *testing.T) {
	g := precedence.NewGraph(nil)
	g.AddConstraint('a', 'b')

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order, err := resolve.Order(g, resolve.WithCancelContext(ctx))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestOrder_StateNotRetained runs a failing resolution and then a passing
// one on a fresh graph, ensuring no traversal state leaks between calls.
func TestOrder_StateNotRetained(t *testing.T) {
	bad := precedence.NewGraph(nil)
	bad.AddConstraint('a', 'b')
	bad.AddConstraint('b', 'a')
	_, err := resolve.Order(bad)
	require.ErrorIs(t, err, resolve.ErrCycleDetected)

	good := precedence.NewGraph(nil)
	good.AddConstraint('a', 'b')
	order, err := resolve.Order(good)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", string(order))
}
