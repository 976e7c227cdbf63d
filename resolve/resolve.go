// Package resolve computes a total symbol order from a constraint graph via
// depth-first topological sort with three-color cycle detection.
//
// Order emits constrained symbols in a valid topological order, then appends
// every untouched universe symbol in natural enumeration order. A cycle
// aborts the whole resolution with ErrCycleDetected; no partial order is
// ever returned.
package resolve

import (
	"github.com/veltran/lexorder/precedence"
)

// sorter encapsulates the traversal state of one resolution.
// All of it is local to a single Order call and discarded afterwards.
type sorter struct {
	graph *precedence.Graph // the finished constraint graph
	opts  options           // traversal options (cancellation)
	state map[rune]int      // visitation state: White, Gray, Black
	order []rune            // recorded post-order sequence
}

// Order computes a total ordering of the graph's symbol universe that is
// consistent with every recorded constraint.
// If g is nil, returns ErrGraphNil.
// If the constraints contain a directed cycle, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
//
// The result contains every universe symbol exactly once: constrained
// symbols first, in reverse post-order of the traversal, then all symbols
// with no incident constraint in the universe's natural enumeration order.
// Complexity: O(V + E).
func Order(g *precedence.Graph, opts ...Option) ([]rune, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3. Initialize per-call traversal state
	universe := g.Alphabet().Symbols()
	s := &sorter{
		graph: g,
		opts:  o,
		state: make(map[rune]int, len(universe)), // all symbols start as White (0)
		order: make([]rune, 0, len(universe)),
	}
	// 4. Drive DFS from every symbol that has outgoing constraints,
	//    in first-insertion order
	for _, src := range g.Sources() {
		if s.state[src] == White {
			if err := s.visit(src); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse the post-order accumulator: topological order of every
	//    symbol that participated in at least one constraint
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}
	// 6. Append unconstrained universe symbols in natural enumeration order
	for _, sym := range universe {
		if s.state[sym] == White {
			s.order = append(s.order, sym)
		}
	}

	return s.order, nil
}

// visit performs a DFS from sym, marking states and detecting cycles.
// It respects cancellation and appends sym to the post-order accumulator
// once every successor has been fully explored.
func (s *sorter) visit(sym rune) error {
	// 1. Cancellation check at entry
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: a Gray symbol is already on the recursion path
	if s.state[sym] == Gray {
		return ErrCycleDetected
	}
	// 3. Already fully processed (Black)? then skip
	if s.state[sym] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	s.state[sym] = Gray
	// 5. Recurse into every successor in edge-insertion order;
	//    any failure aborts the whole resolution
	for _, next := range s.graph.Outgoing(sym) {
		if err := s.visit(next); err != nil {
			return err
		}
	}
	// 6. Mark as fully explored (Black) and record in post-order
	s.state[sym] = Black
	s.order = append(s.order, sym)

	return nil
}
