// Package precedence declares the Graph accumulator in this file: storage
// for directed ordering constraints and the symbol universe they range over.
package precedence

import (
	"github.com/veltran/lexorder/alphabet"
)

// Graph accumulates directed ordering constraints between symbols.
//
// Outgoing edges preserve insertion order and Sources preserves the order in
// which symbols first gained an outgoing edge; both orders are load-bearing:
// they make resolution fully deterministic. The universe is seeded with the
// entire configured alphabet at construction, so every alphabet symbol is
// accounted for even if it never appears in any constraint.
//
// A Graph is not safe for concurrent mutation; build it, then hand it to the
// resolver. Nothing mutates a Graph after extraction finishes.
type Graph struct {
	alpha    *alphabet.Alphabet // configured universe, natural tie-break order
	out      map[rune][]rune    // outgoing edges per symbol, insertion order
	sources  []rune             // symbols with outgoing edges, first-insertion order
	universe map[rune]struct{}  // every symbol ever referenced, incl. full alphabet
}

// NewGraph creates an empty constraint graph over the given universe.
// A nil alphabet defaults to the lowercase Latin reference universe.
// Complexity: O(|alphabet|).
func NewGraph(a *alphabet.Alphabet) *Graph {
	// 1. Fall back to the reference universe
	if a == nil {
		a = alphabet.Latin()
	}
	// 2. Seed the universe set with the whole alphabet up front
	g := &Graph{
		alpha:    a,
		out:      make(map[rune][]rune, a.Len()),
		sources:  make([]rune, 0, a.Len()),
		universe: make(map[rune]struct{}, a.Len()),
	}
	for _, s := range a.Symbols() {
		g.universe[s] = struct{}{}
	}

	return g
}

// AddConstraint records the directed constraint before → after, meaning
// `before` must precede `after` in any resulting order. Both endpoints are
// registered in the universe (a no-op for in-alphabet symbols). Duplicate
// constraints are appended verbatim; no deduplication and no cycle check
// happen here — cycles are a whole-graph property detected during
// resolution.
// Complexity: O(1) amortized.
func (g *Graph) AddConstraint(before, after rune) {
	// 1. First outgoing edge for `before` makes it a source
	if _, seen := g.out[before]; !seen {
		g.sources = append(g.sources, before)
	}
	// 2. Append the edge, preserving insertion order
	g.out[before] = append(g.out[before], after)
	// 3. Register both endpoints
	g.universe[before] = struct{}{}
	g.universe[after] = struct{}{}
}

// Outgoing returns a copy of the outgoing-edge list of s in edge-insertion
// order, or nil if s has no outgoing constraints.
func (g *Graph) Outgoing(s rune) []rune {
	edges, ok := g.out[s]
	if !ok {
		return nil
	}
	out := make([]rune, len(edges))
	copy(out, edges)

	return out
}

// Sources returns a copy of all symbols that have at least one outgoing
// constraint, in the order they first gained one.
func (g *Graph) Sources() []rune {
	out := make([]rune, len(g.sources))
	copy(out, g.sources)

	return out
}

// Alphabet returns the universe the graph was constructed over.
func (g *Graph) Alphabet() *alphabet.Alphabet {
	return g.alpha
}

// InUniverse reports whether s is part of the graph's symbol universe,
// either via the configured alphabet or via registration by AddConstraint.
func (g *Graph) InUniverse(s rune) bool {
	_, ok := g.universe[s]

	return ok
}

// ConstraintCount reports the total number of recorded constraints,
// duplicates included.
func (g *Graph) ConstraintCount() int {
	var n int
	for _, edges := range g.out {
		n += len(edges)
	}

	return n
}
