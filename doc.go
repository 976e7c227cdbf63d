// Package lexorder infers the lexicographic ordering of a symbol alphabet
// from a word list that is assumed to already be sorted under that unknown
// ordering.
//
// 🚀 What is lexorder?
//
//	A small, pure-Go inference library that brings together:
//		• alphabet/   — explicit, finite symbol universes (Latin by default)
//		• precedence/ — pairwise constraint extraction into a directed graph
//		• resolve/    — cycle-detecting topological resolution of the order
//
// The root package is the thin public entry point:
//
//	order, err := lexorder.Infer([]string{"ax", "az", "bx", "ba"})
//	// order == "xabzcdefghijklmnopqrstuvwy"
//
// ✨ Why choose lexorder?
//
//   - Deterministic — the same input always yields the same order; symbols
//     without constraints keep their natural alphabet order
//   - Explicit failure — contradictory or cyclic word lists surface as
//     ErrImpossible, never as a partial result
//   - Pure Go — no cgo, no hidden deps, no I/O, no shared state; each call
//     builds its own graph and traversal state, so concurrent callers need
//     no coordination
//   - Generalizable — swap in any finite symbol set via WithAlphabet
//
// Quick sketch of the pipeline:
//
//	words ──► precedence.Scan ──► constraint graph ──► resolve.Order ──► order
//	              │                                        │
//	              └── ErrPrefixContradiction               └── ErrCycleDetected
//	                        (both wrapped as lexorder.ErrImpossible)
//
//	go get github.com/veltran/lexorder
package lexorder
