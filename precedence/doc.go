// Package precedence builds the directed constraint graph that encodes
// pairwise symbol-ordering evidence extracted from a sorted word list.
//
// What:
//
//   - Graph: a mutable accumulator of directed constraints (before → after)
//     between symbols, plus the full symbol universe it covers. Outgoing
//     edges are kept in insertion order; duplicate constraints are kept
//     as-is (the graph is a multigraph — repeats are harmless for
//     correctness and never deduplicated).
//   - Scan / FromWords: the constraint extractor. Walks consecutive word
//     pairs, emits at most one constraint per pair (at the first differing
//     position), and fails fast on the prefix rule: a word may never be
//     preceded by a strictly longer word of which it is a prefix.
//
// Why:
//
//   - A word list sorted under an unknown ordering is a bag of pairwise
//     facts. Collecting them into one directed graph lets a later traversal
//     (see the resolve package) decide whether a total order exists.
//
// Key Types & Functions:
//
//   - Graph, NewGraph(alphabet)       constraint accumulator
//   - (*Graph).AddConstraint(b, a)    append one directed edge
//   - (*Graph).Outgoing, Sources      read access in deterministic order
//   - Scan(g, words) error            extract constraints into g
//   - FromWords(alphabet, words)      NewGraph + Scan in one call
//
// Invariants:
//
//   - Insertion is monotonic: edges are only ever appended, never removed.
//   - The extractor never emits a self-loop — a constraint arises only at a
//     position where two symbols differ.
//   - Accessors return copies; the graph is never mutated through them.
//
// Errors:
//
//   - ErrPrefixContradiction   a longer word precedes one of its own prefixes
//
// Complexity: Scan is O(total input length); every Graph accessor is linear
// in the size of what it returns.
package precedence
