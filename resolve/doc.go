// Package resolve turns a finished constraint graph into a total symbol
// order, or reports that no such order exists.
//
// What:
//
//   - Order: a cycle-detecting depth-first topological sort over the
//     constraint graph. Symbols that carry at least one constraint are
//     emitted first, in reverse post-order; symbols that never appeared in
//     any constraint follow, in the universe's natural enumeration order.
//
// Why:
//
//   - The precedence package only collects pairwise facts. Whether those
//     facts admit a consistent total order is a property of the whole graph,
//     decided here by looking for a back-edge during traversal.
//
// Key Types & Constants:
//
//   - White, Gray, Black: per-symbol visitation states (unvisited,
//     on the recursion stack, fully explored). The state map is created
//     fresh for every Order call and discarded afterwards; it is never
//     stored on the graph, so independent resolutions can run over the same
//     graph concurrently.
//   - Option / WithCancelContext: cancellation plumbing; Order defaults to
//     context.Background.
//
// Determinism:
//
//   - Traversal starts from graph sources in first-insertion order and
//     visits neighbors in edge-insertion order. Together with the
//     natural-order suffix for unconstrained symbols this makes Order a
//     pure deterministic function of the graph.
//
// Complexity:
//
//   - Time:   O(V + E)  (each symbol and constraint visited once)
//   - Memory: O(V)      (state map and recursion stack; depth is bounded by
//     the universe size)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrCycleDetected   the constraints contain a directed cycle
//   - context.Canceled   resolution canceled via WithCancelContext
package resolve
