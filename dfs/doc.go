// Package dfs implements iterative depth-first traversal on a core.Graph,
// plus the reachability and connectivity predicates built on it.
//
// What
//
//   - DFS(g, start, opts...): preorder traversal from a start vertex,
//     returning visit Order, Parent links, and Visited flags.
//   - Reachable(g, start): per-vertex reachability vector.
//   - Connected(g): whether every vertex is reachable from vertex 0
//     (vacuously true below two vertices). This is the spanning check the
//     mst package's reverse-delete relies on.
//
// Why
//
//   - O(V + E) reachability underpins connectivity testing and
//     spanning-structure validation without touching edge weights.
//
// Determinism
//
//	Neighbors are expanded in ascending vertex index, so Order is fully
//	reproducible across runs and storage orders.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the explicit stack and result vectors. An explicit
//     stack replaces recursion, so path-shaped graphs cannot overflow.
//
// Errors
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartOutOfRange   if the start index is invalid.
//   - Wrapped user-supplied hook errors from OnVisit.
package dfs
