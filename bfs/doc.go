// Package bfs provides breadth-first search over a core.Graph, returning
// unit-weight shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a source vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Dist:   complete, zero-indexed hop-count vector (Unreachable for
//     vertices no path reaches; use DistTo / Reachable)
//   - Parent: predecessor of each vertex in the BFS tree
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth
//     limit (d > 0) or explicit "no limit" (d == 0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//
// Determinism
//
//	core.Graph keeps neighbor slices sorted by vertex index, and BFS
//	enqueues neighbors in that order, so the visit sequence is fully
//	reproducible.
//
// Unit-weight contract
//
//	BFS hop counts coincide with shortest paths only when every edge is
//	logically unit weight. The algorithm does not inspect the graph's
//	weighted flag; invoking it on a weighted graph is the caller's
//	responsibility, not a detected error.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Dist, Parent)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, or a hook error
//	}
//	if d, ok := res.DistTo(3); ok {
//	    fmt.Println("hops to 3:", d)
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if the source index is invalid.
//   - ErrOptionViolation   for invalid options (e.g. negative MaxDepth).
//   - ErrNoPath            from Result.PathTo on an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
