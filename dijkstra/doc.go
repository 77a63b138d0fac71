// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on non-negatively weighted graphs.
//
// What
//
//   - Dijkstra(g, source, opts...) returns a Result with a complete,
//     zero-indexed distance vector and predecessor links.
//   - Unreachable vertices are observed through the comma-ok accessors
//     DistTo / Reachable rather than a magic finite sentinel.
//   - Result.PathTo reconstructs the shortest vertex sequence.
//
// Why
//
//	Minimum-cost routes on weighted graphs where BFS hop counts are not
//	enough; agrees with the matrix package's Floyd-Warshall closure on
//	every vertex pair of a non-negatively weighted graph.
//
// Mechanism
//
//	Vertices are finalized by repeated O(V) minimum scans over the
//	unvisited set - deliberately no priority queue. For the medium,
//	often dense graphs this engine targets, the O(V^2 + E) sweep beats
//	heap bookkeeping and keeps the hot loop allocation-free.
//
// Notes on implementation choices:
//
//   - An upfront scan of all adjacency records (O(E)) detects negative
//     weights and fails fast with ErrNegativeWeight.
//   - The loop stops early once no reachable unvisited vertex remains.
//   - WithMaxDistance(x) stops exploring once the nearest unvisited vertex
//     lies beyond x.
//
// Complexity
//
//   - Time:  O(V^2 + E)
//   - Space: O(V)
//
// Errors (sentinel):
//
//   - ErrGraphNil         if the provided graph pointer is nil.
//   - ErrSourceOutOfRange if the source index is invalid.
//   - ErrNegativeWeight   if any edge weight is negative.
//   - ErrBadMaxDistance   panic from WithMaxDistance on a negative cap.
//   - ErrNoPath           from Result.PathTo on an unreachable vertex.
package dijkstra
