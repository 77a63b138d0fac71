// Package matrix provides the dense all-pairs shortest-path view of a
// core.Graph: a flat row-major distance matrix and the Floyd-Warshall
// closure over it.
//
// What
//
//   - Dense: bounds-checked r x c float64 matrix on a single flat buffer.
//   - NewDistanceMatrix(g): V x V seed - 0 diagonal, direct edge weights,
//     +Inf for missing paths.
//   - FloydWarshall(d): in-place closure, fixed k -> i -> j loop order.
//   - AllPairsShortestPaths(g): the two composed.
//
// Why
//
//	One O(V^3) pass answers every ordered-pair distance query, and unlike
//	Dijkstra it tolerates negative edge weights as long as no negative
//	cycle exists (behavior under a negative cycle is unspecified).
//
// Conventions
//
//	IEEE +Inf stands for "no path" - a genuine type-level infinity rather
//	than a large finite sentinel, so it can never collide with a real
//	distance. Check with math.IsInf(v, 1).
//
// Complexity
//
//   - Seeding: O(V^2 + E)
//   - Closure: O(V^3) time, O(1) extra space (fully in-place)
//
// Errors
//
//   - ErrNilGraph          if a nil graph is passed to a constructor.
//   - ErrBadDimension      if NewDense receives a negative dimension.
//   - ErrIndexOutOfRange   from At/Set/Row outside the matrix.
//   - ErrDimensionMismatch if FloydWarshall receives a non-square matrix.
package matrix
