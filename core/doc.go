// Package core defines the central Graph, Neighbor, and Edge types that
// every algorithm package in arbor operates on.
//
// What
//
//   - A Graph owns a fixed vertex set 0..VertexCount()-1 and a per-vertex
//     adjacency structure of Neighbor records, kept sorted by vertex index.
//   - Directedness and weightedness are fixed at construction:
//     core.NewGraph(n), core.NewGraph(n, core.WithDirected()),
//     core.NewGraph(n, core.WithWeighted()).
//   - Mutation is edge-only: AddEdge, AddDirectedEdge, RemoveEdge. The
//     vertex set never changes after construction.
//   - Queries: HasEdge, Neighbors, Degree, EdgeCount, and SortedEdges
//     (bulk listing by weight, ascending or descending, de-duplicating the
//     mirrored records of undirected edges).
//
// Invariants
//
//   - Undirected symmetry: u lists v with weight w iff v lists u with
//     weight w, for every edge added via AddEdge. AddDirectedEdge is the
//     sanctioned way to break symmetry for mixed relationships.
//   - Self-loops are rejected; duplicate insertions are idempotent no-ops,
//     observable through the boolean return.
//   - A rejected call leaves the graph untouched.
//   - EdgeCount counts logically distinct edges: an undirected edge counts
//     once despite its two mirrored records.
//
// Determinism
//
//	Neighbor slices are sorted by vertex index ascending, so every traversal
//	over Neighbors visits adjacent vertices in increasing order, and
//	SortedEdges tie-breaks equal weights on (From, To). Two topologically
//	equal graphs behave identically regardless of edge insertion order.
//
// Concurrency
//
//	Graph is not safe for concurrent use. The engine is single-threaded by
//	design: each algorithm call exclusively owns the graph until it returns.
//
// Complexity (V = vertices, E = edges, deg = neighbor count)
//
//   - AddEdge / AddDirectedEdge / RemoveEdge: O(deg) per endpoint
//   - HasEdge: O(log deg)
//   - Neighbors: O(deg) (defensive copy)
//   - SortedEdges: O(E log E)
//
// Errors
//
//   - ErrBadVertexCount   if NewGraph receives a negative count.
//   - ErrVertexOutOfRange if an endpoint is outside [0, VertexCount).
//   - ErrSelfLoop         if both endpoints are the same vertex.
package core
