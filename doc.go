// Package arbor is an in-memory graph-algorithms engine: build a finite
// directed or undirected, weighted or unweighted graph and run the
// canonical algorithms over it.
//
// What's inside
//
//	core/       — fundamental Graph, Neighbor, Edge types and edge mutation
//	unionfind/  — disjoint set with path compression and union by rank
//	bfs/        — unweighted shortest hop counts and level layering
//	dfs/        — depth-first traversal, reachability, connectivity
//	dijkstra/   — single-source shortest paths, non-negative weights
//	matrix/     — dense distance matrix and Floyd-Warshall closure
//	mst/        — Kruskal, Prim, and reverse-delete spanning trees
//
// Design
//
//   - Pure computational library: every algorithm takes a graph and returns
//     structured results; nothing prints, persists, or blocks.
//   - Vertices are the dense indices 0..VertexCount()-1, fixed at
//     construction; only edges mutate.
//   - Deterministic by construction: adjacency is kept sorted, edge
//     listings tie-break on endpoints, and no algorithm depends on map
//     iteration order.
//   - Errors are per-package sentinels matched with errors.Is; unreachable
//     vertices are observed through comma-ok accessors, never a magic
//     finite sentinel.
//
// Quick ASCII example:
//
//	    1───2
//	     \  │
//	      \ │
//	        3
//
//	a weighted triangle: 1-2(3), 1-3(1), 3-2(5); its minimum spanning
//	tree keeps 1-3 and 1-2 for a total weight of 4, whichever of the
//	three constructions you run.
//
// The engine is single-threaded by design: a graph is exclusively owned by
// the caller for the duration of each algorithm invocation.
//
//	go get github.com/arborlib/arbor
package arbor
