// Package mst provides three minimum-spanning-tree constructions over an
// undirected, weighted core.Graph: Kruskal, Prim, and ReverseDelete.
//
// What
//
//   - Kruskal(g): ascending edge scan accepted through a union-find.
//   - Prim(g, start): single tree grown from an explicit start vertex by
//     O(V) key scans.
//   - ReverseDelete(g): descending edge scan dropping every non-bridge,
//     verified by depth-first reachability. Mutates g while running;
//     restores a consistent spanning state before returning.
//   - Compute(g, opts...): method dispatch via WithMethod / WithStart.
//
// Each returns the accepted edges and their total weight. On any connected,
// undirected, weighted graph the three agree on the total weight (edge sets
// may differ when equal weights tie). On a disconnected graph Kruskal and
// ReverseDelete return the minimum spanning forest covering every
// component, and Prim returns the spanning tree of the start vertex's
// component; none of them treats disconnection as an error.
//
// Determinism
//
//	Candidate edges come from core.SortedEdges, which tie-breaks equal
//	weights on (From, To), so two topologically equal graphs evaluate
//	identically regardless of internal storage order.
//
// Preconditions
//
//	All three require a non-nil, undirected, weighted graph and return
//	ErrInvalidGraph otherwise. Prim additionally requires an in-range
//	start vertex (ErrStartOutOfRange) - there is no default start.
//
// Complexity (V = vertices, E = edges)
//
//   - Kruskal:       O(E log E + alpha(V)*E)
//   - Prim:          O(V^2 + E)
//   - ReverseDelete: O(E * (V + E))
//
// Errors
//
//   - ErrInvalidGraph    nil, directed, or unweighted graph.
//   - ErrStartOutOfRange invalid Prim start vertex.
//   - ErrUnknownMethod   unrecognized Options.Method in Compute.
package mst
