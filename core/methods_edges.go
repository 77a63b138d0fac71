// File: methods_edges.go
// Role: Bulk edge listing sorted by weight, de-duplicating the mirrored
//       records of undirected edges.
// Determinism:
//   - Equal weights tie-break on (From, To) ascending, so two topologically
//     equal graphs list edges identically regardless of insertion order.

package core

import "sort"

// SortedEdges lists every logically distinct edge sorted by weight in the
// requested order.
//
// On an undirected graph each edge appears once: the (u, v) record with
// u < v is emitted, and a record with u > v is emitted only when its mirror
// is absent (an asymmetric record produced by AddDirectedEdge). On a
// directed graph every stored record is its own edge.
//
// Complexity: O(E log E).
func (g *Graph) SortedEdges(order Order) []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for u, adj := range g.adjacency {
		for _, nb := range adj {
			if !g.directed && nb.To < u {
				// Skip the mirror half unless the forward record is missing.
				if _, mirrored := g.weightOf(nb.To, u); mirrored {
					continue
				}
			}
			edges = append(edges, Edge{From: u, To: nb.To, Weight: nb.Weight})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Weight != b.Weight {
			if order == Descending {
				return a.Weight > b.Weight
			}

			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})

	return edges
}
