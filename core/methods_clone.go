// File: methods_clone.go
// Role: Deep copy of a Graph. Flags and vertex count carry over; adjacency
//       slices are copied so mutations of either graph never alias the
//       other.

package core

// Clone returns a deep copy of g: same flags, same vertex count, same
// edges, fully independent storage. Useful for running a mutating
// algorithm (reverse-delete) while keeping the original intact.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		directed:  g.directed,
		weighted:  g.weighted,
		adjacency: make([][]Neighbor, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for u, adj := range g.adjacency {
		if len(adj) == 0 {
			continue
		}
		dup := make([]Neighbor, len(adj))
		copy(dup, adj)
		clone.adjacency[u] = dup
	}

	return clone
}
