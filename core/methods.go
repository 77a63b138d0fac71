// File: methods.go
// Role: Edge lifecycle & queries: AddEdge/AddDirectedEdge/RemoveEdge/HasEdge/
//       Neighbors/Degree, plus the sorted-insertion helpers.
// Determinism:
//   - adjacency[u] is always sorted by Neighbor.To ascending, so every
//     traversal visits neighbors in increasing vertex order.

package core

import (
	"fmt"
	"sort"
)

// checkEndpoints validates that u and v are in range and distinct.
// A failed check implies the caller makes no change to the graph.
func (g *Graph) checkEndpoints(u, v int) error {
	n := len(g.adjacency)
	if u < 0 || u >= n {
		return fmt.Errorf("%w: %d (vertex count %d)", ErrVertexOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d (vertex count %d)", ErrVertexOutOfRange, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}

	return nil
}

// resolveWeight forces unit weight on unweighted graphs.
func (g *Graph) resolveWeight(weight int64) int64 {
	if !g.weighted {
		return 1
	}

	return weight
}

// searchNeighbor returns the insertion index of v in adj and whether v is
// already present. Binary search over the sorted slice; O(log deg).
func searchNeighbor(adj []Neighbor, v int) (int, bool) {
	i := sort.Search(len(adj), func(k int) bool { return adj[k].To >= v })

	return i, i < len(adj) && adj[i].To == v
}

// insertNeighbor places (v, w) into u's sorted neighbor slice.
// Reports false without change when v is already present.
func (g *Graph) insertNeighbor(u, v int, w int64) bool {
	adj := g.adjacency[u]
	i, found := searchNeighbor(adj, v)
	if found {
		return false
	}
	adj = append(adj, Neighbor{})
	copy(adj[i+1:], adj[i:])
	adj[i] = Neighbor{To: v, Weight: w}
	g.adjacency[u] = adj

	return true
}

// deleteNeighbor removes v from u's neighbor slice.
// Reports false without change when v is absent.
func (g *Graph) deleteNeighbor(u, v int) bool {
	adj := g.adjacency[u]
	i, found := searchNeighbor(adj, v)
	if !found {
		return false
	}
	g.adjacency[u] = append(adj[:i], adj[i+1:]...)

	return true
}

// AddEdge inserts the edge u-v with the given weight.
//
// Returns (false, err) and changes nothing when u or v is out of range or
// u == v. Returns (false, nil) when the edge already exists (idempotent
// no-op). On an unweighted graph the stored weight is forced to 1. On an
// undirected graph the mirror record v→u is inserted with the same resolved
// weight, preserving the symmetry invariant. EdgeCount grows by 1 exactly
// when the primary insertion succeeded.
//
// Complexity: O(deg) per endpoint (binary search + slice shift).
func (g *Graph) AddEdge(u, v int, weight int64) (bool, error) {
	if err := g.checkEndpoints(u, v); err != nil {
		return false, err
	}
	w := g.resolveWeight(weight)
	if !g.insertNeighbor(u, v, w) {
		return false, nil
	}
	if !g.directed {
		// Mirror for the symmetry invariant; cannot collide because the
		// primary insertion succeeded.
		g.insertNeighbor(v, u, w)
	}
	g.edgeCount++

	return true, nil
}

// AddDirectedEdge inserts the one-way edge u→v regardless of the graph's
// directed flag. Validation and weight resolution match AddEdge; the reverse
// record is never inserted. Intended for mixed or always-directed
// relationships.
func (g *Graph) AddDirectedEdge(u, v int, weight int64) (bool, error) {
	if err := g.checkEndpoints(u, v); err != nil {
		return false, err
	}
	if !g.insertNeighbor(u, v, g.resolveWeight(weight)) {
		return false, nil
	}
	g.edgeCount++

	return true, nil
}

// RemoveEdge deletes the edge u-v. Validation matches AddEdge. On an
// undirected graph the mirror record is removed as well. Returns whether a
// removal occurred; EdgeCount shrinks by 1 on success.
func (g *Graph) RemoveEdge(u, v int) (bool, error) {
	if err := g.checkEndpoints(u, v); err != nil {
		return false, err
	}
	if !g.deleteNeighbor(u, v) {
		return false, nil
	}
	if !g.directed {
		g.deleteNeighbor(v, u)
	}
	g.edgeCount--

	return true, nil
}

// HasEdge reports whether the record u→v exists. Out-of-range indices report
// false rather than an error; u == v is permitted and reports false on any
// graph since self-loops are rejected at insertion.
// Complexity: O(log deg).
func (g *Graph) HasEdge(u, v int) bool {
	n := len(g.adjacency)
	if u < 0 || u >= n || v < 0 || v >= n {
		return false
	}
	_, found := searchNeighbor(g.adjacency[u], v)

	return found
}

// Neighbors returns a copy of u's adjacency records, sorted by vertex index
// ascending. The copy keeps callers from aliasing the internal slice across
// subsequent mutations.
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if u < 0 || u >= len(g.adjacency) {
		return nil, fmt.Errorf("%w: %d (vertex count %d)", ErrVertexOutOfRange, u, len(g.adjacency))
	}
	out := make([]Neighbor, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Degree reports the number of adjacency records stored for u.
// For undirected graphs this is the vertex degree; for directed graphs the
// out-degree.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= len(g.adjacency) {
		return 0, fmt.Errorf("%w: %d (vertex count %d)", ErrVertexOutOfRange, u, len(g.adjacency))
	}

	return len(g.adjacency[u]), nil
}

// weightOf returns the stored weight of the record u→v, if present.
// Package-internal: used by SortedEdges de-duplication.
func (g *Graph) weightOf(u, v int) (int64, bool) {
	i, found := searchNeighbor(g.adjacency[u], v)
	if !found {
		return 0, false
	}

	return g.adjacency[u][i].Weight, true
}
