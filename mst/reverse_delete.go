// File: reverse_delete.go
// Role: Reverse-delete minimum spanning tree: walk edges heaviest-first,
//       drop every edge whose removal keeps its endpoints mutually
//       reachable, reinsert the bridges.

package mst

import (
	"fmt"

	"github.com/arborlib/arbor/core"
	"github.com/arborlib/arbor/dfs"
)

// ReverseDelete computes a minimum spanning tree by deletion.
//
// Edges are visited in descending weight order (core.SortedEdges, ties
// broken on (From, To)). Each edge is tentatively removed; if its endpoints
// are no longer mutually reachable - a depth-first scan, so the edge was a
// bridge - it is reinserted immediately, otherwise it stays removed. The
// surviving edge set is the minimum spanning tree, or the minimum spanning
// forest of a disconnected input, since a bridge between components of the
// original graph is never deletable.
//
// Unlike its siblings, ReverseDelete mutates g while running. Callers must
// not observe the graph between removal and reinsertion steps; on return g
// holds exactly the returned spanning edge set and is consistent. If a
// reinsertion fails the graph may be left missing that edge, and the error
// says which one.
//
// Complexity: O(E * (V + E)) time - one reachability scan per candidate.
func ReverseDelete(g *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	for _, e := range g.SortedEdges(core.Descending) {
		removed, err := g.RemoveEdge(e.From, e.To)
		if err != nil {
			return nil, 0, fmt.Errorf("mst: removing edge %d-%d: %w", e.From, e.To, err)
		}
		if !removed {
			continue
		}

		reach, err := dfs.Reachable(g, e.From)
		if err != nil {
			return nil, 0, err
		}
		if !reach[e.To] {
			// Bridge: put it back before touching the next candidate.
			if _, err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, 0, fmt.Errorf("mst: restoring edge %d-%d: %w", e.From, e.To, err)
			}
		}
	}

	tree := g.SortedEdges(core.Ascending)
	var total int64
	for _, e := range tree {
		total += e.Weight
	}

	return tree, total, nil
}
