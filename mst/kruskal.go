// File: kruskal.go
// Role: Kruskal's minimum spanning tree via ascending edge scan + union-find.

package mst

import (
	"github.com/arborlib/arbor/core"
	"github.com/arborlib/arbor/unionfind"
)

// Kruskal computes a minimum spanning tree of an undirected, weighted graph.
//
// Steps:
//  1. Validate: non-nil, undirected, weighted (ErrInvalidGraph otherwise).
//  2. Collect each undirected edge exactly once via core.SortedEdges
//     ascending (mirror records de-duplicated, equal weights tie-broken on
//     (From, To) so topologically equal graphs evaluate identically).
//  3. Initialize one union-find singleton per vertex.
//  4. Accept an edge iff its endpoints lie in different sets, union them;
//     stop once VertexCount-1 edges are accepted.
//
// All candidate edges are scanned if the accept count never reaches
// VertexCount-1, so a disconnected graph yields a minimum spanning forest
// covering every component - not an error. An empty or single-vertex graph
// yields an empty tree.
//
// Complexity: O(E log E + alpha(V)*E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	n := g.VertexCount()
	tree := make([]core.Edge, 0, max(n-1, 0))
	if n < 2 {
		return tree, 0, nil
	}

	dsu := unionfind.New(n)
	var total int64
	for _, e := range g.SortedEdges(core.Ascending) {
		if !dsu.Union(e.From, e.To) {
			// Endpoints already connected: accepting would close a cycle.
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}

	return tree, total, nil
}
