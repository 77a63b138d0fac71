// File: prim.go
// Role: Prim's minimum spanning tree grown from an explicit start vertex,
//       selecting the next vertex by an O(V) key scan each round.

package mst

import (
	"fmt"
	"math"

	"github.com/arborlib/arbor/core"
)

// unkeyed marks a vertex no tree edge has offered a connection to yet.
const unkeyed = int64(math.MaxInt64)

// noVertex marks an empty parent pointer.
const noVertex = -1

// Prim computes a minimum spanning tree by growing a single tree from
// start.
//
// The start vertex is an explicit required parameter: there is no default,
// and an out-of-range start (including any start on a zero-vertex graph)
// returns ErrStartOutOfRange.
//
// Every vertex outside the tree holds a key (best known connecting weight)
// and a parent pointer. Each round scans the tree-excluded vertices for the
// minimum key - an O(V) sweep, no priority queue - adds that vertex, and
// improves its neighbors' keys. If no connectible vertex remains the growth
// stops early, so on a disconnected graph the result spans exactly the
// start vertex's component.
//
// The accepted edge set is reconstructed from the parent pointers by
// looking up the stored adjacency weight between each vertex and its
// parent, checking both directions of the symmetric storage.
//
// Complexity: O(V^2 + E) time, O(V) memory.
func Prim(g *core.Graph, start int) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("%w: %d (vertex count %d)", ErrStartOutOfRange, start, n)
	}

	key := make([]int64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for v := range key {
		key[v] = unkeyed
		parent[v] = noVertex
	}
	key[start] = 0

	for round := 0; round < n; round++ {
		// Pick the cheapest connectible vertex outside the tree.
		u, best := noVertex, unkeyed
		for v := 0; v < n; v++ {
			if !inTree[v] && key[v] < best {
				u, best = v, key[v]
			}
		}
		if u == noVertex {
			// Disconnected remainder: growth stops with the component done.
			break
		}
		inTree[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, 0, err
		}
		for _, nb := range neighbors {
			if !inTree[nb.To] && nb.Weight < key[nb.To] {
				key[nb.To] = nb.Weight
				parent[nb.To] = u
			}
		}
	}

	// Reconstruct accepted edges from the parent pointers, reading the
	// stored weight rather than trusting the key values.
	tree := make([]core.Edge, 0, max(n-1, 0))
	var total int64
	for v := 0; v < n; v++ {
		p := parent[v]
		if p == noVertex {
			continue
		}
		w, ok := storedWeight(g, p, v)
		if !ok {
			return nil, 0, fmt.Errorf("mst: edge %d-%d vanished during reconstruction", p, v)
		}
		tree = append(tree, core.Edge{From: p, To: v, Weight: w})
		total += w
	}

	return tree, total, nil
}
