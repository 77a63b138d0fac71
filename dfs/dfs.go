// File: dfs.go
// Role: Iterative depth-first traversal, single-source reachability, and the
//       full-graph connectivity check used by minimum-spanning-tree
//       reverse-delete.
// Determinism:
//   - Neighbors are expanded in ascending vertex order (core keeps
//     adjacency sorted), so Order is fully reproducible.

package dfs

import (
	"fmt"

	"github.com/arborlib/arbor/core"
)

// frame pairs a vertex with the vertex that discovered it.
type frame struct {
	v      int
	parent int
}

// DFS performs an iterative depth-first traversal of g from start.
// An explicit stack replaces recursion so deep paths on medium workloads
// cannot exhaust the goroutine stack.
//
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input, or any
// user-supplied hook error.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (vertex count %d)", ErrStartOutOfRange, start, n)
	}

	res := &Result{
		Order:   make([]int, 0, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := range res.Parent {
		res.Parent[v] = NoParent
	}

	stack := make([]frame, 0, n)
	stack = append(stack, frame{v: start, parent: NoParent})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Visited[top.v] {
			continue
		}
		res.Visited[top.v] = true
		res.Parent[top.v] = top.parent
		res.Order = append(res.Order, top.v)
		if o.OnVisit != nil {
			if err := o.OnVisit(top.v); err != nil {
				return res, fmt.Errorf("dfs: OnVisit error at %d: %w", top.v, err)
			}
		}

		neighbors, err := g.Neighbors(top.v)
		if err != nil {
			return res, fmt.Errorf("dfs: failed to get neighbors of %d: %w", top.v, err)
		}
		// Push in reverse so the smallest vertex index is expanded first.
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !res.Visited[neighbors[i].To] {
				stack = append(stack, frame{v: neighbors[i].To, parent: top.v})
			}
		}
	}

	return res, nil
}

// Reachable reports, for every vertex, whether a path from start exists.
// Thin wrapper over DFS returning just the discovery flags.
func Reachable(g *core.Graph, start int) ([]bool, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Visited, nil
}

// Connected reports whether every vertex of g is reachable from vertex 0,
// including vertices with no remaining adjacency records. Graphs with fewer
// than two vertices are vacuously connected. Intended for undirected
// graphs; on directed graphs it tests reachability from vertex 0 only.
//
// Complexity: O(V + E).
func Connected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.VertexCount() < 2 {
		return true, nil
	}
	visited, err := Reachable(g, 0)
	if err != nil {
		return false, err
	}
	for _, seen := range visited {
		if !seen {
			return false, nil
		}
	}

	return true, nil
}
