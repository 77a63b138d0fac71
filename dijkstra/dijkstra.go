// File: dijkstra.go
// Role: Single-source shortest paths via repeated linear minimum scans.
//       No priority queue: selection is an O(V) sweep per round, giving
//       O(V^2 + E) total, which is the right trade for the dense-to-medium
//       graphs this engine targets.

package dijkstra

import (
	"fmt"

	"github.com/arborlib/arbor/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source must lie in [0, VertexCount) (ErrSourceOutOfRange).
//  3. No edge may carry a negative weight (ErrNegativeWeight, fail-fast
//     pre-scan).
//
// The main loop runs at most VertexCount-1 rounds: scan all unvisited
// vertices for the minimum current distance, mark it visited, and relax its
// outgoing edges. It terminates early once no reachable unvisited vertex
// remains, or once the nearest one lies beyond Options.MaxDistance.
//
// Complexity: O(V^2 + E) time, O(V) memory.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (vertex count %d)", ErrSourceOutOfRange, source, n)
	}

	r := &runner{
		graph:   g,
		options: cfg,
		res: &Result{
			Dist:   make([]int64, n),
			Parent: make([]int, n),
		},
		visited: make([]bool, n),
	}

	// Fail fast on negative weights before touching any state.
	if err := r.scanWeights(); err != nil {
		return nil, err
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	graph   *core.Graph // read-only within Dijkstra
	options Options
	res     *Result
	visited []bool // true once a vertex's distance is final
}

// scanWeights walks every adjacency record looking for a negative weight.
func (r *runner) scanWeights() error {
	for u := 0; u < r.graph.VertexCount(); u++ {
		neighbors, err := r.graph.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
		}
		for _, nb := range neighbors {
			if nb.Weight < 0 {
				return fmt.Errorf("%w: edge %d->%d weight=%d", ErrNegativeWeight, u, nb.To, nb.Weight)
			}
		}
	}

	return nil
}

// init seeds distances and parents: everything Unreachable/NoParent except
// the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		r.res.Parent[v] = NoParent
	}
	r.res.Dist[source] = 0
}

// process runs the selection-and-relaxation loop.
func (r *runner) process() error {
	n := r.graph.VertexCount()
	for round := 1; round < n; round++ {
		u, best := r.nextVertex()
		if u == NoParent {
			// No reachable unvisited vertex remains: done early.
			break
		}
		if best > r.options.MaxDistance {
			// Everything still unvisited lies beyond the cap.
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// nextVertex scans all unvisited vertices for the minimum current distance.
// Returns (NoParent, Unreachable) when none has a finite distance.
func (r *runner) nextVertex() (int, int64) {
	u, best := NoParent, Unreachable
	for v, d := range r.res.Dist {
		if !r.visited[v] && d < best {
			u, best = v, d
		}
	}

	return u, best
}

// relax attempts to improve the distance of each neighbor of u through u.
// Assumes Dist[u] is finite and final.
func (r *runner) relax(u int) error {
	neighbors, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	du := r.res.Dist[u]
	for _, nb := range neighbors {
		// Pre-scan catches these; the guard stays in case the graph is
		// mutated between the scan and this round.
		if nb.Weight < 0 {
			return fmt.Errorf("%w: edge %d->%d weight=%d", ErrNegativeWeight, u, nb.To, nb.Weight)
		}
		newDist := du + nb.Weight
		if newDist < r.res.Dist[nb.To] {
			r.res.Dist[nb.To] = newDist
			r.res.Parent[nb.To] = u
		}
	}

	return nil
}
