// File: bfs.go
// Role: Level-order traversal producing hop distances, parent links, and
//       visit order.

package bfs

import (
	"fmt"

	"github.com/arborlib/arbor/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from source, applying any
// number of functional Options.
//
// Every edge is treated as unit weight regardless of the graph's weighted
// flag; callers are responsible for invoking BFS only on logically
// unweighted graphs. Each vertex enters the queue at most once, and its
// distance is fixed at discovery time (Dist[parent]+1), so on a connected
// component no distance exceeds VertexCount-1.
//
// Returns ErrGraphNil or ErrSourceOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (vertex count %d)", ErrSourceOutOfRange, source, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int64, n),
			Parent: make([]int, n),
		},
	}
	for v := range w.res.Dist {
		w.res.Dist[v] = Unreachable
		w.res.Parent[v] = NoParent
	}

	// Seed queue with the source at depth 0.
	w.res.Dist[source] = 0
	w.queue = append(w.queue, source)

	return w.res, w.loop()
}

// loop processes the queue until empty or a hook aborts.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]

		depth := w.res.Dist[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if err := w.enqueueNeighbors(u, depth); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers each unseen neighbor of u at depth+1,
// honoring the MaxDepth limit. Neighbor order is ascending vertex index,
// so the visit sequence is fully reproducible.
func (w *walker) enqueueNeighbors(u int, depth int64) error {
	neighbors, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %d: %w", u, err)
	}
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range neighbors {
		// first time seen?
		if w.res.Dist[nb.To] == Unreachable {
			w.res.Dist[nb.To] = next
			w.res.Parent[nb.To] = u
			w.queue = append(w.queue, nb.To)
		}
	}

	return nil
}
