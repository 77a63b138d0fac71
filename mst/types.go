// Package mst defines configuration options and sentinel errors for
// minimum-spanning-tree computation, and the method dispatch scaffold.
package mst

import (
	"errors"

	"github.com/arborlib/arbor/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected,
// weighted graph. Returned when the graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

// ErrStartOutOfRange indicates a Prim start vertex outside [0, VertexCount).
// Prim has no default start: the caller must supply a valid one.
var ErrStartOutOfRange = errors.New("mst: start vertex out of range")

// ErrUnknownMethod indicates an Options.Method value Compute cannot dispatch.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodKruskal selects Kruskal's algorithm (sort all edges, union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow one tree from a start vertex).
const MethodPrim = "prim"

// MethodReverseDelete selects reverse-delete (drop heaviest non-bridges).
const MethodReverseDelete = "reverse-delete"

// Options configures which MST algorithm Compute runs, and for Prim, which
// start vertex to grow from.
//
// Fields:
//
//	Method string - MethodKruskal, MethodPrim, or MethodReverseDelete.
//	Start  int    - growth vertex for Prim; ignored by the other methods.
type Options struct {
	Method string
	Start  int
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithStart returns an Option that sets the start vertex for Prim.
// Ignored by Kruskal and ReverseDelete.
func WithStart(start int) Option {
	return func(o *Options) { o.Start = start }
}

// DefaultOptions returns Options initialized for Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Start: 0}
}

// Compute selects and runs the MST algorithm named by opts.
//
// Returns the accepted edges, their total weight, and any validation
// error; ErrUnknownMethod for an unrecognized Method. Note that
// MethodReverseDelete mutates g during execution (restoring a consistent
// spanning state before returning), while the other methods leave g
// untouched.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Start)
	case MethodReverseDelete:
		return ReverseDelete(g)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// validate rejects graphs MST computation is undefined on: nil, directed,
// or unweighted.
func validate(g *core.Graph) error {
	if g == nil || g.Directed() || !g.Weighted() {
		return ErrInvalidGraph
	}

	return nil
}

// storedWeight looks up the adjacency weight of the edge u-v, checking both
// directions since undirected storage is symmetric.
func storedWeight(g *core.Graph, u, v int) (int64, bool) {
	for _, pair := range [2][2]int{{u, v}, {v, u}} {
		neighbors, err := g.Neighbors(pair[0])
		if err != nil {
			continue
		}
		for _, nb := range neighbors {
			if nb.To == pair[1] {
				return nb.Weight, true
			}
		}
	}

	return 0, false
}
