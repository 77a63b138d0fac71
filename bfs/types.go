// Package bfs defines tunable options, result types, and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source vertex index is
	// outside [0, VertexCount).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for an unreached vertex.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Unreachable is the Dist value of a vertex the traversal never reached.
// Prefer the DistTo / Reachable accessors over comparing against it.
const Unreachable = int64(math.MaxInt64)

// NoParent is the Parent value of the source and of unreached vertices.
const NoParent = -1

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a vertex with its hop distance from
	// the source. If it returns an error, BFS aborts and propagates it.
	OnVisit func(v int, depth int64) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: no depth limit and a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(int, int64) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error from
// this callback stops the BFS.
func WithOnVisit(fn func(v int, depth int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in visit sequence.
//   - Dist: hop count from the source, indexed by vertex; Unreachable for
//     vertices the traversal never reached. The vector is complete and
//     zero-indexed (Dist[source] == 0).
//   - Parent: predecessor in the BFS tree; NoParent for the source and for
//     unreached vertices.
type Result struct {
	Order  []int
	Dist   []int64
	Parent []int
}

// DistTo reports the hop distance to v and whether v was reached at all.
// This comma-ok form is the contractual way to observe unreachability.
func (r *Result) DistTo(v int) (int64, bool) {
	if v < 0 || v >= len(r.Dist) || r.Dist[v] == Unreachable {
		return 0, false
	}

	return r.Dist[v], true
}

// Reachable reports whether the traversal reached v.
func (r *Result) Reachable(v int) bool {
	_, ok := r.DistTo(v)

	return ok
}

// PathTo reconstructs the vertex sequence from the source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	// build reversed path, then flip
	path := []int{}
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
