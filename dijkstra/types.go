// Package dijkstra defines result types, configuration options, and
// sentinel errors for Dijkstra's shortest-path algorithm.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source index outside [0, VertexCount).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected in the
	// graph. Dijkstra's correctness argument requires non-negative weights,
	// so the algorithm fails fast instead of producing silent nonsense.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath is returned by Result.PathTo for an unreachable vertex.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// Unreachable is the Dist value of a vertex no path reaches.
// Prefer the DistTo / Reachable accessors over comparing against it.
const Unreachable = int64(math.MaxInt64)

// NoParent is the Parent value of the source and of unreachable vertices.
const NoParent = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance caps exploration: once the nearest unvisited vertex lies
// beyond it, the scan stops. Must be >= 0; default is math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance exceeds this value are not explored.
// Negative values panic: misconfiguration, not runtime input.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// Result holds the outcome of a Dijkstra run:
//   - Dist: complete, zero-indexed vector of shortest distances from the
//     source (Unreachable where no path exists; use DistTo / Reachable).
//   - Parent: predecessor on the shortest path (NoParent for the source and
//     for unreachable vertices).
type Result struct {
	Dist   []int64
	Parent []int
}

// DistTo reports the shortest distance to v and whether v is reachable.
// This comma-ok form is the contractual way to observe unreachability.
func (r *Result) DistTo(v int) (int64, bool) {
	if v < 0 || v >= len(r.Dist) || r.Dist[v] == Unreachable {
		return 0, false
	}

	return r.Dist[v], true
}

// Reachable reports whether a path from the source to v exists.
func (r *Result) Reachable(v int) bool {
	_, ok := r.DistTo(v)

	return ok
}

// PathTo reconstructs the shortest vertex sequence from the source to dest.
// Returns ErrNoPath if dest is unreachable.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := []int{}
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
