// Package dfs defines result types, options, and error definitions for
// depth-first traversal over a core.Graph.
package dfs

import "errors"

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates a start vertex outside [0, VertexCount).
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// NoParent is the Parent value of the start vertex and of unvisited vertices.
const NoParent = -1

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked on vertex discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnVisit: nil}
}

// WithOnVisit registers a pre-order hook; returning an error aborts.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result holds the outcome of a DFS traversal:
//   - Order:   vertices in preorder discovery sequence.
//   - Parent:  predecessor in the DFS tree (NoParent for the start and for
//     unvisited vertices).
//   - Visited: discovery flags indexed by vertex.
type Result struct {
	Order   []int
	Parent  []int
	Visited []bool
}
