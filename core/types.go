// File: types.go
// Role: Declares Neighbor, Edge, Graph, GraphOption, Order, sentinel errors,
//       and the NewGraph constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loops not allowed")
)

// Neighbor is one adjacency record: the adjacent vertex and the weight of
// the connecting edge. Per-vertex neighbor slices are kept sorted by To
// ascending with no duplicate To per source vertex.
type Neighbor struct {
	// To is the adjacent vertex index.
	To int

	// Weight is the stored edge weight (always 1 on unweighted graphs).
	Weight int64
}

// Edge is an immutable (From, To, Weight) triple used by bulk operations:
// sorted edge listings and minimum-spanning-tree results. Edges are not
// stored inside Graph; the adjacency structure holds Neighbor records.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Order selects the weight ordering of SortedEdges.
type Order int

const (
	// Ascending sorts edges by weight, smallest first.
	Ascending Order = iota

	// Descending sorts edges by weight, largest first.
	Descending
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge added via AddEdge one-way.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows caller-supplied edge weights. Without this option
// every stored weight is forced to 1.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory adjacency structure all arbor algorithms operate on.
//
// The vertex set is fixed at construction; only edges mutate. For undirected
// graphs AddEdge maintains the symmetry invariant: u lists v with weight w
// iff v lists u with weight w. AddDirectedEdge deliberately breaks that
// symmetry for mixed relationships.
//
// Graph is not safe for concurrent use: the design assumes a single caller
// that owns the graph for the duration of each call, and ReverseDelete
// mutates the adjacency structure mid-algorithm.
type Graph struct {
	directed bool // edges added via AddEdge are one-way
	weighted bool // caller-supplied weights are honored

	// adjacency[u] is sorted by Neighbor.To ascending, no duplicates.
	adjacency [][]Neighbor

	// edgeCount counts logically distinct edges: an undirected edge counts
	// once even though it is stored as two mirrored Neighbor records.
	edgeCount int
}

// NewGraph creates a graph with vertices 0..vertexCount-1 and no edges.
// Returns ErrBadVertexCount if vertexCount is negative.
// Complexity: O(V).
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{adjacency: make([][]Neighbor, vertexCount)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// VertexCount reports the fixed number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount reports the number of logically distinct edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Directed reports whether AddEdge inserts one-way edges.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether caller-supplied weights are honored.
func (g *Graph) Weighted() bool { return g.weighted }
