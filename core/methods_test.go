package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlib/arbor/core"
)

// TestNewGraph_Validation verifies constructor argument handling.
func TestNewGraph_Validation(t *testing.T) {
	// Negative vertex count is rejected outright.
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)

	// Zero vertices is a legal (empty) graph.
	g, err = core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())

	// Flags default to undirected, unweighted.
	g, err = core.NewGraph(3)
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())

	g, err = core.NewGraph(3, core.WithDirected(), core.WithWeighted())
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
}

// TestAddEdge_InvalidInput verifies that out-of-range endpoints and
// self-loops are rejected without touching the graph.
func TestAddEdge_InvalidInput(t *testing.T) {
	g, err := core.NewGraph(3, core.WithWeighted())
	require.NoError(t, err)

	// Self-loop on vertex 0: invalid-argument, edge count unchanged.
	ok, err := g.AddEdge(0, 0, 5)
	assert.False(t, ok)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	assert.Equal(t, 0, g.EdgeCount())

	// Endpoints outside [0, VertexCount).
	for _, pair := range [][2]int{{-1, 1}, {1, -1}, {3, 0}, {0, 3}} {
		ok, err = g.AddEdge(pair[0], pair[1], 1)
		assert.False(t, ok)
		assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	}
	assert.Equal(t, 0, g.EdgeCount())

	// RemoveEdge shares the same validation.
	ok, err = g.RemoveEdge(0, 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	ok, err = g.RemoveEdge(0, 9)
	assert.False(t, ok)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestAddEdge_SymmetryAndIdempotence covers the undirected symmetry
// invariant and the duplicate-insert no-op.
func TestAddEdge_SymmetryAndIdempotence(t *testing.T) {
	g, err := core.NewGraph(4, core.WithWeighted())
	require.NoError(t, err)

	ok, err := g.AddEdge(1, 3, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(3, 1)) // mirror record present

	// Second insertion with identical arguments is a detectable no-op.
	ok, err = g.AddEdge(1, 3, 7)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, g.EdgeCount())

	// Insert from the other side is equally a no-op: the mirror exists.
	ok, err = g.AddEdge(3, 1, 7)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, g.EdgeCount())

	// Removal drops both records and the logical count.
	ok, err = g.RemoveEdge(3, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(3, 1))

	// Removing an absent edge reports false, nil.
	ok, err = g.RemoveEdge(1, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestAddEdge_UnweightedForcesUnitWeight verifies that an unweighted graph
// stores weight 1 regardless of the argument.
func TestAddEdge_UnweightedForcesUnitWeight(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	ok, err := g.AddEdge(0, 1, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	assert.Equal(t, core.Neighbor{To: 1, Weight: 1}, nbs[0])
}

// TestAddDirectedEdge_NoMirror verifies one-way insertion on an otherwise
// undirected graph.
func TestAddDirectedEdge_NoMirror(t *testing.T) {
	g, err := core.NewGraph(3, core.WithWeighted())
	require.NoError(t, err)

	ok, err := g.AddDirectedEdge(0, 2, 9)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(2, 0))
	assert.Equal(t, 1, g.EdgeCount())

	// Duplicate directed insert is a no-op too.
	ok, err = g.AddDirectedEdge(0, 2, 9)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestDirectedGraph_NoSymmetry verifies directed AddEdge semantics.
func TestDirectedGraph_NoSymmetry(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(), core.WithWeighted())
	require.NoError(t, err)

	ok, err := g.AddEdge(0, 1, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))

	// The reverse direction is a distinct edge.
	ok, err = g.AddEdge(1, 0, 6)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, g.EdgeCount())

	// Removing one direction leaves the other intact.
	ok, err = g.RemoveEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestHasEdge_Bounds verifies that membership queries never error: an
// out-of-range index simply reports false.
func TestHasEdge_Bounds(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 0)

	assert.False(t, g.HasEdge(-1, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 0)) // u == v is permitted for queries
	assert.True(t, g.HasEdge(0, 1))
}

// TestNeighbors_SortedAndCopied verifies ordering and aliasing guarantees.
func TestNeighbors_SortedAndCopied(t *testing.T) {
	g, err := core.NewGraph(5, core.WithWeighted())
	require.NoError(t, err)
	// Insert out of order; the slice must come back sorted by vertex index.
	_, _ = g.AddEdge(2, 4, 1)
	_, _ = g.AddEdge(2, 0, 2)
	_, _ = g.AddEdge(2, 3, 3)

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 0, Weight: 2}, {To: 3, Weight: 3}, {To: 4, Weight: 1}}, nbs)

	// Mutating the returned slice must not corrupt the graph.
	nbs[0] = core.Neighbor{To: 99, Weight: 99}
	again, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, core.Neighbor{To: 0, Weight: 2}, again[0])

	// Out-of-range lookup errors.
	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	deg, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
}

// TestSymmetryProperty checks that after any sequence of
// AddEdge/RemoveEdge calls on an undirected graph, HasEdge(u,v) equals
// HasEdge(v,u) for every pair.
func TestSymmetryProperty(t *testing.T) {
	g, err := core.NewGraph(6, core.WithWeighted())
	require.NoError(t, err)

	type op struct {
		remove bool
		u, v   int
	}
	ops := []op{
		{false, 0, 1}, {false, 1, 2}, {false, 2, 3}, {false, 3, 0},
		{true, 1, 2}, {false, 4, 5}, {true, 0, 3}, {false, 2, 5},
		{true, 5, 4}, {false, 0, 1}, // duplicate add
	}
	for _, o := range ops {
		if o.remove {
			_, _ = g.RemoveEdge(o.u, o.v)
		} else {
			_, _ = g.AddEdge(o.u, o.v, int64(o.u+o.v))
		}
		for u := 0; u < g.VertexCount(); u++ {
			for v := u + 1; v < g.VertexCount(); v++ {
				assert.Equal(t, g.HasEdge(u, v), g.HasEdge(v, u),
					"symmetry violated for (%d,%d)", u, v)
			}
		}
	}
}

// TestSortedEdges verifies de-duplication and both weight orderings.
func TestSortedEdges(t *testing.T) {
	g, err := core.NewGraph(4, core.WithWeighted())
	require.NoError(t, err)
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(3, 2, 5)

	asc := g.SortedEdges(core.Ascending)
	assert.Equal(t, []core.Edge{
		{From: 1, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 5},
	}, asc)

	desc := g.SortedEdges(core.Descending)
	assert.Equal(t, []core.Edge{
		{From: 2, To: 3, Weight: 5},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 1},
	}, desc)
}

// TestSortedEdges_Directed verifies that a directed graph lists every
// stored record as its own edge, tie-breaking on (From, To).
func TestSortedEdges_Directed(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(), core.WithWeighted())
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 0, 2)
	_, _ = g.AddEdge(2, 0, 1)

	asc := g.SortedEdges(core.Ascending)
	assert.Equal(t, []core.Edge{
		{From: 2, To: 0, Weight: 1},
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 0, Weight: 2},
	}, asc)
}

// TestSortedEdges_AsymmetricRecord covers a one-way record on an undirected
// graph: it must not be lost by mirror de-duplication.
func TestSortedEdges_AsymmetricRecord(t *testing.T) {
	g, err := core.NewGraph(6, core.WithWeighted())
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddDirectedEdge(5, 2, 4) // larger index → smaller, no mirror

	asc := g.SortedEdges(core.Ascending)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 5, To: 2, Weight: 4},
	}, asc)
}
