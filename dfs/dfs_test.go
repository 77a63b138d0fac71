package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlib/arbor/core"
	"github.com/arborlib/arbor/dfs"
)

// TestDFS_Validation verifies sentinels for bad input.
func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, err = dfs.DFS(g, 3)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)
	_, err = dfs.DFS(g, -1)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)
}

// TestDFS_PreorderDeterminism checks that the smallest-index neighbor is
// explored first and parents follow the discovery tree.
func TestDFS_PreorderDeterminism(t *testing.T) {
	//        0
	//       / \
	//      1   2
	//      |   |
	//      3---4
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(2, 4, 1)
	_, _ = g.AddEdge(3, 4, 1)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4, 2}, res.Order)
	assert.Equal(t, dfs.NoParent, res.Parent[0])
	assert.Equal(t, 0, res.Parent[1])
	assert.Equal(t, 1, res.Parent[3])
	assert.Equal(t, 3, res.Parent[4])
	assert.Equal(t, 4, res.Parent[2])
}

// TestReachable covers a two-component graph.
func TestReachable(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(3, 4, 1)

	seen, err := dfs.Reachable(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false, false}, seen)

	seen, err = dfs.Reachable(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, true, true}, seen)
}

// TestConnected covers the vacuous, connected, isolated-vertex, and
// disconnected cases.
func TestConnected(t *testing.T) {
	_, err := dfs.Connected(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	// Fewer than two vertices: vacuously connected.
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	ok, err := dfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	g, err = core.NewGraph(1)
	require.NoError(t, err)
	ok, err = dfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	// A path on 4 vertices is connected.
	g, err = core.NewGraph(4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}
	ok, err = dfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	// Removing a bridge disconnects it; an isolated vertex with no
	// remaining adjacency records must be counted as missing.
	_, _ = g.RemoveEdge(2, 3)
	ok, err = dfs.Connected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestDFS_OnVisitAbort verifies hook error propagation.
func TestDFS_OnVisitAbort(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, 0, dfs.WithOnVisit(func(v int) error {
		if v == 1 {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}
