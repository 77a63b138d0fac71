package bfs_test

import (
	"testing"

	"github.com/arborlib/arbor/bfs"
	"github.com/arborlib/arbor/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N + 1)
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D
// (~2^D-1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 - 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1
	g, _ := core.NewGraph(nodeCount + 1)
	// connect parent to children, 1-indexed heap layout
	for i := 1; i <= (nodeCount-1)/2; i++ {
		_, _ = g.AddEdge(i, 2*i, 1)
		_, _ = g.AddEdge(i, 2*i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1)
	}
}
