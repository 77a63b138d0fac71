package mst_test

import (
	"fmt"

	"github.com/arborlib/arbor/core"
	"github.com/arborlib/arbor/mst"
)

// ExampleKruskal spans the classic triangle: the two lightest edges win.
func ExampleKruskal() {
	g, _ := core.NewGraph(4, core.WithWeighted())
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(3, 2, 5)

	edges, total, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%d-%d(%d)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", total)
	// Output:
	// 1-3(1)
	// 1-2(3)
	// total: 4
}

// ExampleReverseDelete shows the deletion order: the heaviest edge of the
// triangle's cycle goes first, bridges survive.
func ExampleReverseDelete() {
	g, _ := core.NewGraph(4, core.WithWeighted())
	_, _ = g.AddEdge(1, 2, 3)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(3, 2, 5)

	_, total, err := mst.ReverseDelete(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("heaviest edge kept:", g.HasEdge(3, 2))
	fmt.Println("total:", total)
	// Output:
	// heaviest edge kept: false
	// total: 4
}
