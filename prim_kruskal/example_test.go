// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/prim_kruskal"
)

// render prints total weight and edges in acceptance order.
func render(edges []core.Edge, total int64) {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.From + "-" + e.To
	}
	fmt.Printf("Total: %d, Edges: %s\n", total, strings.Join(parts, " "))
}

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	render(edges, total)
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon.
// Edges: A–B (1), B–C (2), C–D (3), D–E (5), A–E (12).
func ExamplePrim() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "E", 12)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)
	_, _ = g.AddEdge("D", "E", 5)

	edges, total, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	render(edges, total)
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleCompute runs the partial-tree builder on a 4-vertex envelope graph.
// Edges: A–B (4), A–C (1), C–B (2), B–D (3), C–D (5), D–A (4).
// Each accepted edge is oriented from the tree that extracted it.
func ExampleCompute() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 2)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)
	_, _ = g.AddEdge("D", "A", 4)

	opts := prim_kruskal.DefaultOptions()
	prim_kruskal.WithMethod(prim_kruskal.MethodPartialTree)(&opts)
	edges, total, err := prim_kruskal.Compute(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	render(edges, total)
	// Output: Total: 6, Edges: A-C D-B C-B
}

func ExampleKruskal_errDisconnected() {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := prim_kruskal.Kruskal(g)
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected
}
