package core_test

import (
	"fmt"

	"github.com/mkravets/edgekit/core"
)

// ExampleGraph builds a small weighted graph, names its nodes, and
// prints the edge list in both numeric and named form.
func ExampleGraph() {
	g := core.NewGraph()
	g.InsertEdge(51, 0, 1)
	g.InsertEdge(51, 1, 0)
	g.SetNodeNames("Mountain View", "San Francisco")

	for _, e := range g.EdgeList() {
		fmt.Printf("%d -> %d (weight %d)\n", e.From, e.To, e.Weight)
	}

	named, _ := g.EdgeListNamed()
	for _, e := range named {
		fmt.Printf("%s -> %s (weight %d)\n", e.From, e.To, e.Weight)
	}

	// Output:
	// 0 -> 1 (weight 51)
	// 1 -> 0 (weight 51)
	// Mountain View -> San Francisco (weight 51)
	// San Francisco -> Mountain View (weight 51)
}

// ExampleGraph_AdjacencyMatrix shows the dense export of a square
// graph whose sides carry weights 1..4, each inserted in both
// directions.
func ExampleGraph_AdjacencyMatrix() {
	g := core.NewGraph()
	for _, e := range [][3]int{
		{1, 0, 1}, {1, 1, 0},
		{2, 1, 2}, {2, 2, 1},
		{3, 2, 3}, {3, 3, 2},
		{4, 3, 0}, {4, 0, 3},
	} {
		g.InsertEdge(int64(e[0]), e[1], e[2])
	}

	matrix, _ := g.AdjacencyMatrix()
	for _, row := range matrix {
		fmt.Println(row)
	}

	// Output:
	// [0 1 0 4]
	// [1 0 2 0]
	// [0 2 0 3]
	// [4 0 3 0]
}

// ExampleGraph_String prints the compact graph summary.
func ExampleGraph_String() {
	g := core.NewGraph()
	g.InsertEdge(7, 0, 1)
	g.InsertNode(2)

	fmt.Println(g)

	// Output:
	// Graph(nodes=3, edges=1)
}
