package traverse_test

import (
	"fmt"

	"github.com/mkravets/edgekit/core"
	"github.com/mkravets/edgekit/traverse"
)

// ExampleDFS explores a flight network depth-first from London and
// prints the visit order by city name.
func ExampleDFS() {
	g := buildCities()

	res, _ := traverse.DFS(g, 2)
	fmt.Println(res.Order)

	names, _ := traverse.DFSNamed(g, 2)
	fmt.Println(names)

	// Output:
	// [2 3 0 1 4 5]
	// [London Shanghai Mountain View San Francisco Berlin Sao Paolo]
}

// ExampleBFS explores the same network breadth-first, so every node is
// reached at its minimum hop count from the start.
func ExampleBFS() {
	g := buildCities()

	res, _ := traverse.BFS(g, 2)
	fmt.Println(res.Order)

	path, _ := res.PathTo(1)
	fmt.Println(path)

	// Output:
	// [2 3 4 5 0 1]
	// [2 3 1]
}

// ExampleWithMaxDepth limits how far a traversal may wander from its
// start node.
func ExampleWithMaxDepth() {
	g := core.NewGraph()
	g.InsertEdge(1, 0, 1)
	g.InsertEdge(1, 1, 0)
	g.InsertEdge(1, 1, 2)
	g.InsertEdge(1, 2, 1)

	res, _ := traverse.BFS(g, 0, traverse.WithMaxDepth(1))
	fmt.Println(res.Order)

	// Output:
	// [0 1]
}
