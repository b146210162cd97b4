// File: analysis.go
// Role: Connectivity and connected-components queries.
package analysis

import "github.com/mkravets/edgekit/core"

// IsConnected reports whether every node is reachable from every other.
// The empty graph is connected by convention. Otherwise a single sweep
// from the first inserted node must cover the whole node set.
// For directed graphs this evaluates weak connectivity.
// Complexity: O(V + E).
func IsConnected(g *core.Graph) bool {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return true
	}

	visited := make(map[int]bool, len(nodes))

	return len(component(g, nodes[0], visited)) == len(nodes)
}

// Components returns the connected components of g, one group per
// maximal set of mutually reachable nodes. Groups appear in the
// insertion order of their first node; within a group, nodes appear in
// depth-first visit order.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]int {
	nodes := g.Nodes()
	visited := make(map[int]bool, len(nodes))

	var groups [][]int
	for _, n := range nodes {
		if !visited[n.Value] {
			groups = append(groups, component(g, n, visited))
		}
	}

	return groups
}

// component collects the component containing start with an explicit
// stack, marking every reached node in visited. Incident edges are
// pushed in reverse so the pop order matches recursive depth-first
// pre-order. Orientation is ignored.
func component(g *core.Graph, start *core.Node, visited map[int]bool) []int {
	var order []int
	stack := []*core.Node{start}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n.Value] {
			continue
		}
		visited[n.Value] = true
		order = append(order, n.Value)

		incident, err := g.IncidentEdges(n.Value)
		if err != nil {
			continue // node vanished mid-walk; engine is insert-only, so unreachable
		}
		for i := len(incident) - 1; i >= 0; i-- {
			other, err := incident[i].OtherEnd(n)
			if err != nil {
				continue
			}
			if !visited[other.Value] {
				stack = append(stack, other)
			}
		}
	}

	return order
}
