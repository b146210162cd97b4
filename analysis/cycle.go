// File: cycle.go
// Role: Cycle detection for undirected and directed graphs.
package analysis

import "github.com/mkravets/edgekit/core"

// Visitation states for the directed three-color walk.
const (
	white = iota // unvisited
	gray         // on the current walk stack
	black        // fully explored
)

// HasCycle reports whether g contains a cycle, checking every component.
//
// Undirected graphs use a parent-tracking depth-first walk: reaching an
// already-visited neighbor that is not the immediate parent closes a
// cycle, while crossing back to the parent is the expected reverse of
// the edge just taken. Parallel stored edges between the same endpoints
// count as one logical connection (the bidirectional-pair convention),
// so the mirror half of a pair never closes a cycle by itself.
// A self-loop is a cycle.
// Directed graphs use three-color marking: a gray→gray edge is a back
// edge and closes a cycle.
// Complexity: O(V + E).
func HasCycle(g *core.Graph) bool {
	if g.Directed() {
		return hasDirectedCycle(g)
	}

	visited := make(map[int]bool, g.NodeCount())
	for _, n := range g.Nodes() {
		if !visited[n.Value] {
			if undirectedCycleFrom(g, n, -1, false, visited) {
				return true
			}
		}
	}

	return false
}

// undirectedCycleFrom walks the component of n. parent is the value of
// the node the walk arrived from (hasParent false at a component root).
// Crossings from n are deduplicated per neighbor value, collapsing the
// stored halves of a bidirectional pair into one logical connection.
func undirectedCycleFrom(g *core.Graph, n *core.Node, parent int, hasParent bool, visited map[int]bool) bool {
	visited[n.Value] = true

	incident, err := g.IncidentEdges(n.Value)
	if err != nil {
		return false
	}

	crossed := make(map[int]bool, len(incident))
	for _, e := range incident {
		other, err := e.OtherEnd(n)
		if err != nil {
			continue
		}
		if other.Value == n.Value {
			return true // self-loop
		}
		if crossed[other.Value] {
			continue // second half of a stored pair, same logical connection
		}
		crossed[other.Value] = true

		if hasParent && other.Value == parent {
			continue // reverse of the edge just taken
		}
		if visited[other.Value] {
			return true // back edge to an ancestor or an explored branch
		}
		if undirectedCycleFrom(g, other, n.Value, true, visited) {
			return true
		}
	}

	return false
}

// hasDirectedCycle runs three-color depth-first walks from every
// unvisited node, honoring the stored edge orientation.
func hasDirectedCycle(g *core.Graph) bool {
	state := make(map[int]int, g.NodeCount())
	for _, n := range g.Nodes() {
		if state[n.Value] == white {
			if directedCycleFrom(g, n, state) {
				return true
			}
		}
	}

	return false
}

func directedCycleFrom(g *core.Graph, n *core.Node, state map[int]int) bool {
	state[n.Value] = gray

	incident, err := g.IncidentEdges(n.Value)
	if err != nil {
		return false
	}
	for _, e := range incident {
		if e.From.Value != n.Value {
			continue // only edges leaving n
		}
		switch state[e.To.Value] {
		case white:
			if directedCycleFrom(g, e.To, state) {
				return true
			}
		case gray:
			return true // back edge
		}
	}
	state[n.Value] = black

	return false
}
