// File: stats.go
// Role: Density and the aggregate statistics snapshot.
package analysis

import "github.com/mkravets/edgekit/core"

// Summary is a read-only snapshot of the graph's descriptive statistics.
//
// Edges is the logical edge count: stored edges halved for undirected
// graphs (the bidirectional-pair convention), stored edges as-is for
// directed graphs. Degree fields are only meaningful when Nodes > 0.
type Summary struct {
	Nodes      int
	Edges      int
	Connected  bool
	Cyclic     bool
	Density    float64
	Components int
	MinDegree  int
	MaxDegree  int
	AvgDegree  float64
}

// Density returns the ratio of actual edges to the maximum possible for
// the node count: 0.0 for fewer than 2 nodes, otherwise
// (stored/2) / (n·(n-1)/2) for undirected graphs and
// stored / (n·(n-1)) for directed ones.
func Density(g *core.Graph) float64 {
	n := g.NodeCount()
	if n < 2 {
		return 0.0
	}

	if g.Directed() {
		return float64(g.EdgeCount()) / float64(n*(n-1))
	}

	actual := g.EdgeCount() / 2
	maxEdges := n * (n - 1) / 2

	return float64(actual) / float64(maxEdges)
}

// Stats aggregates node count, logical edge count, connectivity, cycle
// presence, density, component count and (when nodes exist)
// min/max/average degree into a single Summary.
// Complexity: O(V + E) per aggregated quantity.
func Stats(g *core.Graph) *Summary {
	s := &Summary{
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Connected:  IsConnected(g),
		Cyclic:     HasCycle(g),
		Density:    Density(g),
		Components: len(Components(g)),
	}
	if !g.Directed() {
		s.Edges = g.EdgeCount() / 2
	}

	if s.Nodes == 0 {
		return s
	}

	first := true
	total := 0
	for _, n := range g.Nodes() {
		deg, err := g.Degree(n.Value)
		if err != nil {
			continue // engine is insert-only; nodes cannot vanish mid-scan
		}
		if first || deg < s.MinDegree {
			s.MinDegree = deg
		}
		if first || deg > s.MaxDegree {
			s.MaxDegree = deg
		}
		total += deg
		first = false
	}
	s.AvgDegree = float64(total) / float64(s.Nodes)

	return s
}
