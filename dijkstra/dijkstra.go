// File: dijkstra.go
// Role: Single-source shortest paths and point-to-point reconstruction.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/mkravets/edgekit/core"
)

// ShortestPaths computes shortest distances from source to every node in
// the weighted graph g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. g must contain source (ErrSourceNotFound).
//  4. No edge in g may have negative weight (ErrNegativeWeight).
//
// The distance map covers all nodes; unreachable ones report Unreachable
// and carry no predecessor entry. Equal-distance candidates settle in
// ascending node-value order.
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	srcNode, ok := g.FindNode(source)
	if !ok {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, ErrSourceNotFound)
	}

	// Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From.Value, e.To.Value, e.Weight)
		}
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make(map[int]int64, len(nodes)),
			Prev:   make(map[int]int, len(nodes)),
		},
		visited: make(map[int]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}

	r.init(nodes, srcNode)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// ShortestPath computes the shortest route between from and to.
// Runs ShortestPaths from the source and reconstructs the path by
// walking predecessors backward. Fails with core.ErrNodeNotFound when
// either endpoint is absent and ErrNoPath when to is unreachable.
// from == to yields a single-node path with distance 0.
func ShortestPath(g *core.Graph, from, to int, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("dijkstra: destination %d: %w", to, ErrSourceNotFound)
	}

	res, err := ShortestPaths(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited map[int]bool // node value → distance finalized
	pq      nodePQ       // min-heap for lazy priority queue
}

// init seeds distances with Unreachable, zeroes the source, and pushes
// it onto the heap.
func (r *runner) init(nodes []*core.Node, src *core.Node) {
	for _, n := range nodes {
		r.res.Dist[n.Value] = Unreachable
	}
	r.res.Dist[src.Value] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: src, dist: 0})
}

// process repeatedly extracts the closest unsettled node and relaxes its
// incident edges. Stale heap entries (already settled) are skipped, and
// exploration stops once the minimum distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node

		if r.visited[u.Value] {
			continue // stale lazy-decrease-key entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u.Value] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and attempts to improve the
// distance of the opposite endpoint. In directed graphs only edges
// leaving u (From == u) are considered.
func (r *runner) relax(u *core.Node) error {
	incident, err := r.g.IncidentEdges(u.Value)
	if err != nil {
		return fmt.Errorf("dijkstra: incident edges of %d: %w", u.Value, err)
	}

	directed := r.g.Directed()
	for _, e := range incident {
		if directed && e.From.Value != u.Value {
			continue // stored orientation is binding
		}
		v, err := e.OtherEnd(u)
		if err != nil {
			return err
		}
		if r.visited[v.Value] {
			continue
		}

		newDist := r.res.Dist[u.Value] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, to avoid duplicate pushes on ties.
		if newDist >= r.res.Dist[v.Value] {
			continue
		}

		r.res.Dist[v.Value] = newDist
		r.res.Prev[v.Value] = u.Value
		heap.Push(&r.pq, &nodeItem{node: v, dist: newDist})
	}

	return nil
}

// nodeItem is one heap entry: a node and its candidate distance.
type nodeItem struct {
	node *core.Node
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, node value)
// ascending. The node-value component makes settlement order – and with
// it predecessor choice on equal-cost routes – deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node.Value < pq[j].node.Value
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
