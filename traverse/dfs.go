// File: dfs.go
// Role: Depth-first search and its named variant.
package traverse

import (
	"fmt"

	"github.com/mkravets/edgekit/core"
)

// dfsWalker encapsulates the mutable state of a single DFS run.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	visited map[int]bool
	res     *Result
}

// DFS performs depth-first search on g starting at start, applying any
// number of functional Options. Incident edges are explored in
// insertion order, so for a fixed graph the visit order is fixed.
// Recursion depth is bounded by the longest simple path from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, context errors on cancellation,
// or any error returned by an OnVisit hook.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	startNode, ok := g.FindNode(start)
	if !ok {
		return nil, fmt.Errorf("traverse: start %d: %w", start, ErrStartNotFound)
	}

	n := g.NodeCount()
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	return w.res, w.traverse(startNode, 0)
}

// DFSNamed runs DFS and maps the visit order through the graph's name
// table. Returns core.ErrMissingNames when names are unset and
// propagates any DFS error.
func DFSNamed(g *core.Graph, start int, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(g.NodeNames()) == 0 {
		return nil, core.ErrMissingNames
	}

	res, err := DFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return mapNames(g, res.Order)
}

// traverse visits node n at the given depth and recurses into unvisited
// endpoints of its incident edges, in insertion order.
func (w *dfsWalker) traverse(n *core.Node, depth int) error {
	// Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// Mark and record in visitation (pre-)order.
	w.visited[n.Value] = true
	w.res.Depth[n.Value] = depth
	w.res.Order = append(w.res.Order, n.Value)

	if err := w.opts.OnVisit(n.Value, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit at %d: %w", n.Value, err)
	}

	incident, err := w.graph.IncidentEdges(n.Value)
	if err != nil {
		return err
	}

	for _, e := range incident {
		other, ok, err := otherAcross(w.graph, e, n)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if !w.opts.FilterNeighbor(n.Value, other.Value) {
			continue
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		if !w.visited[other.Value] {
			w.res.Parent[other.Value] = n.Value
			if err := w.traverse(other, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
