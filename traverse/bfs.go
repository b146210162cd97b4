// File: bfs.go
// Role: Breadth-first search and its named variant.
package traverse

import (
	"fmt"

	"github.com/mkravets/edgekit/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// bfsWalker encapsulates the mutable state of a single BFS run.
type bfsWalker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	// seen tracks enqueued nodes so each is enqueued at most once,
	// independent of when it is dequeued and visited.
	seen map[int]bool
	res  *Result
}

// BFS performs breadth-first (level-order) search on g starting at
// start. Neighbors are enqueued in incident-edge insertion order and
// each node is enqueued at most once; dequeue order is the visit order.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, context errors on cancellation,
// or any error returned by an OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
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
	w := &bfsWalker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		seen:  make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed the queue with the start node (no parent entry).
	w.seen[startNode.Value] = true
	w.res.Depth[startNode.Value] = 0
	w.queue = append(w.queue, queueItem{node: startNode, depth: 0})

	return w.res, w.loop()
}

// BFSNamed runs BFS and maps the visit order through the graph's name
// table. Returns core.ErrMissingNames when names are unset and
// propagates any BFS error.
func BFSNamed(g *core.Graph, start int, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(g.NodeNames()) == 0 {
		return nil, core.ErrMissingNames
	}

	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return mapNames(g, res.Order)
}

// loop processes the queue until empty, error, or cancellation.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node.Value)
		if err := w.opts.OnVisit(item.node.Value, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit at %d: %w", item.node.Value, err)
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors walks the dequeued node's incident edges in insertion
// order, applying filtering and the depth limit, and enqueues each
// unseen endpoint.
func (w *bfsWalker) enqueueNeighbors(item queueItem) error {
	incident, err := w.graph.IncidentEdges(item.node.Value)
	if err != nil {
		return err
	}

	nextDepth := item.depth + 1
	for _, e := range incident {
		other, ok, err := otherAcross(w.graph, e, item.node)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if !w.opts.FilterNeighbor(item.node.Value, other.Value) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.seen[other.Value] {
			w.seen[other.Value] = true
			w.res.Depth[other.Value] = nextDepth
			w.res.Parent[other.Value] = item.node.Value
			w.queue = append(w.queue, queueItem{node: other, depth: nextDepth})
		}
	}

	return nil
}
