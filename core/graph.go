// File: graph.go
// Role: Graph construction, lookup and query methods.
//
// Determinism:
//   - Nodes() and Edges() return insertion order.
//   - IncidentEdges(v) returns that node's edges in insertion order.
package core

import "fmt"

// InsertNode returns the Node with the given value, creating, appending
// and indexing a new one when absent. Idempotent: inserting an existing
// value returns the already-stored Node.
// Complexity: O(1) amortized.
func (g *Graph) InsertNode(value int) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.insertNodeLocked(value)
}

// insertNodeLocked is the lock-free core of InsertNode, shared with
// InsertEdge. Caller must hold g.mu for writing.
func (g *Graph) insertNodeLocked(value int) *Node {
	if n, ok := g.index[value]; ok {
		return n
	}
	n := &Node{Value: value}
	g.nodes = append(g.nodes, n)
	g.index[value] = n

	return n
}

// InsertEdge creates an Edge of the given weight between from and to,
// auto-creating either endpoint when missing. The edge is appended to
// both endpoints' incident lists and to the graph's edge sequence.
// A self-loop (from == to) is not rejected; it appears twice in the
// node's own incident list.
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(weight int64, from, to int) *Edge {
	g.mu.Lock()
	defer g.mu.Unlock()

	nFrom := g.insertNodeLocked(from)
	nTo := g.insertNodeLocked(to)

	e := &Edge{Weight: weight, From: nFrom, To: nTo}
	nFrom.incident = append(nFrom.incident, e)
	nTo.incident = append(nTo.incident, e)
	g.edges = append(g.edges, e)

	return e
}

// SetNodeNames replaces the display-name table wholesale. The Nth name
// corresponds to node value N. Length is not validated against the
// current node set; name-dependent operations surface a mismatch as
// ErrValueOutOfRange when they hit it.
func (g *Graph) SetNodeNames(names ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.names = append([]string(nil), names...)
}

// NodeNames returns a copy of the display-name table; empty until
// SetNodeNames has been called.
func (g *Graph) NodeNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.names...)
}

// FindNode returns the Node with the given value, or (nil, false) when
// no such node exists.
// Complexity: O(1).
func (g *Graph) FindNode(value int) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.index[value]

	return n, ok
}

// HasNode reports whether a node with the given value exists.
func (g *Graph) HasNode(value int) bool {
	_, ok := g.FindNode(value)

	return ok
}

// Nodes returns the graph's nodes in insertion order.
// The returned slice is a fresh copy; the *Node pointers are live and
// read-only by convention.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Node(nil), g.nodes...)
}

// Edges returns the graph's edges in insertion order, one entry per
// inserted Edge (directional duplicates included as stored).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Edge(nil), g.edges...)
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of stored edges. Under the
// bidirectional-pair convention this is twice the logical count.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether the stored edge orientation is binding.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// IncidentEdges returns the edges incident to the node with the given
// value, in insertion order. The slice is a fresh copy safe to retain.
// Returns ErrNodeNotFound when the value is absent.
// Complexity: O(deg).
func (g *Graph) IncidentEdges(value int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.index[value]
	if !ok {
		return nil, fmt.Errorf("core: node %d: %w", value, ErrNodeNotFound)
	}

	return append([]*Edge(nil), n.incident...), nil
}

// Degree returns the size of the node's incident-edge list. Both halves
// of a bidirectional pair count, so a node connected to one neighbor by
// the pair convention has degree 2.
// Returns ErrNodeNotFound when the value is absent.
func (g *Graph) Degree(value int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.index[value]
	if !ok {
		return 0, fmt.Errorf("core: node %d: %w", value, ErrNodeNotFound)
	}

	return len(n.incident), nil
}

// String returns a human-readable summary, e.g. "Graph(nodes=7, edges=16)".
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fmt.Sprintf("Graph(nodes=%d, edges=%d)", len(g.nodes), len(g.edges))
}
