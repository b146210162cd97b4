// File: types.go
// Role: Node, Edge, Graph declarations, sentinel errors, options, constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrMissingNames indicates a name-dependent operation was invoked
	// before SetNodeNames.
	ErrMissingNames = errors.New("core: node names not set")

	// ErrValueOutOfRange indicates a node value that cannot index the
	// name table or the slot range of a representation export.
	ErrValueOutOfRange = errors.New("core: node value out of range")

	// ErrEdgeEndpointMismatch indicates OtherEnd was asked about a node
	// that is not one of the edge's two endpoints.
	ErrEdgeEndpointMismatch = errors.New("core: node is not an endpoint of this edge")
)

// Node represents a vertex in the graph.
//
// Value uniquely identifies the Node within its Graph; equality is by
// Value alone. The incident list holds every Edge that references this
// Node as an endpoint, in insertion order.
type Node struct {
	// Value is the unique identifier for this Node. Representation
	// exports expect values to follow the dense 0-based convention.
	Value int

	// incident edges, in insertion order. A self-loop appears twice.
	incident []*Edge
}

// String returns a compact representation, e.g. "Node(4)".
func (n *Node) String() string {
	return fmt.Sprintf("Node(%d)", n.Value)
}

// Edge represents a weighted connection between two nodes.
//
// An Edge is constructed with a From→To orientation but, unless the
// Graph was built with WithDirected(true), every algorithm treats it as
// crossable in both directions. Edges are immutable once inserted.
type Edge struct {
	// Weight is the cost or distance carried by this edge.
	Weight int64

	// From is the source endpoint.
	From *Node

	// To is the destination endpoint.
	To *Node
}

// OtherEnd resolves the endpoint of e opposite to n.
// Endpoints compare by Value, matching Node equality. For a self-loop
// either endpoint resolves to the node itself.
// Returns ErrEdgeEndpointMismatch when n is not an endpoint of e.
func (e *Edge) OtherEnd(n *Node) (*Node, error) {
	if n == nil {
		return nil, ErrEdgeEndpointMismatch
	}
	switch n.Value {
	case e.From.Value:
		return e.To, nil
	case e.To.Value:
		return e.From, nil
	}

	return nil, fmt.Errorf("core: node %d: %w", n.Value, ErrEdgeEndpointMismatch)
}

// String returns a compact representation, e.g. "Edge(2→3, weight=51)".
func (e *Edge) String() string {
	return fmt.Sprintf("Edge(%d→%d, weight=%d)", e.From.Value, e.To.Value, e.Weight)
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets whether the stored From→To orientation of edges is
// binding (true) or ignored by algorithms (false, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// Nodes and edges are kept in insertion order; an index map provides
// O(1) value→Node lookup. The mutex guards mutation and read snapshots,
// but algorithm sequences (traversal, analysis) assume exclusive access
// per Graph instance – the engine defines no cross-operation atomicity.
type Graph struct {
	mu sync.RWMutex

	// directed makes the stored edge orientation binding for algorithms.
	directed bool

	// Storage, insertion-ordered.
	nodes []*Node
	edges []*Edge

	// names is the optional display-name table, index-aligned to values.
	names []string

	// index maps node value → Node.
	index map[int]*Node
}

// NewGraph creates an empty Graph. By default the graph is undirected;
// pass WithDirected(true) to make edge orientation binding.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
