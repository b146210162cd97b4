// File: representations.go
// Role: Edge-list, adjacency-list and adjacency-matrix exports.
//
// All exports read the stored From→To orientation as-is: an edge is
// "outgoing" from slot i exactly when node i is its From endpoint. Under
// the bidirectional-pair convention both directions therefore appear.
//
// Sizing: the slot/axis count is len(names) when names are set, else
// max(node value)+1. Every node value must index that range; a value
// outside it surfaces as ErrValueOutOfRange.
package core

import "fmt"

// EdgeTriple is one edge-list entry: (Weight, From, To) by node value.
type EdgeTriple struct {
	Weight int64
	From   int
	To     int
}

// NamedEdge is one edge-list entry with endpoint display names.
type NamedEdge struct {
	Weight int64
	From   string
	To     string
}

// Neighbor is one adjacency-list entry: the destination node value and
// the connecting edge's weight.
type Neighbor struct {
	To     int
	Weight int64
}

// NamedNeighbor is one adjacency-list entry with a named destination.
type NamedNeighbor struct {
	To     string
	Weight int64
}

// EdgeList returns one (weight, from, to) triple per stored edge, in
// insertion order. Directional duplicates are included as stored.
// Complexity: O(E).
func (g *Graph) EdgeList() []EdgeTriple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeTriple, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, EdgeTriple{Weight: e.Weight, From: e.From.Value, To: e.To.Value})
	}

	return out
}

// EdgeListNamed returns the edge list with node values replaced by their
// display names. Returns ErrMissingNames when SetNodeNames has not been
// called, ErrValueOutOfRange when an endpoint value cannot index the
// name table.
// Complexity: O(E).
func (g *Graph) EdgeListNamed() ([]NamedEdge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.names) == 0 {
		return nil, ErrMissingNames
	}

	out := make([]NamedEdge, 0, len(g.edges))
	for _, e := range g.edges {
		from, err := g.nameOfLocked(e.From.Value)
		if err != nil {
			return nil, err
		}
		to, err := g.nameOfLocked(e.To.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedEdge{Weight: e.Weight, From: from, To: to})
	}

	return out, nil
}

// AdjacencyList returns an index-aligned sequence where slot i holds the
// (neighbor, weight) pairs of node i's outgoing edges, in insertion
// order. A slot with no outgoing edges is nil, distinguishing "nothing
// outgoing" from an empty-but-present list.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() ([][]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	size, err := g.slotCountLocked()
	if err != nil {
		return nil, err
	}

	list := make([][]Neighbor, size)
	for _, e := range g.edges {
		from := e.From.Value
		list[from] = append(list[from], Neighbor{To: e.To.Value, Weight: e.Weight})
	}

	return list, nil
}

// AdjacencyListNamed returns the adjacency list with destination values
// replaced by display names. Returns ErrMissingNames when names are
// unset.
func (g *Graph) AdjacencyListNamed() ([][]NamedNeighbor, error) {
	g.mu.RLock()
	if len(g.names) == 0 {
		g.mu.RUnlock()

		return nil, ErrMissingNames
	}
	g.mu.RUnlock()

	plain, err := g.AdjacencyList()
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	named := make([][]NamedNeighbor, len(plain))
	for i, neighbors := range plain {
		if neighbors == nil {
			continue // keep nil marker for isolated slots
		}
		row := make([]NamedNeighbor, 0, len(neighbors))
		for _, nb := range neighbors {
			name, err := g.nameOfLocked(nb.To)
			if err != nil {
				return nil, err
			}
			row = append(row, NamedNeighbor{To: name, Weight: nb.Weight})
		}
		named[i] = row
	}

	return named, nil
}

// AdjacencyMatrix returns a square matrix where cell [i][j] holds the
// weight of the stored edge i→j, 0 when absent. When parallel edges
// exist between the same ordered pair, the last inserted wins.
// Complexity: O(V² + E).
func (g *Graph) AdjacencyMatrix() ([][]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	size, err := g.slotCountLocked()
	if err != nil {
		return nil, err
	}

	matrix := make([][]int64, size)
	for i := range matrix {
		matrix[i] = make([]int64, size)
	}
	for _, e := range g.edges {
		matrix[e.From.Value][e.To.Value] = e.Weight
	}

	return matrix, nil
}

// slotCountLocked computes the representation size: len(names) when
// names are set, else max(node value)+1; it also validates that every
// node value indexes that range. Caller must hold g.mu.
func (g *Graph) slotCountLocked() (int, error) {
	size := 0
	if len(g.names) > 0 {
		size = len(g.names)
	} else {
		for _, n := range g.nodes {
			if n.Value+1 > size {
				size = n.Value + 1
			}
		}
	}
	for _, n := range g.nodes {
		if n.Value < 0 || n.Value >= size {
			return 0, fmt.Errorf("core: node %d in range [0,%d): %w", n.Value, size, ErrValueOutOfRange)
		}
	}

	return size, nil
}

// nameOfLocked resolves a node value through the name table.
// Caller must hold g.mu for reading.
func (g *Graph) nameOfLocked(value int) (string, error) {
	if value < 0 || value >= len(g.names) {
		return "", fmt.Errorf("core: name for node %d: %w", value, ErrValueOutOfRange)
	}

	return g.names[value], nil
}
