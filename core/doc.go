// Package core defines the central Graph, Node, and Edge types and
// provides construction, lookup, and representation exports for
// weighted graphs.
//
// A Graph owns its Nodes and Edges exclusively: nodes are created
// implicitly on first reference, edges only via InsertEdge, and neither
// is ever removed (the engine is insert-only). Nodes keep their incident
// edges in insertion order, which is the ordering contract every
// traversal and analysis routine in this module relies on.
//
// Direction semantics:
//
// Each Edge stores a From→To orientation. By default a Graph is
// undirected: algorithms cross any incident edge in either direction,
// and a logically bidirectional connection is represented by inserting
// two edges (A→B and B→A) – the engine does not auto-symmetrize.
// Constructing the graph with WithDirected(true) makes the stored
// orientation binding: algorithms then only leave a node along edges
// whose From endpoint is that node.
//
// Representation exports (edge list, adjacency list, adjacency matrix)
// assume node values follow the dense 0-based integer convention, the
// same convention SetNodeNames uses to align display names with values.
//
// Errors:
//
//	ErrNodeNotFound         - requested node value has no corresponding Node.
//	ErrMissingNames         - a name-dependent operation invoked before SetNodeNames.
//	ErrValueOutOfRange      - a node value cannot index the name table or a representation slot.
//	ErrEdgeEndpointMismatch - OtherEnd asked about a node that is not an endpoint.
package core
