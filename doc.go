// Package edgekit is an in-memory engine for building, exploring and
// analyzing weighted graphs – from the core node/edge primitives to
// traversal, shortest paths and structural statistics.
//
// What edgekit provides:
//
//	• Core primitives: insert nodes & edges, attach display names, export
//	  edge-list, adjacency-list and adjacency-matrix representations
//	• Traversals: DFS, BFS – with hooks, depth limits and named variants
//	• Shortest paths: Dijkstra with deterministic tie-breaking
//	• Analysis: connectivity, connected components, cycle detection,
//	  density and aggregate statistics
//
// Everything is organized under four subpackages:
//
//	core/     – Graph, Node, Edge types, construction and representations
//	traverse/ – depth-first and breadth-first search
//	dijkstra/ – single-source shortest paths and path reconstruction
//	analysis/ – connectivity, components, cycles, density, stats
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square of four nodes; inserting each side in both directions yields
//	the bidirectional-pair convention all analysis routines account for.
//
// The engine is insert-only: nodes and edges are never removed, and every
// algorithm reads the topology in place without mutating it. Traversal
// scratch state lives in per-call structures, so repeated calls are
// independent and a Graph instance stays reusable across operations.
//
//	go get github.com/mkravets/edgekit
package edgekit
