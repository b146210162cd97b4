// Package analysis provides structural queries over a core.Graph:
// connectivity, connected components, cycle detection, density and an
// aggregate statistics snapshot.
//
// Connectivity and components are evaluated over the connections a node
// participates in: for undirected graphs this is classic reachability,
// for directed graphs it is weak connectivity (orientation ignored).
// Cycle detection is orientation-aware: undirected graphs use a
// parent-tracking walk where any visited non-parent neighbor closes a
// cycle, directed graphs use three-color back-edge detection.
//
// Density and edge counts in Stats assume the bidirectional-pair
// insertion convention for undirected graphs: each logical connection
// is stored as two directional edges, so the logical edge count is the
// stored count halved.
//
// All walks allocate their visited state per call; no operation leaves
// residue that a later call could observe.
package analysis
