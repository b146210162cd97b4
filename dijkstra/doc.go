// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph with non-negative edge weights.
//
// ShortestPaths processes nodes in order of increasing distance using a
// min-heap priority queue with the lazy-decrease-key strategy: improved
// candidates are pushed as duplicates and stale entries are skipped when
// popped. Ties on equal distance are broken by the lower node value, so
// results are deterministic even when several equal-cost routes exist.
//
// ShortestPath reconstructs the concrete route between two nodes by
// following predecessor links backward from the destination; the result
// is atomic – either a complete path with its total distance, or an
// error, never a partial route.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted from the heap at most once: V extractions.
//   - Each edge relaxation may push one new entry: up to E pushes.
//   - Space: O(V + E) for the distance/predecessor maps and the heap.
//
// Errors (sentinel):
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if an endpoint value is absent (alias of core.ErrNodeNotFound).
//   - ErrNegativeWeight  if any edge weight is negative (O(E) pre-scan, fail fast).
//   - ErrNoPath          if the destination is unreachable from the source.
//   - ErrBadMaxDistance  if WithMaxDistance was given a negative cap.
package dijkstra
