// Package traverse implements depth-first and breadth-first search over
// a core.Graph, with optional hooks, depth limiting, neighbor filtering
// and cancellation.
//
// Both searches honor the incident-edge insertion order of the
// underlying graph: DFS recurses into the first unvisited endpoint of
// each incident edge in turn, BFS enqueues unseen endpoints in the same
// order. The start node is always listed first, and exactly the
// connected component containing the start is visited.
//
// Scratch state (visited/seen sets) is allocated per call, so repeated
// traversals over the same Graph are independent and never observe
// leftovers of a prior run.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter overhead.
//   - Memory: O(V) for the result maps and visited set
//     (DFS additionally recurses to the longest simple path).
//
// Errors:
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartNotFound     if the start value is absent (alias of core.ErrNodeNotFound).
//   - ErrOptionViolation   if an invalid Option was supplied.
//   - core.ErrMissingNames from the *Named variants before SetNodeNames.
//   - context.Canceled     if the configured context is done.
//   - any error returned by an OnVisit hook.
package traverse
