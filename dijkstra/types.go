// File: types.go
// Role: Options, sentinel errors and result types for shortest paths.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/mkravets/edgekit/core"
)

// Unreachable is the distance reported for nodes with no route from the
// source.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by the shortest-path implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that a requested endpoint value does
	// not exist in the graph.
	ErrSourceNotFound = core.ErrNodeNotFound

	// ErrNegativeWeight indicates that a negative edge weight was
	// detected; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that no connecting route exists between the
	// requested endpoints.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the algorithm.
//
// MaxDistance – optional cap on distances to explore; nodes whose best
// distance exceeds the cap are left unsettled. Must be ≥ 0.
// Default is math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the algorithm.
type Option func(*Options)

// DefaultOptions returns Options initialized with sensible defaults:
// no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithMaxDistance sets a maximum distance threshold. Nodes whose
// shortest distance would exceed this value are not explored.
// A negative value is invalid and surfaces as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)

			return
		}
		o.MaxDistance = max
	}
}

// Result holds the outcome of a single-source run: for every node in
// the graph, its best-known distance from Source and its predecessor on
// that route. A node absent from Prev has no predecessor (the source
// itself, and unreachable nodes). Unreachable nodes report distance
// Unreachable.
type Result struct {
	Source int
	Dist   map[int]int64
	Prev   map[int]int
}

// Path is a concrete shortest route: the node values from source to
// destination inclusive, and the total distance along them.
type Path struct {
	Nodes    []int
	Distance int64
}

// PathTo reconstructs the shortest path from the run's source to dest by
// walking predecessor links backward and reversing.
// Returns core.ErrNodeNotFound if dest was not part of the run and
// ErrNoPath if dest is unreachable. A dest equal to the source yields a
// single-node path with distance 0.
func (r *Result) PathTo(dest int) (*Path, error) {
	dist, ok := r.Dist[dest]
	if !ok {
		return nil, fmt.Errorf("dijkstra: destination %d: %w", dest, core.ErrNodeNotFound)
	}
	if dist == Unreachable {
		return nil, fmt.Errorf("dijkstra: %d→%d: %w", r.Source, dest, ErrNoPath)
	}

	// build reversed node sequence via predecessor links
	nodes := []int{dest}
	for cur := dest; cur != r.Source; {
		prev, ok := r.Prev[cur]
		if !ok {
			// Predecessor chain broke before reaching the source;
			// the distance map says dest is reachable, so this is an
			// internal inconsistency surfaced as no-path.
			return nil, fmt.Errorf("dijkstra: %d→%d: %w", r.Source, dest, ErrNoPath)
		}
		nodes = append(nodes, prev)
		cur = prev
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return &Path{Nodes: nodes, Distance: dist}, nil
}
