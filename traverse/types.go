// File: types.go
// Role: Options, sentinel errors and the Result type shared by DFS/BFS.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkravets/edgekit/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when the start value is absent.
	ErrStartNotFound = core.ErrNodeNotFound

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth limit) is recorded internally
// and surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is visited, with its value and its
	// depth from the start. A non-nil error aborts the traversal.
	OnVisit func(value, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each crossing curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no filtering, no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from the callback stops the traversal.
func WithOnVisit(fn func(value, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips crossings when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// buildOptions folds the supplied options over the defaults and surfaces
// any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// Result holds the outcome of a traversal:
//   - Order: node values in visit sequence (start first).
//   - Depth: map from node value to its distance (in edges) from the start.
//   - Parent: map from node value to its predecessor in the traversal tree;
//     the start has no entry.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the path from the start node to dest by following
// parent links backward. Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to %d", dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// otherAcross resolves the endpoint reached by crossing e from n, and
// whether the crossing is permitted. In a directed graph an edge may
// only be left through its From endpoint; undirected graphs cross
// either way.
func otherAcross(g *core.Graph, e *core.Edge, n *core.Node) (*core.Node, bool, error) {
	if g.Directed() && e.From.Value != n.Value {
		return nil, false, nil
	}
	other, err := e.OtherEnd(n)
	if err != nil {
		return nil, false, err
	}

	return other, true, nil
}

// mapNames translates a value sequence through the graph's name table.
// Returns core.ErrMissingNames when names are unset and
// core.ErrValueOutOfRange when a value cannot index the table.
func mapNames(g *core.Graph, values []int) ([]string, error) {
	names := g.NodeNames()
	if len(names) == 0 {
		return nil, core.ErrMissingNames
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v < 0 || v >= len(names) {
			return nil, fmt.Errorf("traverse: name for node %d: %w", v, core.ErrValueOutOfRange)
		}
		out = append(out, names[v])
	}

	return out, nil
}
