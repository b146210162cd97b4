package dijkstra_test

import (
	"testing"

	"github.com/mkravets/edgekit/core"
	"github.com/mkravets/edgekit/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pair inserts both directions of an undirected connection.
func pair(g *core.Graph, w int64, a, b int) {
	g.InsertEdge(w, a, b)
	g.InsertEdge(w, b, a)
}

// buildDiamond: 0-1(1), 0-2(10), 1-3(1), 2-3(1). Cheapest 0→3 route is
// over node 1 at cost 2; node 2 is best reached through 3 at cost 3.
func buildDiamond() *core.Graph {
	g := core.NewGraph()
	pair(g, 1, 0, 1)
	pair(g, 10, 0, 2)
	pair(g, 1, 1, 3)
	pair(g, 1, 2, 3)

	return g
}

func TestShortestPaths_Diamond(t *testing.T) {
	g := buildDiamond()

	res, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, int64(1), res.Dist[1])
	assert.Equal(t, int64(3), res.Dist[2]) // via 1 and 3, not the direct 10
	assert.Equal(t, int64(2), res.Dist[3])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path.Nodes)
	assert.Equal(t, int64(2), path.Distance)
}

func TestShortestPaths_SourceHasNoPrev(t *testing.T) {
	g := buildDiamond()

	res, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	_, ok := res.Prev[0]
	assert.False(t, ok)
}

func TestShortestPaths_Unreachable(t *testing.T) {
	g := core.NewGraph()
	pair(g, 1, 0, 1)
	g.InsertNode(5)

	res, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Unreachable, res.Dist[5])
	_, ok := res.Prev[5]
	assert.False(t, ok)

	_, err = res.PathTo(5)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPaths_SourceNotFound(t *testing.T) {
	g := buildDiamond()

	_, err := dijkstra.ShortestPaths(g, 42)
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g := buildDiamond()
	pair(g, -5, 1, 2)

	_, err := dijkstra.ShortestPaths(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPaths_MaxDistance(t *testing.T) {
	g := core.NewGraph()
	pair(g, 5, 0, 1)
	pair(g, 5, 1, 2)

	res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)

	assert.Equal(t, int64(5), res.Dist[1])
	assert.Equal(t, dijkstra.Unreachable, res.Dist[2]) // 10 exceeds the cap
}

func TestShortestPaths_BadMaxDistance(t *testing.T) {
	g := buildDiamond()

	_, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// Equal-cost routes settle toward the lower node value, so predecessor
// choice is stable across runs.
func TestShortestPaths_TieBreakDeterministic(t *testing.T) {
	g := core.NewGraph()
	pair(g, 1, 0, 1)
	pair(g, 1, 0, 2)
	pair(g, 1, 1, 3)
	pair(g, 1, 2, 3)

	for i := 0; i < 20; i++ {
		res, err := dijkstra.ShortestPaths(g, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Dist[3])
		assert.Equal(t, 1, res.Prev[3])
	}
}

func TestShortestPaths_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.InsertEdge(1, 0, 1)
	g.InsertEdge(1, 1, 2)

	res, err := dijkstra.ShortestPaths(g, 2)
	require.NoError(t, err)

	// Arcs point away from 2, so nothing else is reachable.
	assert.Equal(t, int64(0), res.Dist[2])
	assert.Equal(t, dijkstra.Unreachable, res.Dist[0])
	assert.Equal(t, dijkstra.Unreachable, res.Dist[1])
}

func TestShortestPath(t *testing.T) {
	g := buildDiamond()

	path, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, path.Nodes)
	assert.Equal(t, int64(3), path.Distance)
}

func TestShortestPath_SameEndpoints(t *testing.T) {
	g := buildDiamond()

	path, err := dijkstra.ShortestPath(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, path.Nodes)
	assert.Equal(t, int64(0), path.Distance)
}

func TestShortestPath_MissingEndpoints(t *testing.T) {
	g := buildDiamond()

	_, err := dijkstra.ShortestPath(g, 42, 0)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = dijkstra.ShortestPath(g, 0, 42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestShortestPath_NoRoute(t *testing.T) {
	g := core.NewGraph()
	pair(g, 1, 0, 1)
	pair(g, 1, 2, 3)

	_, err := dijkstra.ShortestPath(g, 0, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestResult_PathTo_UnknownDestination(t *testing.T) {
	g := buildDiamond()

	res, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	_, err = res.PathTo(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
