// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, single-pair and all-targets agreement, tie-breaking and the
// sentence scenarios.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
)

const sample = "To explore strange new worlds, To seek out new life and new civilizations"

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)

	_, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority over nil graph")

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("a"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("x"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithTarget("x"))
	assert.ErrorIs(t, err, dijkstra.ErrTargetNotFound)
}

// ------------------------------------------------------------------------
// 2. Sentence scenarios
// ------------------------------------------------------------------------

func TestDijkstra_SinglePair(t *testing.T) {
	g := builder.FromText(sample)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("new"), dijkstra.WithTarget("to"))
	require.NoError(t, err)
	path, length, err := res.PathTo("to")
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "worlds", "to"}, path)
	assert.EqualValues(t, 2, length)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := builder.FromText(sample)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("civilizations"), dijkstra.WithTarget("to"))
	require.NoError(t, err)
	assert.False(t, res.Reachable("to"))
	assert.Equal(t, dijkstra.Infinity, res.Dist["to"])
	_, _, err = res.PathTo("to")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestDijkstra_AllTargets(t *testing.T) {
	g := builder.FromText(sample)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("to"))
	require.NoError(t, err)

	// Two length-3 routes reach "new"; FIFO tie-breaking keeps the first one found.
	path, length, err := res.PathTo("new")
	require.NoError(t, err)
	assert.Equal(t, []string{"to", "explore", "strange", "new"}, path)
	assert.EqualValues(t, 3, length)

	path, length, err = res.PathTo("to")
	require.NoError(t, err)
	assert.Equal(t, []string{"to"}, path)
	assert.EqualValues(t, 0, length)

	for _, v := range g.Vertices() {
		assert.True(t, res.Reachable(v), "%s reachable from to", v)
	}
}

func TestDijkstra_SinglePairAgreesWithAllTargets(t *testing.T) {
	g := builder.FromText(sample + " and worlds seek strange life to new and and explore")

	for _, src := range g.Vertices() {
		all, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)
		for _, dst := range g.Vertices() {
			one, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithTarget(dst))
			require.NoError(t, err)
			require.Equal(t, all.Reachable(dst), one.Reachable(dst), "%s→%s", src, dst)
			if !all.Reachable(dst) {
				continue
			}
			p1, l1, err := all.PathTo(dst)
			require.NoError(t, err)
			p2, l2, err := one.PathTo(dst)
			require.NoError(t, err)
			assert.Equal(t, p1, p2, "%s→%s path", src, dst)
			assert.Equal(t, l1, l2, "%s→%s length", src, dst)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Weights and lazy deletion
// ------------------------------------------------------------------------

func TestDijkstra_PrefersLighterLongerRoute(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "d", 10)
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)
	_, _ = g.AddEdge("c", "d", 1)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)
	path, length, err := res.PathTo("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
	assert.EqualValues(t, 3, length)
}

func TestDijkstra_StaleEntriesIgnored(t *testing.T) {
	// d is pushed first at 5 (via a→d) and later improved to 3 (via b→c→d).
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "d", 5)
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)
	_, _ = g.AddEdge("c", "d", 1)
	_, _ = g.AddEdge("d", "e", 1)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Dist["d"])
	assert.EqualValues(t, 4, res.Dist["e"])
	assert.Equal(t, "c", res.Prev["d"])
}

func TestDijkstra_SelfLoopAndDanglingSource(t *testing.T) {
	g := builder.FromText("go go stop")
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("go"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Dist["go"])
	assert.EqualValues(t, 1, res.Dist["stop"])

	res, err = dijkstra.Dijkstra(g, dijkstra.Source("stop"))
	require.NoError(t, err)
	assert.False(t, res.Reachable("go"))
	_, hasPrev := res.Prev["go"]
	assert.False(t, hasPrev)
}

func TestDijkstra_Deterministic(t *testing.T) {
	g := builder.FromText("a b d a c d a e d")
	first, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
		require.NoError(t, err)
		assert.Equal(t, first.Prev, again.Prev)
	}
	// b, c, e all tie at 1; b is pushed first so it wins.
	assert.Equal(t, "b", first.Prev["d"])
}
