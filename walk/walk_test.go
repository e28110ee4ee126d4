package walk_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/walk"
)

const sample = "To explore strange new worlds, To seek out new life and new civilizations"

func TestWalk_EmptyGraph(t *testing.T) {
	res, err := walk.Walk(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Edges)
	assert.Equal(t, walk.StopEmpty, res.Stop)
}

func TestWalk_Errors(t *testing.T) {
	_, err := walk.Walk(nil)
	assert.ErrorIs(t, err, walk.ErrNilGraph)

	_, err = walk.Walk(builder.FromText(sample), walk.WithStart("hello"))
	assert.ErrorIs(t, err, walk.ErrStartNotFound)
}

func TestWalk_ChainEndsAtDeadEnd(t *testing.T) {
	g := builder.FromText("alpha beta gamma")
	res, err := walk.Walk(g, walk.WithStart("alpha"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, res.Nodes)
	assert.Equal(t, walk.StopDeadEnd, res.Stop)
	require.Len(t, res.Edges, 2)
	assert.Equal(t, walk.Step{From: "alpha", To: "beta", Weight: 1}, res.Edges[0])
}

func TestWalk_CycleStopsBeforeRepeatedEdge(t *testing.T) {
	g := builder.FromText("ping pong ping")
	res, err := walk.Walk(g, walk.WithStart("ping"))
	require.NoError(t, err)
	// ping→pong, pong→ping, then ping→pong again is refused.
	assert.Equal(t, []string{"ping", "pong", "ping"}, res.Nodes)
	assert.Equal(t, walk.StopRepeatedEdge, res.Stop)
}

func TestWalk_SelfLoop(t *testing.T) {
	g := builder.FromText("go go")
	res, err := walk.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "go"}, res.Nodes)
	assert.Equal(t, walk.StopRepeatedEdge, res.Stop)
}

func TestWalk_Invariants(t *testing.T) {
	g := builder.FromText(sample)
	for seed := int64(1); seed <= 200; seed++ {
		res, err := walk.Walk(g, walk.WithSeed(seed))
		require.NoError(t, err)
		require.NotEmpty(t, res.Nodes)
		require.Len(t, res.Edges, len(res.Nodes)-1)

		seen := map[[2]string]bool{}
		for i, e := range res.Edges {
			require.Equal(t, res.Nodes[i], e.From)
			require.Equal(t, res.Nodes[i+1], e.To)
			require.True(t, g.HasEdge(e.From, e.To), "seed %d: %s→%s", seed, e.From, e.To)
			key := [2]string{e.From, e.To}
			require.False(t, seen[key], "seed %d repeats %v", seed, key)
			seen[key] = true
		}

		last := res.Nodes[len(res.Nodes)-1]
		switch res.Stop {
		case walk.StopDeadEnd:
			require.True(t, g.IsDangling(last))
		case walk.StopRepeatedEdge:
			require.False(t, g.IsDangling(last))
		default:
			t.Fatalf("seed %d: unexpected stop %v", seed, res.Stop)
		}
	}
}

func TestWalk_Deterministic(t *testing.T) {
	g := builder.FromText(sample)
	a, err := walk.Walk(g, walk.WithSeed(42))
	require.NoError(t, err)
	b, err := walk.Walk(g, walk.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Default stream equals the explicit zero seed.
	c, _ := walk.Walk(g)
	d, _ := walk.Walk(g, walk.WithSeed(0))
	assert.Equal(t, c, d)
}

func TestWalk_FirstStepFollowsWeights(t *testing.T) {
	// hub→x has weight 3, hub→y weight 1.
	g := builder.FromText("hub x hub x hub x hub y")
	rng := rand.New(rand.NewSource(7))

	const trials = 4000
	toX := 0
	for i := 0; i < trials; i++ {
		res, err := walk.Walk(g, walk.WithStart("hub"), walk.WithRand(rng))
		require.NoError(t, err)
		if res.Nodes[1] == "x" {
			toX++
		}
	}
	assert.InDelta(t, 0.75, float64(toX)/trials, 0.05)
}

func TestWalk_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := walk.Walk(builder.FromText("a b"), walk.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "random walk finished")
	assert.Contains(t, buf.String(), "stop=\"dead end\"")
}

func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "dead end", walk.StopDeadEnd.String())
	assert.Equal(t, "repeated edge", walk.StopRepeatedEdge.String())
	assert.Equal(t, "StopReason(9)", walk.StopReason(9).String())
}
