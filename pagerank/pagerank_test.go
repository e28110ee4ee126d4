package pagerank_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/pagerank"
)

const sample = "To explore strange new worlds, To seek out new life and new civilizations"

// naive recomputes PageRank literally from the definition, scanning every
// (u, v) pair per sweep, over the given node set.
func naive(g *core.Graph, nodes []string, d float64, iters int) map[string]float64 {
	N := float64(len(nodes))
	pr := make(map[string]float64, len(nodes))
	for _, v := range nodes {
		pr[v] = 1 / N
	}
	for it := 0; it < iters; it++ {
		dangling := 0.0
		for _, u := range nodes {
			if w, _ := g.OutWeight(u); w == 0 {
				dangling += pr[u]
			}
		}
		next := make(map[string]float64, len(nodes))
		for _, v := range nodes {
			sum := 0.0
			for _, u := range nodes {
				if w, ok := g.Weight(u, v); ok {
					out, _ := g.OutWeight(u)
					sum += pr[u] * float64(w) / float64(out)
				}
			}
			next[v] = (1-d)/N + d*(sum+dangling/N)
		}
		pr = next
	}
	return pr
}

func TestPageRank_MatchesDefinition(t *testing.T) {
	g := builder.FromText(sample + " new worlds new worlds")

	res, err := pagerank.PageRank(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, pagerank.DefaultIterations, res.Iterations)

	want := naive(g, g.Vertices(), pagerank.DefaultDamping, pagerank.DefaultIterations)
	require.Len(t, res.Scores, len(want))
	for id, w := range want {
		assert.InDelta(t, w, res.Score(id), 1e-12, id)
	}
}

func TestPageRank_WithOutgoingMatchesDefinition(t *testing.T) {
	g := builder.FromText(sample)

	res, err := pagerank.PageRank(context.Background(), g, pagerank.WithNodeSet(pagerank.WithOutgoing))
	require.NoError(t, err)

	var members []string
	for _, v := range g.Vertices() {
		if !g.IsDangling(v) {
			members = append(members, v)
		}
	}
	want := naive(g, members, pagerank.DefaultDamping, pagerank.DefaultIterations)
	for id, w := range want {
		assert.InDelta(t, w, res.Score(id), 1e-12, id)
	}
	assert.Zero(t, res.Score("civilizations"), "sinks are outside the node set")
	assert.Equal(t, pagerank.WithOutgoing, res.NodeSet)
}

func TestPageRank_NodeSetChangesNumbers(t *testing.T) {
	g := builder.FromText(sample)
	all, err := pagerank.Score(context.Background(), g, "new")
	require.NoError(t, err)
	out, err := pagerank.Score(context.Background(), g, "new", pagerank.WithNodeSet(pagerank.WithOutgoing))
	require.NoError(t, err)
	assert.NotEqual(t, all, out)
}

func TestPageRank_SumApproachesOne(t *testing.T) {
	g := builder.FromText(sample)
	res, err := pagerank.PageRank(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Sum(), 1e-9)
}

func TestPageRank_SymmetricCycle(t *testing.T) {
	g := builder.FromText("a b c a")
	res, err := pagerank.PageRank(context.Background(), g)
	require.NoError(t, err)
	for _, v := range []string{"a", "b", "c"} {
		assert.InDelta(t, 1.0/3, res.Score(v), 1e-12)
	}
}

func TestPageRank_WeightsMatter(t *testing.T) {
	// hub → heavy twice, hub → light once.
	g := builder.FromText("hub heavy hub heavy hub light hub")
	res, err := pagerank.PageRank(context.Background(), g)
	require.NoError(t, err)
	assert.Greater(t, res.Score("heavy"), res.Score("light"))
}

func TestPageRank_DeterministicAndAbsent(t *testing.T) {
	g := builder.FromText(sample)
	a, err := pagerank.Score(context.Background(), g, "new")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		b, err := pagerank.Score(context.Background(), g, "new")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}

	z, err := pagerank.Score(context.Background(), g, "hello")
	require.NoError(t, err)
	assert.Zero(t, z)
}

func TestPageRank_EmptyGraph(t *testing.T) {
	res, err := pagerank.PageRank(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Scores)
	assert.Zero(t, res.Iterations)
}

func TestPageRank_Errors(t *testing.T) {
	ctx := context.Background()
	g := builder.FromText(sample)

	_, err := pagerank.PageRank(ctx, nil)
	assert.ErrorIs(t, err, pagerank.ErrNilGraph)

	_, err = pagerank.PageRank(ctx, g, pagerank.WithDamping(1.5))
	assert.ErrorIs(t, err, pagerank.ErrOptionViolation)
	_, err = pagerank.PageRank(ctx, g, pagerank.WithIterations(0))
	assert.ErrorIs(t, err, pagerank.ErrOptionViolation)
	_, err = pagerank.PageRank(ctx, g, pagerank.WithNodeSet(pagerank.NodeSet(9)))
	assert.ErrorIs(t, err, pagerank.ErrOptionViolation)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = pagerank.PageRank(cancelled, g)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPageRank_CustomOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := builder.FromText(sample)

	res, err := pagerank.PageRank(context.Background(), g,
		pagerank.WithDamping(0.5), pagerank.WithIterations(3), pagerank.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Iterations)
	want := naive(g, g.Vertices(), 0.5, 3)
	assert.InDelta(t, want["new"], res.Score("new"), 1e-12)
	assert.Contains(t, buf.String(), "PageRank completed")
}

func TestPageRank_SpanUsesInjectedProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, err := pagerank.PageRank(context.Background(), builder.FromText(sample),
		pagerank.WithTracerProvider(tp), pagerank.WithIterations(5))
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "pagerank.PageRank", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("iterations", 5))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("dangling_count", 1))
}

func TestResult_Top(t *testing.T) {
	res := &pagerank.Result{Scores: map[string]float64{"b": 0.3, "a": 0.3, "c": 0.4}}
	top := res.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].ID)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, "a", top[1].ID, "ties broken by ID")
	assert.Len(t, res.Top(10), 3)
	assert.Empty(t, res.Top(0))
}

func TestNodeSetParse(t *testing.T) {
	for _, s := range []pagerank.NodeSet{pagerank.AllVertices, pagerank.WithOutgoing} {
		got, err := pagerank.ParseNodeSet(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := pagerank.ParseNodeSet("some")
	assert.ErrorIs(t, err, pagerank.ErrOptionViolation)
}
