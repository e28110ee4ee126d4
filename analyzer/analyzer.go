package analyzer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/converters"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dfs"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/tokenize"
	"github.com/katalvlaran/wordgraph/walk"
)

// Analyzer owns one word graph and answers queries against it.
type Analyzer struct {
	mu      sync.RWMutex
	rngMu   sync.Mutex
	graph   *core.Graph
	id      uuid.UUID
	rng     *rand.Rand
	logger  *slog.Logger
	tp      trace.TracerProvider
	tracer  trace.Tracer
	metrics *instruments
	prOpts  []pagerank.Option
}

// New returns an Analyzer holding an empty graph.
func New(opts ...Option) *Analyzer {
	cfg := newConfig(opts...)

	return &Analyzer{
		graph:   core.NewGraph(),
		id:      uuid.New(),
		rng:     cfg.rng,
		logger:  cfg.logger,
		tp:      cfg.tracer,
		tracer:  cfg.tracer.Tracer(instrumentationName),
		metrics: newInstruments(cfg.meter.Meter(instrumentationName), cfg.logger),
		prOpts:  cfg.pagerank,
	}
}

// Load is New followed by (*Analyzer).Load.
func Load(text string, opts ...Option) *Analyzer {
	a := New(opts...)
	a.Load(text)

	return a
}

// Load builds a fresh graph from text and replaces the current one. The
// previous graph is discarded, never merged. Returns the new graph's stats.
func (a *Analyzer) Load(text string) *core.GraphStats {
	g := builder.FromText(text, builder.WithLogger(a.logger))
	stats := g.Stats()

	a.mu.Lock()
	a.graph = g
	a.id = uuid.New()
	id := a.id
	a.mu.Unlock()

	a.metrics.recordLoad(context.Background(), stats)
	a.logger.Info("graph loaded",
		slog.String("session", id.String()),
		slog.Int("vertices", stats.VertexCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Int("dangling", stats.DanglingCount),
	)

	return stats
}

// snapshot returns the current graph and session ID.
func (a *Analyzer) snapshot() (*core.Graph, uuid.UUID) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.graph, a.id
}

// begin opens the span for query; the returned func ends it and records
// the query metrics.
func (a *Analyzer) begin(ctx context.Context, query string, id uuid.UUID, attrs ...attribute.KeyValue) (context.Context, trace.Span, func()) {
	start := time.Now()
	attrs = append(attrs, attribute.String("session.id", id.String()))
	ctx, span := a.tracer.Start(ctx, "analyzer."+query, trace.WithAttributes(attrs...))

	return ctx, span, func() {
		a.metrics.recordQuery(ctx, query, time.Since(start))
		span.End()
	}
}

// ID identifies the currently loaded graph. It changes on every Load.
func (a *Analyzer) ID() uuid.UUID {
	_, id := a.snapshot()

	return id
}

// Graph returns a deep copy of the current graph.
func (a *Analyzer) Graph() *core.Graph {
	g, _ := a.snapshot()

	return g.Clone()
}

// Stats summarizes the current graph.
func (a *Analyzer) Stats() *core.GraphStats {
	g, _ := a.snapshot()

	return g.Stats()
}

// Edges lists every (from, to, weight) triple in first-occurrence order.
func (a *Analyzer) Edges() []converters.Triple {
	g, _ := a.snapshot()

	return converters.EdgeList(g)
}

// WriteDOT writes the current graph as Graphviz text to w.
func (a *Analyzer) WriteDOT(w io.Writer, opts ...converters.DOTOption) error {
	g, _ := a.snapshot()

	return converters.WriteDOT(w, g, opts...)
}

// QueryBridgeWords reports the bridge words from w1 to w2 as a sentence.
func (a *Analyzer) QueryBridgeWords(w1, w2 string) string {
	g, id := a.snapshot()
	_, span, done := a.begin(context.Background(), "QueryBridgeWords", id,
		attribute.String("word1", w1), attribute.String("word2", w2))
	defer done()

	n1, n2 := tokenize.Normalize(w1), tokenize.Normalize(w2)
	words, err := bridge.Find(g, w1, w2)
	switch {
	case errors.Is(err, bridge.ErrMissingInput):
		return msgNeedTwoWords
	case errors.Is(err, bridge.ErrBothAbsent):
		return msgBothAbsent(n1, n2)
	case errors.Is(err, bridge.ErrWord1Absent):
		return msgAbsent(n1)
	case errors.Is(err, bridge.ErrWord2Absent):
		return msgAbsent(n2)
	case err != nil:
		span.SetStatus(codes.Error, err.Error())
		return err.Error()
	}

	span.SetAttributes(attribute.Int("bridge_count", len(words)))
	if len(words) == 0 {
		return msgNoBridge(n1, n2)
	}

	return msgBridges(n1, n2, words)
}

// GenerateText inserts a randomly chosen bridge word between every adjacent
// pair of input words that has one. Blank input yields "".
func (a *Analyzer) GenerateText(input string) string {
	g, id := a.snapshot()
	_, _, done := a.begin(context.Background(), "GenerateText", id,
		attribute.Int("input_length", len(input)))
	defer done()

	a.rngMu.Lock()
	defer a.rngMu.Unlock()

	return bridge.Generate(g, input, a.rng)
}

// ShortestPath reports the shortest path from w1 to w2. With a blank w2 it
// lists one line per other vertex, in sorted order.
func (a *Analyzer) ShortestPath(w1, w2 string) string {
	g, id := a.snapshot()
	_, span, done := a.begin(context.Background(), "ShortestPath", id,
		attribute.String("word1", w1), attribute.String("word2", w2))
	defer done()

	src, dst := tokenize.Normalize(w1), tokenize.Normalize(w2)
	if src == "" {
		return msgNeedStartWord
	}
	if !g.HasVertex(src) {
		return msgAbsent(src)
	}
	if dst != "" && !g.HasVertex(dst) {
		return msgAbsent(dst)
	}

	opts := []dijkstra.Option{dijkstra.Source(src)}
	if dst != "" {
		opts = append(opts, dijkstra.WithTarget(dst))
	}
	res, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		a.logger.Error("shortest path failed", slog.String("session", id.String()), slog.Any("err", err))
		return err.Error()
	}

	if dst != "" {
		path, length, err := res.PathTo(dst)
		if err != nil {
			return msgUnreachable(src, dst)
		}
		span.SetAttributes(attribute.Int64("length", length))
		return msgShortestPath(path, length)
	}

	var lines []string
	for _, v := range g.Vertices() {
		if v == src {
			continue
		}
		path, length, err := res.PathTo(v)
		if err != nil {
			lines = append(lines, msgTargetUnreachable(src, v))
			continue
		}
		lines = append(lines, msgTargetLine(src, v, path, length))
	}

	return strings.Join(lines, "\n")
}

// Reach lists the words reachable from word by hop count, one line per
// depth. maxDepth 0 means no limit.
func (a *Analyzer) Reach(word string, maxDepth int) string {
	g, id := a.snapshot()
	_, span, done := a.begin(context.Background(), "Reach", id,
		attribute.String("word", word), attribute.Int("max_depth", maxDepth))
	defer done()

	src := tokenize.Normalize(word)
	if src == "" {
		return msgNeedStartWord
	}
	res, err := bfs.BFS(g, src, bfs.WithMaxDepth(maxDepth))
	switch {
	case errors.Is(err, bfs.ErrStartVertexNotFound):
		return msgAbsent(src)
	case err != nil:
		span.SetStatus(codes.Error, err.Error())
		return err.Error()
	}

	layers := res.Layers()[1:]
	span.SetAttributes(attribute.Int("reached", len(res.Order)-1))
	if len(layers) == 0 {
		return msgNothingFollows(src)
	}

	return msgReach(src, maxDepth, layers)
}

// Cycle returns one cycle of the current graph as a closed word sequence,
// or nil when the graph is acyclic.
func (a *Analyzer) Cycle() []string {
	g, _ := a.snapshot()
	cycle, err := dfs.FindCycle(g)
	if err != nil {
		a.logger.Error("cycle detection failed", slog.Any("err", err))
		return nil
	}

	return cycle
}

// TopologicalOrder returns every word so that each edge u→v has u before v,
// or nil when the graph has a cycle.
func (a *Analyzer) TopologicalOrder() []string {
	g, _ := a.snapshot()
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		if !errors.Is(err, dfs.ErrCycleDetected) {
			a.logger.Error("topological sort failed", slog.Any("err", err))
		}
		return nil
	}

	return order
}

// Matrix returns the dense weight matrix of the current graph.
func (a *Analyzer) Matrix() (*converters.Matrix, error) {
	g, _ := a.snapshot()

	return converters.ToMatrix(g)
}

// PageRank returns the rank of word under the Analyzer's PageRank policy, or
// 0 for blank or absent words.
func (a *Analyzer) PageRank(word string) float64 {
	score, err := a.PageRankContext(context.Background(), word)
	if err != nil {
		a.logger.Error("pagerank failed", slog.Any("err", err))
		return 0
	}

	return score
}

// PageRankContext is PageRank with cancellation and error reporting.
func (a *Analyzer) PageRankContext(ctx context.Context, word string) (float64, error) {
	res, err := a.rank(ctx)
	if err != nil {
		return 0, err
	}

	return res.Score(tokenize.Normalize(word)), nil
}

// TopRanks returns the k highest-ranked words.
func (a *Analyzer) TopRanks(ctx context.Context, k int) ([]pagerank.Ranked, error) {
	res, err := a.rank(ctx)
	if err != nil {
		return nil, err
	}

	return res.Top(k), nil
}

func (a *Analyzer) rank(ctx context.Context) (*pagerank.Result, error) {
	g, id := a.snapshot()
	ctx, span, done := a.begin(ctx, "PageRank", id)
	defer done()

	opts := append([]pagerank.Option{
		pagerank.WithLogger(a.logger),
		pagerank.WithTracerProvider(a.tp),
	}, a.prOpts...)
	res, err := pagerank.PageRank(ctx, g, opts...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return res, nil
}

// RandomWalk performs one weighted random walk and returns the visited
// words. An empty graph yields an empty slice.
func (a *Analyzer) RandomWalk() []string {
	res, err := a.Walk()
	if err != nil {
		a.logger.Error("random walk failed", slog.Any("err", err))
		return []string{}
	}

	return res.Nodes
}

// Walk is RandomWalk returning the full walk.Result.
func (a *Analyzer) Walk(opts ...walk.Option) (*walk.Result, error) {
	g, id := a.snapshot()
	_, span, done := a.begin(context.Background(), "RandomWalk", id)
	defer done()

	a.rngMu.Lock()
	defer a.rngMu.Unlock()

	all := append([]walk.Option{walk.WithRand(a.rng), walk.WithLogger(a.logger)}, opts...)
	res, err := walk.Walk(g, all...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("steps", len(res.Edges)),
		attribute.String("stop", res.Stop.String()),
	)

	return res, nil
}
