package pagerank

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/core"
)

// instrumentationName names the tracer taken from Options.TracerProvider.
const instrumentationName = "wordgraph/pagerank"

// inbound is one weighted in-edge, pre-normalized by the source's out-weight.
type inbound struct {
	from  int     // index of the source in the node slice
	share float64 // w(u→v) / outWeight(u)
}

// PageRank computes ranks for every vertex of the configured node set.
//
// Description:
//
//	Power iteration over a fixed number of sweeps. Dangling mass is
//	redistributed uniformly over all N members of the node set, not just
//	successors. Vertices are visited in sorted order so floating-point
//	accumulation is identical across runs.
//
// Inputs:
//
//   - ctx: checked between sweeps; cancellation returns ctx.Err().
//   - g:   the graph (read-only).
//
// Outputs:
//
//   - *Result with one score per node-set member. An empty node set yields
//     empty Scores and zero Iterations.
//
// Errors:
//
//   - ErrNilGraph, ErrOptionViolation, ctx.Err().
//
// Complexity: O(k · (V + E)) for k iterations.
func PageRank(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	ctx, span := cfg.TracerProvider.Tracer(instrumentationName).Start(ctx, "pagerank.PageRank",
		trace.WithAttributes(
			attribute.Int("node_count", g.VertexCount()),
			attribute.Int("edge_count", g.EdgeCount()),
			attribute.Float64("damping_factor", cfg.Damping),
			attribute.Int("iterations", cfg.Iterations),
			attribute.String("node_set", cfg.NodeSet.String()),
		),
	)
	defer span.End()

	nodes, index := selectNodes(g, cfg.NodeSet)
	res := &Result{Scores: make(map[string]float64, len(nodes)), NodeSet: cfg.NodeSet}
	N := float64(len(nodes))
	if len(nodes) == 0 {
		span.AddEvent("empty_node_set")
		return res, nil
	}

	in, dangling, err := prepare(g, nodes, index)
	if err != nil {
		return nil, err
	}

	d := cfg.Damping
	scores := make([]float64, len(nodes))
	next := make([]float64, len(nodes))
	for i := range scores {
		scores[i] = 1.0 / N
	}

	for iter := 0; iter < cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			span.AddEvent("cancelled", trace.WithAttributes(attribute.Int("iterations_completed", iter)))
			return nil, err
		}

		danglingMass := 0.0
		for _, i := range dangling {
			danglingMass += scores[i]
		}

		for v := range nodes {
			sum := 0.0
			for _, e := range in[v] {
				sum += scores[e.from] * e.share
			}
			next[v] = (1-d)/N + d*(sum+danglingMass/N)
		}

		scores, next = next, scores
		res.Iterations = iter + 1
	}

	for i, id := range nodes {
		res.Scores[id] = scores[i]
	}

	cfg.Logger.Debug("PageRank completed",
		slog.Int("iterations", res.Iterations),
		slog.Int("node_count", len(nodes)),
		slog.Int("dangling_count", len(dangling)),
		slog.String("node_set", cfg.NodeSet.String()),
	)
	span.SetAttributes(attribute.Int("dangling_count", len(dangling)))

	return res, nil
}

// Score runs PageRank and returns the rank of word, or 0 when word is not a
// member of the node set.
func Score(ctx context.Context, g *core.Graph, word string, opts ...Option) (float64, error) {
	res, err := PageRank(ctx, g, opts...)
	if err != nil {
		return 0, err
	}

	return res.Score(word), nil
}

// selectNodes returns the sorted node set and an ID → index map.
func selectNodes(g *core.Graph, set NodeSet) ([]string, map[string]int) {
	all := g.Vertices()
	nodes := all
	if set == WithOutgoing {
		nodes = make([]string, 0, len(all))
		for _, id := range all {
			if !g.IsDangling(id) {
				nodes = append(nodes, id)
			}
		}
	}
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	return nodes, index
}

// prepare builds per-target inbound lists and the list of dangling members.
// Edges whose endpoints are outside the node set are skipped.
func prepare(g *core.Graph, nodes []string, index map[string]int) ([][]inbound, []int, error) {
	in := make([][]inbound, len(nodes))
	var dangling []int
	for u, id := range nodes {
		out, err := g.OutWeight(id)
		if err != nil {
			return nil, nil, err
		}
		if out == 0 {
			dangling = append(dangling, u)
			continue
		}
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range edges {
			v, ok := index[e.To]
			if !ok {
				continue
			}
			in[v] = append(in[v], inbound{from: u, share: float64(e.Weight) / float64(out)})
		}
	}

	return in, dangling, nil
}
