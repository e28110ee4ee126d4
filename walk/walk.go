package walk

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/wordgraph/core"
)

// Walk performs one weighted random walk over g.
//
// Steps:
//  1. Apply options; fall back to the default seed when no source is injected.
//  2. Pick the start (WithStart or uniform over the sorted vertex list).
//  3. Loop: stop at a dead end; otherwise draw the next edge by weight and
//     stop if it was already traversed, else record it and move.
//
// An empty graph yields an empty Result with StopEmpty and no error.
//
// Complexity: O(L · d) for a walk of L steps and maximum out-degree d; L ≤ E.
func Walk(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := Options{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(defaultRNGSeed)
	}

	res := &Result{Nodes: []string{}, Edges: []Step{}, Stop: StopEmpty}

	cur := cfg.Start
	if cur != "" {
		if !g.HasVertex(cur) {
			return nil, fmt.Errorf("%w: %q", ErrStartNotFound, cur)
		}
	} else {
		vertices := g.Vertices()
		if len(vertices) == 0 {
			return res, nil
		}
		cur = vertices[rng.Intn(len(vertices))]
	}
	res.Nodes = append(res.Nodes, cur)

	seen := make(map[[2]string]struct{})
	for {
		next, err := step(g, cur, rng)
		if err != nil {
			return nil, err
		}
		if next == nil {
			res.Stop = StopDeadEnd
			break
		}
		key := [2]string{next.From, next.To}
		if _, dup := seen[key]; dup {
			res.Stop = StopRepeatedEdge
			break
		}
		seen[key] = struct{}{}
		res.Edges = append(res.Edges, Step{From: next.From, To: next.To, Weight: next.Weight})
		res.Nodes = append(res.Nodes, next.To)
		cur = next.To
	}

	cfg.Logger.Debug("random walk finished",
		slog.String("start", res.Nodes[0]),
		slog.Int("steps", len(res.Edges)),
		slog.String("stop", res.Stop.String()),
	)

	return res, nil
}

// step draws one outgoing edge of cur with probability weight/outWeight.
// It returns nil when cur is a dead end.
func step(g *core.Graph, cur string, rng *rand.Rand) (*core.Edge, error) {
	edges, err := g.Neighbors(cur)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, e := range edges {
		total += e.Weight
	}
	if total == 0 {
		return nil, nil
	}

	r := rng.Int63n(total)
	var acc int64
	for i := range edges {
		acc += edges[i].Weight
		if r < acc {
			return &edges[i], nil
		}
	}

	// unreachable while weights are positive
	return &edges[len(edges)-1], nil
}
