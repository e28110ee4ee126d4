// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// api.go - public entry-points for the builder package.

package builder

import (
	"log/slog"

	"github.com/katalvlaran/wordgraph/core"
)

// pairWeight is the weight contributed by one occurrence of an ordered pair.
const pairWeight int64 = 1

// Build creates a new core.Graph from tokens. Empty tokens are skipped
// before pairing, so they never become vertices.
//
// Complexity: O(n) for n tokens.
func Build(tokens []string, opts ...BuilderOption) *core.Graph {
	cfg := newBuilderConfig(opts...)

	return build(tokens, cfg)
}

// FromText tokenizes text with the configured tokenizer and builds the graph.
// Malformed or empty text is not an error: it yields an empty or partial graph.
func FromText(text string, opts ...BuilderOption) *core.Graph {
	cfg := newBuilderConfig(opts...)

	return build(cfg.tokenizer(text), cfg)
}

func build(tokens []string, cfg builderConfig) *core.Graph {
	g := core.NewGraph()

	prev := ""
	pairs := 0
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if prev != "" {
			// Both IDs are non-empty and the weight is positive, so AddEdge cannot fail.
			_, _ = g.AddEdge(prev, tok, pairWeight)
			pairs++
		}
		prev = tok
	}

	cfg.logger.Debug("word graph built",
		slog.Int("tokens", len(tokens)),
		slog.Int("pairs", pairs),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	)

	return g
}
