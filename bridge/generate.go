package bridge

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// defaultRNGSeed is used when Generate receives a nil generator.
const defaultRNGSeed int64 = 1

// Generate tokenizes text like the graph tokenizer and, between every pair of
// consecutive tokens, inserts one bridge word drawn uniformly by rng when the
// pair has any. Words absent from g simply have no bridges.
//
// Blank input returns "". A nil g returns the normalized tokens unchanged.
// A nil rng falls back to a fixed-seed stream, so results stay reproducible.
//
// Complexity: O(n · d) for n tokens and maximum out-degree d.
func Generate(g *core.Graph, text string, rng *rand.Rand) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	words := tokenize.Tokenize(text)
	if len(words) == 0 {
		return ""
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}

	out := make([]string, 0, 2*len(words))
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i])
		if g == nil || !g.HasVertex(words[i]) || !g.HasVertex(words[i+1]) {
			continue
		}
		if bridges := between(g, words[i], words[i+1]); len(bridges) > 0 {
			out = append(out, bridges[rng.Intn(len(bridges))])
		}
	}
	out = append(out, words[len(words)-1])

	return strings.Join(out, " ")
}
