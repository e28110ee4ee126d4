package bridge

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Find returns the bridge words from w1 to w2, sorted ascending.
//
// Inputs are trimmed and lowercased before lookup. Validation order:
//  1. g non-nil (ErrNilGraph).
//  2. both words non-blank (ErrMissingInput).
//  3. presence: ErrBothAbsent, then ErrWord1Absent, then ErrWord2Absent.
//     The wrapped message names the missing word(s).
//
// An empty, non-nil slice with a nil error means "no bridge words".
func Find(g *core.Graph, w1, w2 string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	w1, w2 = tokenize.Normalize(w1), tokenize.Normalize(w2)
	if w1 == "" || w2 == "" {
		return nil, ErrMissingInput
	}

	has1, has2 := g.HasVertex(w1), g.HasVertex(w2)
	switch {
	case !has1 && !has2:
		return nil, fmt.Errorf("%w: %q and %q", ErrBothAbsent, w1, w2)
	case !has1:
		return nil, fmt.Errorf("%w: %q", ErrWord1Absent, w1)
	case !has2:
		return nil, fmt.Errorf("%w: %q", ErrWord2Absent, w2)
	}

	return between(g, w1, w2), nil
}

// between assumes both words are normalized vertices of g.
func between(g *core.Graph, w1, w2 string) []string {
	succ, err := g.NeighborIDs(w1)
	if err != nil {
		return []string{}
	}
	out := make([]string, 0, len(succ))
	for _, mid := range succ {
		if g.HasEdge(mid, w2) {
			out = append(out, mid)
		}
	}
	sort.Strings(out)

	return out
}
