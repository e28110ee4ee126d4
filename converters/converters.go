package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// DefaultGraphName is the identifier written after "digraph".
const DefaultGraphName = "G"

// ErrNilGraph indicates a nil *core.Graph.
var ErrNilGraph = errors.New("converters: graph is nil")

// Triple is a flat representation of a single weighted edge.
type Triple struct {
	From, To string
	Weight   int64
}

// String renders the triple as "from -> to (w)".
func (t Triple) String() string {
	return fmt.Sprintf("%s -> %s (%d)", t.From, t.To, t.Weight)
}

// EdgeList returns every edge of g in edge-ID (first-occurrence) order.
// A nil or empty graph yields an empty, non-nil slice.
//
// Time Complexity: O(E log E)
func EdgeList(g *core.Graph) []Triple {
	if g == nil {
		return []Triple{}
	}
	edges := g.Edges()
	out := make([]Triple, 0, len(edges))
	for _, e := range edges {
		out = append(out, Triple{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}

// Matrix is a lightweight adjacency-matrix representation.
//
// Order lists vertex IDs by row/column index; Index is its inverse.
// Data[i][j] holds the weight of i→j or zero if absent.
type Matrix struct {
	Order []string
	Index map[string]int
	Data  [][]int64
}

// ToMatrix constructs a Matrix from g over the sorted vertex list.
//
// Time Complexity: O(V + E)
// Memory: O(V²)
func ToMatrix(g *core.Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	verts := g.Vertices()
	n := len(verts)
	idx := make(map[string]int, n)
	for i, v := range verts {
		idx[v] = i
	}

	data := make([][]int64, n)
	for i := range data {
		data[i] = make([]int64, n)
	}
	for _, e := range g.Edges() {
		data[idx[e.From]][idx[e.To]] = e.Weight
	}

	return &Matrix{Order: verts, Index: idx, Data: data}, nil
}

type dotConfig struct {
	name string
}

// DOTOption customizes WriteDOT.
type DOTOption func(*dotConfig)

// WithGraphName overrides the graph identifier. Blank names are ignored.
func WithGraphName(name string) DOTOption {
	return func(c *dotConfig) {
		if strings.TrimSpace(name) != "" {
			c.name = name
		}
	}
}

// WriteDOT encodes g as Graphviz text:
//
//	digraph G {
//	  "to" -> "explore" [label=2];
//	}
//
// Edges appear in first-occurrence order. Dangling vertices need no line of
// their own because every vertex is the endpoint of some edge.
func WriteDOT(w io.Writer, g *core.Graph, opts ...DOTOption) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := dotConfig{name: DefaultGraphName}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", cfg.name)
	for _, t := range EdgeList(g) {
		fmt.Fprintf(bw, "  %q -> %q [label=%d];\n", t.From, t.To, t.Weight)
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("converters: write dot: %w", err)
	}

	return nil
}

// DOT is WriteDOT into a string.
func DOT(g *core.Graph, opts ...DOTOption) (string, error) {
	var sb strings.Builder
	if err := WriteDOT(&sb, g, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}
