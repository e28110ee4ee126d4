package pagerank

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Defaults.
const (
	// DefaultDamping is the probability of following an edge instead of teleporting.
	DefaultDamping = 0.85

	// DefaultIterations is the fixed number of power-iteration sweeps.
	DefaultIterations = 100
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrOptionViolation indicates an option received a meaningless value.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")
)

// NodeSet selects which vertices take part in the computation.
type NodeSet int

const (
	// AllVertices ranks every vertex of the graph.
	AllVertices NodeSet = iota

	// WithOutgoing ranks only vertices that have at least one outgoing edge.
	WithOutgoing
)

// String returns the configuration spelling of the policy.
func (s NodeSet) String() string {
	switch s {
	case AllVertices:
		return "all"
	case WithOutgoing:
		return "with_outgoing"
	default:
		return fmt.Sprintf("NodeSet(%d)", int(s))
	}
}

// ParseNodeSet is the inverse of NodeSet.String.
func ParseNodeSet(s string) (NodeSet, error) {
	switch s {
	case "", "all":
		return AllVertices, nil
	case "with_outgoing":
		return WithOutgoing, nil
	default:
		return 0, fmt.Errorf("%w: unknown node set %q", ErrOptionViolation, s)
	}
}

// Options configures PageRank.
type Options struct {
	Damping    float64
	Iterations int
	NodeSet    NodeSet
	Logger     *slog.Logger

	// TracerProvider supplies the tracer for the PageRank span.
	TracerProvider trace.TracerProvider

	err error // recorded by option constructors, surfaced by PageRank
}

// Option configures PageRank via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when PageRank is invoked.
type Option func(*Options)

// DefaultOptions returns d=0.85, 100 iterations, AllVertices, slog.Default()
// and the global tracer provider.
func DefaultOptions() Options {
	return Options{
		Damping:        DefaultDamping,
		Iterations:     DefaultIterations,
		NodeSet:        AllVertices,
		Logger:         slog.Default(),
		TracerProvider: otel.GetTracerProvider(),
	}
}

// WithDamping sets d; it must lie in [0, 1].
func WithDamping(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 || d > 1 {
			o.err = fmt.Errorf("%w: damping must be in [0,1] (%v)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithIterations sets the fixed sweep count; it must be positive.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithNodeSet selects the node-set policy.
func WithNodeSet(s NodeSet) Option {
	return func(o *Options) {
		if s != AllVertices && s != WithOutgoing {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, s)
			return
		}
		o.NodeSet = s
	}
}

// WithLogger routes the completion line to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the provider for the PageRank span. Nil is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// Result holds the ranks after the final sweep.
type Result struct {
	// Scores maps every vertex of the node set to its rank.
	Scores map[string]float64

	// Iterations actually performed.
	Iterations int

	// NodeSet used for this run.
	NodeSet NodeSet
}

// Score returns the rank of id, or 0 when id is not part of the node set.
func (r *Result) Score(id string) float64 {
	return r.Scores[id]
}

// Sum returns Σ rank over the node set.
func (r *Result) Sum() float64 {
	ids := make([]string, 0, len(r.Scores))
	for id := range r.Scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var s float64
	for _, id := range ids {
		s += r.Scores[id]
	}

	return s
}

// Ranked is one entry of a Top listing.
type Ranked struct {
	ID    string
	Score float64
	Rank  int // 1-indexed
}

// Top returns the k best vertices by score descending, ties by ID ascending.
// k <= 0 returns an empty slice; k larger than the node set returns all.
func (r *Result) Top(k int) []Ranked {
	if k <= 0 {
		return []Ranked{}
	}
	out := make([]Ranked, 0, len(r.Scores))
	for id, s := range r.Scores {
		out = append(out, Ranked{ID: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if k < len(out) {
		out = out[:k]
	}
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
