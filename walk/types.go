package walk

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
)

// defaultRNGSeed is used when neither WithRand nor WithSeed is given, and
// when WithSeed receives 0.
const defaultRNGSeed int64 = 1

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("walk: graph is nil")

	// ErrStartNotFound indicates WithStart named a word absent from the graph.
	ErrStartNotFound = errors.New("walk: start vertex not found in graph")
)

// StopReason explains why a walk ended.
type StopReason int

const (
	// StopEmpty means the graph had no vertices and no walk was taken.
	StopEmpty StopReason = iota

	// StopDeadEnd means the last vertex has no outgoing edges.
	StopDeadEnd

	// StopRepeatedEdge means the next chosen edge had already been traversed.
	StopRepeatedEdge
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopEmpty:
		return "empty"
	case StopDeadEnd:
		return "dead end"
	case StopRepeatedEdge:
		return "repeated edge"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Step is one traversed edge.
type Step struct {
	From, To string
	Weight   int64
}

// Result is the outcome of one walk.
type Result struct {
	// Nodes visited, starting vertex first. Empty for an empty graph.
	Nodes []string

	// Edges traversed, len(Edges) == max(len(Nodes)-1, 0).
	Edges []Step

	// Stop explains why the walk ended.
	Stop StopReason
}

// Options configures Walk.
type Options struct {
	Start  string
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Option configures Walk via functional arguments.
type Option func(*Options)

// WithStart fixes the starting vertex instead of drawing it at random.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithRand injects the random source. The walk consumes it; do not share one
// *rand.Rand across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed builds a private random source from seed (0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithLogger routes the summary line to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
