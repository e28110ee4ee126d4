package analyzer

import (
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/pagerank"
)

// instrumentationName names the analyzer's tracer and meter.
const instrumentationName = "wordgraph/analyzer"

// defaultRNGSeed backs the random source when none is injected.
const defaultRNGSeed int64 = 1

type config struct {
	logger   *slog.Logger
	tracer   trace.TracerProvider
	meter    metric.MeterProvider
	rng      *rand.Rand
	pagerank []pagerank.Option
}

// Option customizes an Analyzer at construction.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.Default(), tracer: otel.GetTracerProvider(), meter: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultRNGSeed))
	}

	return cfg
}

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracerProvider sets the provider for query spans. Nil is ignored and the
// global provider is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracer = tp
		}
	}
}

// WithMeterProvider sets the provider for query and load metrics. Nil is
// ignored and the global provider is used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		if mp != nil {
			c.meter = mp
		}
	}
}

// WithRand injects the random source used by GenerateText and RandomWalk.
// The Analyzer takes ownership of r. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is WithRand over a fresh source; seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = defaultRNGSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNodeSet fixes the PageRank node-set policy for the lifetime of the Analyzer.
func WithNodeSet(s pagerank.NodeSet) Option {
	return WithPageRankOptions(pagerank.WithNodeSet(s))
}

// WithPageRankOptions appends raw pagerank options (damping, iterations, …).
func WithPageRankOptions(opts ...pagerank.Option) Option {
	return func(c *config) {
		c.pagerank = append(c.pagerank, opts...)
	}
}
