// Package config loads wordgraph settings from YAML with environment overrides.
//
// Precedence: defaults, then the YAML file, then WORDGRAPH_* variables.
//
//	pagerank:
//	  damping: 0.85
//	  iterations: 100
//	  node_set: all        # all | with_outgoing
//	random:
//	  seed: 0              # 0 lets the caller pick a non-deterministic seed
//	log:
//	  level: info          # debug | info | warn | error
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgraph/analyzer"
	"github.com/katalvlaran/wordgraph/pagerank"
)

// Environment variables consulted by Load.
const (
	EnvSeed     = "WORDGRAPH_SEED"
	EnvLogLevel = "WORDGRAPH_LOG_LEVEL"
	EnvNodeSet  = "WORDGRAPH_NODE_SET"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete application configuration.
type Config struct {
	PageRank PageRankConfig `yaml:"pagerank"`
	Random   RandomConfig   `yaml:"random"`
	Log      LogConfig      `yaml:"log"`
}

// PageRankConfig mirrors the pagerank package options.
type PageRankConfig struct {
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
	NodeSet    string  `yaml:"node_set"`
}

// RandomConfig seeds text generation and random walks.
type RandomConfig struct {
	Seed int64 `yaml:"seed"`
}

// LogConfig selects the minimum log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PageRank: PageRankConfig{
			Damping:    pagerank.DefaultDamping,
			Iterations: pagerank.DefaultIterations,
			NodeSet:    pagerank.AllVertices.String(),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Parse overlays YAML data on the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load reads path (when non-empty), applies environment overrides and
// validates. An empty path yields the defaults plus overrides. A path that
// cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if cfg, err = Parse(data); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSeed, v)
		}
		c.Random.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvNodeSet); v != "" {
		c.PageRank.NodeSet = v
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if math.IsNaN(c.PageRank.Damping) || c.PageRank.Damping < 0 || c.PageRank.Damping > 1 {
		return fmt.Errorf("%w: pagerank.damping must be in [0,1], got %v", ErrInvalid, c.PageRank.Damping)
	}
	if c.PageRank.Iterations <= 0 {
		return fmt.Errorf("%w: pagerank.iterations must be positive, got %d", ErrInvalid, c.PageRank.Iterations)
	}
	if _, err := pagerank.ParseNodeSet(c.PageRank.NodeSet); err != nil {
		return fmt.Errorf("%w: pagerank.node_set %q", ErrInvalid, c.PageRank.NodeSet)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel converts Log.Level to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

// AnalyzerOptions maps the configuration onto analyzer options. A zero seed
// adds no random-source option, leaving that choice to the caller.
func (c Config) AnalyzerOptions() []analyzer.Option {
	ns, _ := pagerank.ParseNodeSet(c.PageRank.NodeSet)
	opts := []analyzer.Option{
		analyzer.WithPageRankOptions(
			pagerank.WithDamping(c.PageRank.Damping),
			pagerank.WithIterations(c.PageRank.Iterations),
			pagerank.WithNodeSet(ns),
		),
	}
	if c.Random.Seed != 0 {
		opts = append(opts, analyzer.WithSeed(c.Random.Seed))
	}

	return opts
}
