// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • tokenizer = tokenize.Tokenize
//   • logger    = slog.Default()

package builder

import (
	"log/slog"

	"github.com/katalvlaran/wordgraph/tokenize"
)

// builderConfig aggregates all knobs used by Build/FromText.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	tokenizer func(string) []string
	logger    *slog.Logger
}

// newBuilderConfig constructs a config with defaults and applies options in order
// (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		tokenizer: tokenize.Tokenize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
