// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on nil inputs.
//   • Build/FromText themselves never panic.

package builder

import "log/slog"

// BuilderOption customizes construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithLogger routes the build summary to l (debug level).
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithTokenizer replaces the text tokenizer used by FromText.
// Panics on nil.
func WithTokenizer(fn func(string) []string) BuilderOption {
	if fn == nil {
		panic("builder: WithTokenizer(nil)")
	}
	return func(c *builderConfig) {
		c.tokenizer = fn
	}
}
