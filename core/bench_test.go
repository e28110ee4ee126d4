// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
)

// BenchmarkAddEdge_Accumulate measures repeated increments over a small set of pairs.
func BenchmarkAddEdge_Accumulate(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("root", fmt.Sprintf("w%d", i%100), 1)
	}
}

// BenchmarkNeighbors measures retrieving sorted successors of a star center.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("center", fmt.Sprintf("w%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("center")
	}
}
