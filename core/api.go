// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries on top of the core catalogs.
// Policy:
//   - No algorithms or hidden state here.

package core

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock and count vertices and edges.
//   - Stage 2: Scan the adjacency buckets for dangling vertices and edges for loops/weight.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, targets := range g.adjacency {
		if len(targets) == 0 {
			stats.DanglingCount++
		}
	}
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
		if e.From == e.To {
			stats.SelfLoopCount++
		}
	}

	return &stats
}

// Empty reports whether the graph has no vertices.
func (g *Graph) Empty() bool {
	return g.VertexCount() == 0
}
