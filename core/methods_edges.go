// File: methods_edges.go
// Role: Edge accumulation & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in ID order, which is first-occurrence order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge adds weight to the directed edge from→to, creating both endpoints and
// the edge itself when missing, and returns the edge ID.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Lock, ensure both vertices.
//  3. If from→to exists, accumulate; otherwise issue a new ID and link adjacency.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrBadWeight if weight <= 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight <= 0 {
		return "", fmt.Errorf("%w: %s→%s weight=%d", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if eid, ok := g.adjacency[from][to]; ok {
		g.edges[eid].Weight += weight

		return eid, nil
	}

	g.nextEdgeID++
	eid := formatEdgeID(g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: g.nextEdgeID}
	g.adjacency[from][to] = eid

	return eid, nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return g.edges[eid].Weight, true
}

// Edges returns copies of all edges in ID order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of distinct ordered pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// formatEdgeID renders n as "e<n>" without fmt.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
