// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors, NeighborIDs, Predecessors.
// Determinism:
//   - Neighbors()/NeighborIDs() are sorted by target ID asc.
//   - Predecessors() is sorted by source ID asc.
// Concurrency:
//   - Read lock only; returned values are copies.

package core

import "sort"

// Neighbors returns copies of the outgoing edges of id, sorted by target ID.
//
// The order is fixed for a given graph, which is what weighted sampling over
// successors needs to be reproducible under a seeded generator.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, *g.edges[eid])
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the successor IDs of id, sorted ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(edges))
	for i := range edges {
		out[i] = edges[i].To
	}

	return out, nil
}

// Predecessors returns the edges entering id, sorted by source ID.
//
// Complexity: O(V + k log k); the catalog is indexed by source only.
func (g *Graph) Predecessors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	var out []Edge
	for _, targets := range g.adjacency {
		if eid, ok := targets[id]; ok {
			out = append(out, *g.edges[eid])
		}
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })

	return out, nil
}
