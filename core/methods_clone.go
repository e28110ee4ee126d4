// File: methods_clone.go
// Role: Deep copies of graph instances.
// Determinism:
//   - Clone carries nextEdgeID so edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read lock on the source while snapshotting.

package core

// Clone returns a deep copy of the Graph: vertices, edges, adjacency and the ID counter.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		clone.addVertexLocked(id)
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.adjacency[e.From][e.To] = eid
	}

	return clone
}
