// Package core provides the in-memory directed weighted Graph every wordgraph
// algorithm reads from.
//
// The Graph G = (V,E) is shaped for word-adjacency data:
//
//   - Edges are directed; u→v and v→u are distinct edges.
//   - Weights are positive integers that accumulate: AddEdge(u, v, 1) on an
//     existing edge raises its weight instead of adding a parallel edge.
//   - Self-loops are ordinary edges (a word immediately followed by itself).
//   - Vertices with no outgoing edges ("dangling") are first-class members.
//   - Constant-time membership via nested maps: adjacency[from][to] = edgeID.
//   - Edge IDs ("e1", "e2", …) follow first-occurrence order.
//
// Deterministic iteration:
//
//	Vertices()      // sorted by ID
//	Edges()         // by edge ID (first occurrence)
//	Neighbors(id)   // by target ID
//	Predecessors(id) // by source ID
//
// Core Methods:
//
//	AddVertex(id string) error                         // O(1)
//	HasVertex(id string) bool                          // O(1)
//	AddEdge(from, to string, w int64) (string, error)  // O(1), accumulating
//	HasEdge(from, to string) bool                      // O(1)
//	Weight(from, to string) (int64, bool)              // O(1)
//	OutDegree(id), OutWeight(id)                       // O(deg)
//	Clone() *Graph
//	Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - zero or negative weight increment.
//
// The Graph is guarded by a sync.RWMutex so read-only queries may share it, but
// the intended model is build once, then query.
package core
