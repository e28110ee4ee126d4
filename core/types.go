// File: types.go
// Role: Edge, Graph, GraphStats, sentinel errors and the NewGraph constructor.
// Determinism:
//   - Edge IDs are issued from a monotonic counter ("e1", "e2", ...) in first-occurrence order.
// Concurrency:
//   - A single sync.RWMutex guards every catalog; readers never observe a half-applied AddEdge.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a zero or negative weight increment.
	ErrBadWeight = errors.New("core: edge weight must be positive")
)

// Edge is a directed, weighted connection From→To.
//
// Weight is the number of times the ordered pair was observed; it only ever grows.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the accumulated co-occurrence count.
	Weight int64

	seq uint64 // numeric form of ID, used for ordering
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount   int   // |V|
	EdgeCount     int   // distinct ordered pairs
	DanglingCount int   // vertices with no outgoing edge
	SelfLoopCount int   // edges with From == To
	TotalWeight   int64 // sum of all edge weights (== number of adjacent token pairs)
}

// Graph is a directed weighted graph whose edges accumulate weight instead of
// multiplying: adding an existing ordered pair again raises its Weight.
//
// Self-loops are ordinary edges. There are no parallel edges.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nextEdgeID uint64              // edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacency[from][to] = edge ID
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
