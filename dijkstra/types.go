// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on the word graph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance of a vertex that cannot be reached from the source.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the target vertex does not exist in the graph.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no path exists from the source to the requested vertex.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source – starting vertex ID (must be non-empty and present in the graph).
// Target – optional; when set, the search stops once Target's distance is final.
type Options struct {
	Source string // The ID of the source vertex
	Target string // Optional early-exit vertex
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithTarget enables single-pair mode with early exit at target.
// An empty target keeps all-targets mode.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// DefaultOptions returns Options for the given source in all-targets mode.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}

// Result holds the outcome of one Dijkstra run.
//
//   - Dist[v] is the minimal distance from Source, or Infinity if unreachable
//     (in single-pair mode, vertices never finalized may hold tentative values).
//   - Prev[v] is v's predecessor on one shortest path; absent for Source and
//     unreachable vertices.
type Result struct {
	Source string
	Target string
	Dist   map[string]int64
	Prev   map[string]string
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v string) bool {
	d, ok := r.Dist[v]

	return ok && d != Infinity
}

// PathTo reconstructs the path Source → … → dest by following predecessor
// links backwards and reversing them. The returned length is the sum of the
// traversed edge weights, equal to Dist[dest].
//
// Errors:
//   - ErrUnreachable if dest has infinite distance or is unknown.
func (r *Result) PathTo(dest string) ([]string, int64, error) {
	if !r.Reachable(dest) {
		return nil, 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, dest, r.Source)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.Dist[dest], nil
}
