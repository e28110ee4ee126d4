// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// word graph, where the cost of an edge is its accumulated weight.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     every reachable vertex in O((V + E) log V) time.
//   - WithTarget switches to single-pair mode: the search stops the moment the
//     target is popped from the queue. Distances and predecessors on the path
//     to the target are identical to the ones all-targets mode produces.
//
// Priority queue:
//
//   - An explicit container/heap min-heap keyed by tentative distance.
//   - Lazy decrease-key: improving a distance pushes a new entry; the old one
//     stays in the heap. A popped entry whose distance is larger than the
//     authoritative Dist table entry is stale and skipped.
//   - Equal distances pop in push order (FIFO), so a fixed graph always yields
//     the same predecessor tree.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source was not provided.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: the source is not a vertex.
//   - ErrTargetNotFound: WithTarget names a vertex that does not exist.
//   - ErrNegativeWeight: an edge with negative weight was detected by the pre-scan.
//   - ErrUnreachable:    returned by Result.PathTo for a vertex with infinite distance.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("new"), dijkstra.WithTarget("to"))
//	if err != nil {
//	    return err
//	}
//	path, length, err := res.PathTo("to") // [new worlds to], 2
package dijkstra
