// Package bfs provides breadth-first search over a word graph, returning
// hop distances, parent links and visit order.
//
// Weights are ignored: the distance of a word is the number of adjacent-word
// steps needed to reach it from the start, which answers "which words can
// follow this one within k steps of the text".
//
// Determinism
//
//	core.Graph.NeighborIDs returns successors sorted by ID and BFS enqueues
//	them in that order, so Order and Parent are fully reproducible.
//
// Usage
//
//	res, err := bfs.BFS(g, "new", bfs.WithMaxDepth(2))
//	for depth, words := range res.Layers() {
//	    fmt.Println(depth, words)
//	}
//
// Options
//
//   - WithContext(ctx):    cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):     stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):     hook during visit; returning an error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an option is invalid (e.g. negative depth).
//   - Wrapped errors from OnVisit, or ctx.Err() on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
