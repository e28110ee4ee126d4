// Package walk performs a weighted random walk over a word graph.
//
// The walk starts at a vertex chosen uniformly from the sorted vertex list
// (or at a caller-supplied start) and repeatedly follows an outgoing edge
// picked with probability proportional to its weight:
//
//	r  ∈ [0, outWeight(cur))
//	acc = 0
//	for e in Neighbors(cur):   // target order
//	    acc += e.Weight
//	    if r < acc: take e
//
// It stops when:
//
//   - the current vertex has no outgoing edges (StopDeadEnd), or
//   - the chosen edge was already traversed (StopRepeatedEdge). The repeated
//     edge is not taken, so its target is not appended.
//
// Randomness is always injected. Without WithRand or WithSeed the walk uses a
// fixed seed, so two calls with the same options produce the same walk.
package walk
