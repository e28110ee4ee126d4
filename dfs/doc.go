// Package dfs provides depth-first algorithms on the directed word graph:
//
//   - FindCycle:       first cycle found by a three-color DFS, as a closed
//     word sequence [a b … a]. Self-loops count as cycles of length one.
//   - TopologicalSort: an order where every u→v has u before v, or
//     ErrCycleDetected when none exists.
//
// Both launch DFS from vertices in sorted order and explore successors in
// sorted order, so results are reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs
