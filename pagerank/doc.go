// Package pagerank scores word-graph vertices with fixed-iteration power
// iteration, weighted transitions and uniform redistribution of dangling mass.
//
// Update rule for every vertex v of the node set S (N = |S|):
//
//	in(v)    = Σ_{u→v, u∈S} rank(u) · w(u→v) / outWeight(u)
//	dangling = Σ_{u∈S, outWeight(u)=0} rank(u)
//	rank'(v) = (1-d)/N + d · (in(v) + dangling/N)
//
// Ranks start at 1/N and are replaced synchronously after each sweep. The
// method runs a fixed number of iterations (default 100); it does not test
// for convergence, so the sum of ranks approaches 1 without being forced to it.
//
// Node set:
//
//   - AllVertices (default): every vertex participates.
//   - WithOutgoing: only vertices with out-degree > 0. outWeight(u) stays u's
//     full out-weight in the graph, so the share u sends to an excluded sink
//     leaves the system; no member of the set is dangling.
//
// The two policies produce different numbers for the same graph. Pick one per
// analysis session and keep it.
package pagerank
