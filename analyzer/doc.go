// Package analyzer is the session object behind every word-graph query.
//
// An Analyzer owns exactly one graph built from the most recently loaded
// text, plus the collaborators the queries need: a random source for text
// generation and random walks, a logger, and the PageRank policy fixed at
// construction time.
//
//	a := analyzer.Load(text, analyzer.WithSeed(7))
//	a.QueryBridgeWords("new", "to")   // `The bridge words from "new" to "to" is: "worlds"`
//	a.ShortestPath("to", "new")       // "Shortest path: to -> explore -> strange -> new (length=3)"
//	a.PageRank("new")                 // rank in [0, 1]
//	a.RandomWalk()                    // []string of visited words
//
// Every expected condition (blank input, absent words, unreachable targets)
// is reported as a descriptive string rather than an error, so front ends can
// print results verbatim. Each Load replaces the graph wholesale and assigns
// a fresh session ID used on log lines and trace spans.
//
// Methods are safe for concurrent use. Queries that consume the random source
// are serialized.
package analyzer
