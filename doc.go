// Package wordgraph turns prose into a directed word-adjacency graph and
// analyzes it.
//
// What is a word graph?
//
//	Every lowercase alphabetic word of the text is a vertex. Each time word
//	u is immediately followed by word v, the weight of edge u→v grows by one:
//
//	  "new life and new life"  →  new→life (2), life→and (1), and→new (1)
//
// What can you ask it?
//
//   - Bridge words: which m satisfy w1→m→w2 (bridge).
//   - Bridge-augmented text: weave bridge words into new text (bridge).
//   - Shortest paths: weighted Dijkstra, single pair or all targets (dijkstra).
//   - PageRank: weighted power iteration with dangling redistribution (pagerank).
//   - Random walks: weighted steps until a dead end or a repeated edge (walk).
//   - Reachability and cycles: hop layers and back edges (bfs, dfs).
//
// Under the hood:
//
//	core/       - the directed weighted Graph with deterministic enumeration
//	tokenize/   - text → lowercase ASCII-alphabetic tokens
//	builder/    - tokens → fresh Graph
//	converters/ - edge triples, adjacency matrix, Graphviz DOT
//	analyzer/   - one loaded graph + RNG + logger, answering in plain sentences
//	config/     - YAML configuration with environment overrides
//	cmd/wordgraph/ - the command-line front end
//
// Quick start:
//
//	a := analyzer.Load("To explore strange new worlds, To seek out new life and new civilizations")
//	fmt.Println(a.QueryBridgeWords("new", "to"))
//	// The bridge words from "new" to "to" is: "worlds"
//	fmt.Println(a.ShortestPath("to", "new"))
//	// Shortest path: to -> explore -> strange -> new (length=3)
//
//	go install github.com/katalvlaran/wordgraph/cmd/wordgraph@latest
package wordgraph
