// Package builder derives a word-adjacency core.Graph from tokens or raw text.
//
// Construction rule:
//
//	for i in 0 .. len(tokens)-2:
//	    ensure tokens[i], tokens[i+1]
//	    weight(tokens[i] → tokens[i+1]) += 1
//
// Guarantees:
//
//   - Every call returns a fresh graph; nothing is merged across builds.
//   - Every word that appears in at least one adjacent pair is a vertex,
//     including pure sinks and pure sources.
//   - Edge weight equals the exact number of occurrences of the ordered pair.
//   - Fewer than two tokens produce an empty graph (a lone word has no pair).
//   - Repeated adjacent words produce an ordinary self-loop.
//
// Options follow the functional style: BuilderOption mutates a builderConfig
// before construction starts. Option constructors panic on nil arguments.
package builder
