// Command wordgraph builds a directed word graph from a text file and answers
// bridge-word, text-generation, shortest-path, PageRank and random-walk
// queries against it.
//
//	wordgraph -f story.txt bridge new to
//	wordgraph -f story.txt path to new
//	wordgraph -f story.txt pagerank --top 5
//	wordgraph -f story.txt walk --out random_walk.txt
//	wordgraph -f story.txt dot --out graph.dot
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	// Minimal logger until the configured level is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run executes the CLI with explicit streams so tests can drive it.
func run(out, errOut io.Writer, args []string) error {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)

	return root.Execute()
}
