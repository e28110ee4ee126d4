package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/converters"
	"github.com/katalvlaran/wordgraph/tokenize"
	"github.com/katalvlaran/wordgraph/walk"
)

func newStatsCmd(a *app) *cobra.Command {
	var matrix bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print vertex and edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := a.analyzer.Stats()
			fmt.Fprintf(a.out, "session:      %s\n", a.analyzer.ID())
			fmt.Fprintf(a.out, "vertices:     %d\n", st.VertexCount)
			fmt.Fprintf(a.out, "edges:        %d\n", st.EdgeCount)
			fmt.Fprintf(a.out, "dangling:     %d\n", st.DanglingCount)
			fmt.Fprintf(a.out, "self-loops:   %d\n", st.SelfLoopCount)
			fmt.Fprintf(a.out, "total weight: %d\n", st.TotalWeight)
			if cycle := a.analyzer.Cycle(); cycle != nil {
				fmt.Fprintf(a.out, "cycle:        %s\n", strings.Join(cycle, " -> "))
			} else {
				fmt.Fprintln(a.out, "cycle:        none")
				if order := a.analyzer.TopologicalOrder(); len(order) > 0 {
					fmt.Fprintf(a.out, "order:        %s\n", strings.Join(order, " -> "))
				}
			}
			if !matrix {
				return nil
			}
			m, err := a.analyzer.Matrix()
			if err != nil {
				return err
			}
			printMatrix(a.out, m)
			return nil
		},
	}
	cmd.Flags().BoolVar(&matrix, "matrix", false, "also print the weight matrix, one row per word")

	return cmd
}

// printMatrix writes the column order, then one "word: w w w" line per row.
func printMatrix(out io.Writer, m *converters.Matrix) {
	fmt.Fprintf(out, "matrix:       %s\n", strings.Join(m.Order, " "))
	for i, row := range m.Data {
		cells := make([]string, len(row))
		for j, w := range row {
			cells[j] = fmt.Sprint(w)
		}
		fmt.Fprintf(out, "%s: %s\n", m.Order[i], strings.Join(cells, " "))
	}
}

func newBridgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge WORD1 WORD2",
		Short: "List words m such that WORD1 -> m -> WORD2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, a.analyzer.QueryBridgeWords(args[0], args[1]))
			return nil
		},
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate TEXT...",
		Short: "Insert bridge words into new text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, a.analyzer.GenerateText(strings.Join(args, " ")))
			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path WORD1 [WORD2]",
		Short: "Shortest path from WORD1 to WORD2, or to every word",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := ""
			if len(args) == 2 {
				to = args[1]
			}
			fmt.Fprintln(a.out, a.analyzer.ShortestPath(args[0], to))
			return nil
		},
	}
}

func newReachCmd(a *app) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "reach WORD",
		Short: "Words reachable from WORD, grouped by number of steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return fmt.Errorf("reach: --depth must not be negative")
			}
			fmt.Fprintln(a.out, a.analyzer.Reach(args[0], depth))
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum number of steps (0 = unlimited)")

	return cmd
}

func newPageRankCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "pagerank [WORD]",
		Short: "PageRank of WORD, or the --top K words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if top > 0 {
				ranks, err := a.analyzer.TopRanks(cmd.Context(), top)
				if err != nil {
					return err
				}
				for _, r := range ranks {
					fmt.Fprintf(a.out, "%d. %s %.4f\n", r.Rank, r.ID, r.Score)
				}
				return nil
			}
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return fmt.Errorf("pagerank: a word or --top is required")
			}
			score, err := a.analyzer.PageRankContext(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "PageRank(%s) = %.4f\n", tokenize.Normalize(args[0]), score)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "list the K highest-ranked words")

	return cmd
}

func newWalkCmd(a *app) *cobra.Command {
	var out, start string
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Random walk weighted by edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			word := tokenize.Normalize(start)
			res, err := a.analyzer.Walk(walk.WithStart(word))
			if errors.Is(err, walk.ErrStartNotFound) {
				fmt.Fprintf(a.out, "No %q in the graph!\n", word)
				return nil
			}
			if err != nil {
				return err
			}
			line := strings.Join(res.Nodes, " ")
			fmt.Fprintln(a.out, line)
			if out == "" {
				return nil
			}
			if err := os.WriteFile(out, []byte(line+"\n"), 0o644); err != nil {
				return fmt.Errorf("write walk: %w", err)
			}
			a.logger.Info("random walk saved", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "also write the walk to this file")
	cmd.Flags().StringVar(&start, "start", "", "start from this word instead of a random one")

	return cmd
}

func newDotCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit the graph in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return a.analyzer.WriteDOT(a.out)
			}
			var buf bytes.Buffer
			if err := a.analyzer.WriteDOT(&buf); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write dot: %w", err)
			}
			a.logger.Info("graph written", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")

	return cmd
}
