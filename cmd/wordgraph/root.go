package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/wordgraph/analyzer"
	"github.com/katalvlaran/wordgraph/config"
)

// app carries state shared by the root command and its subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer

	file       string
	configPath string
	seed       int64
	logLevel   string
	trace      bool

	logger   *slog.Logger
	analyzer *analyzer.Analyzer
	tp       *sdktrace.TracerProvider
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "wordgraph",
		Short: "Analyze a text as a directed word graph",
		Long: `wordgraph turns a text file into a directed graph whose vertices are the
lowercased words of the text and whose edge weights count how often one word
immediately follows another.

Examples:
  wordgraph -f story.txt stats
  wordgraph -f story.txt bridge new to
  wordgraph -f story.txt generate "Seek to explore new and exciting synergies"
  wordgraph -f story.txt path to new
  wordgraph -f story.txt path to
  wordgraph -f story.txt reach new --depth 2`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "", "text file to build the graph from (required)")
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.Int64Var(&a.seed, "seed", 0, "random seed for generate and walk (0 = config or time based)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.trace, "trace", false, "print OpenTelemetry spans to stderr")

	root.AddCommand(
		newStatsCmd(a),
		newBridgeCmd(a),
		newGenerateCmd(a),
		newPathCmd(a),
		newReachCmd(a),
		newPageRankCmd(a),
		newWalkCmd(a),
		newDotCmd(a),
	)

	return root
}

// setup loads configuration, installs the logger, reads the input file and
// builds the analyzer. Flags override configuration values.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if builtin(cmd) {
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Random.Seed = a.seed
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	if a.file == "" {
		return errors.New("missing --file")
	}
	data, err := os.ReadFile(a.file)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts := append(cfg.AnalyzerOptions(), analyzer.WithLogger(a.logger))
	if a.trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(a.errOut), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("create span exporter: %w", err)
		}
		a.tp = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		otel.SetTracerProvider(a.tp)
		opts = append(opts, analyzer.WithTracerProvider(a.tp))
	}
	if cfg.Random.Seed == 0 {
		opts = append(opts, analyzer.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	}
	a.analyzer = analyzer.Load(string(data), opts...)

	a.logger.Debug("configuration applied",
		slog.String("file", a.file),
		slog.String("node_set", cfg.PageRank.NodeSet),
		slog.Int64("seed", cfg.Random.Seed),
	)

	return nil
}

// builtin reports whether cmd is one of cobra's help or completion commands,
// which need no input file.
func builtin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
	}

	return false
}

// teardown flushes spans when tracing is enabled.
func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.tp == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return a.tp.Shutdown(ctx)
}
