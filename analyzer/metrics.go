package analyzer

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/wordgraph/core"
)

// Metric names.
const (
	metricQueries       = "wordgraph_queries_total"
	metricQueryDuration = "wordgraph_query_duration_seconds"
	metricLoads         = "wordgraph_loads_total"
	metricGraphVertices = "wordgraph_graph_vertices"
)

// instruments holds one Analyzer's metric instruments. A nil field means the
// instrument could not be created and is skipped.
type instruments struct {
	queries  metric.Int64Counter
	duration metric.Float64Histogram
	loads    metric.Int64Counter
	vertices metric.Int64Histogram
}

func newInstruments(m metric.Meter, logger *slog.Logger) *instruments {
	ins := &instruments{}
	var err error

	if ins.queries, err = m.Int64Counter(metricQueries,
		metric.WithDescription("Number of analyzer queries by type")); err != nil {
		logger.Warn("metric unavailable", slog.String("name", metricQueries), slog.Any("err", err))
	}
	if ins.duration, err = m.Float64Histogram(metricQueryDuration,
		metric.WithDescription("Duration of analyzer queries"),
		metric.WithUnit("s")); err != nil {
		logger.Warn("metric unavailable", slog.String("name", metricQueryDuration), slog.Any("err", err))
	}
	if ins.loads, err = m.Int64Counter(metricLoads,
		metric.WithDescription("Number of graphs loaded")); err != nil {
		logger.Warn("metric unavailable", slog.String("name", metricLoads), slog.Any("err", err))
	}
	if ins.vertices, err = m.Int64Histogram(metricGraphVertices,
		metric.WithDescription("Vertices per loaded graph")); err != nil {
		logger.Warn("metric unavailable", slog.String("name", metricGraphVertices), slog.Any("err", err))
	}

	return ins
}

func (ins *instruments) recordQuery(ctx context.Context, query string, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String("query", query))
	if ins.queries != nil {
		ins.queries.Add(ctx, 1, attrs)
	}
	if ins.duration != nil {
		ins.duration.Record(ctx, d.Seconds(), attrs)
	}
}

func (ins *instruments) recordLoad(ctx context.Context, stats *core.GraphStats) {
	if ins.loads != nil {
		ins.loads.Add(ctx, 1)
	}
	if ins.vertices != nil {
		ins.vertices.Record(ctx, int64(stats.VertexCount))
	}
}
