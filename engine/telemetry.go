// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/frontiers/expander"
)

// Package-level tracer and meter for engine runs.
var (
	tracer = otel.Tracer("frontiers.engine")
	meter  = otel.Meter("frontiers.engine")
)

var (
	runsTotal     metric.Int64Counter
	runIterations metric.Int64Histogram
	runPaths      metric.Int64Histogram
	runLatency    metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runsTotal, err = meter.Int64Counter(
			"frontiers_runs_total",
			metric.WithDescription("Total number of expansion runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runIterations, err = meter.Int64Histogram(
			"frontiers_run_iterations",
			metric.WithDescription("Iterations per expansion run"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runPaths, err = meter.Int64Histogram(
			"frontiers_run_paths",
			metric.WithDescription("Reconstructed paths per expansion run"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runLatency, err = meter.Float64Histogram(
			"frontiers_run_duration_seconds",
			metric.WithDescription("Duration of expansion runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRunMetrics records one finished run.
func recordRunMetrics(ctx context.Context, reason Reason, iterations, paths int, elapsed time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("reason", string(reason)))

	runsTotal.Add(ctx, 1, attrs)
	runIterations.Record(ctx, int64(iterations), attrs)
	runPaths.Record(ctx, int64(paths), attrs)
	runLatency.Record(ctx, elapsed.Seconds(), attrs)
}

// startRunSpan opens the Engine.Run span.
func startRunSpan(ctx context.Context, runID string, seeds []string, o Options) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine.Run",
		trace.WithAttributes(
			attribute.String("frontiers.run_id", runID),
			attribute.Int("frontiers.seed_count", len(seeds)),
			attribute.String("frontiers.seeds", strings.Join(seeds, ",")),
			attribute.String("frontiers.policy", o.Policy.Name()),
			attribute.String("frontiers.overlap", o.Overlap.Name()),
			attribute.String("frontiers.termination", o.Termination.Name()),
			attribute.Int("frontiers.max_iterations", o.MaxIterations),
			attribute.Int("frontiers.target_paths_per_pair", o.TargetPathsPerPair),
		),
	)
}

// setRunSpanResult annotates the span with the outcome.
func setRunSpanResult(span trace.Span, res *Result) {
	span.SetAttributes(
		attribute.Int("frontiers.iterations", res.Stats.Iterations),
		attribute.Int("frontiers.sampled_nodes", len(res.SampledNodes)),
		attribute.Int("frontiers.paths", len(res.Paths)),
		attribute.Int("frontiers.events", len(res.Overlap.Events)),
	)
	span.AddEvent("terminated", trace.WithAttributes(
		attribute.String("frontiers.reason", string(res.Overlap.TerminationReason)),
	))
}

func expanderSize(e *Engine) (int, bool) { return expander.Size(e.x) }
