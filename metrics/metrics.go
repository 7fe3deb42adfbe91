// SPDX-License-Identifier: MIT

// Package metrics exports engine progress as Prometheus metrics.
//
// An Observer is attached with engine.WithObserver and registers its
// collectors on a caller-supplied registry, so several observers (one per
// registry) can coexist in one process and in tests.
package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/frontiers/engine"
	"github.com/katalvlaran/frontiers/paths"
)

// ErrNilRegistry is returned by New when reg is nil.
var ErrNilRegistry = errors.New("metrics: nil registerer")

// DefaultNamespace prefixes every metric name unless overridden.
const DefaultNamespace = "frontiers"

// Observer implements engine.Observer on top of Prometheus collectors.
type Observer struct {
	pops           prometheus.Counter
	expansions     *prometheus.CounterVec
	overlaps       *prometheus.CounterVec
	pathsKept      prometheus.Counter
	lookupFailures prometheus.Counter
	edges          prometheus.Counter
	runs           *prometheus.CounterVec
	iterations     prometheus.Histogram
}

var _ engine.Observer = (*Observer)(nil)

// New creates the collectors under namespace (DefaultNamespace if empty)
// and registers them on reg.
func New(reg prometheus.Registerer, namespace string) (*Observer, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	o := &Observer{
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pops_total",
			Help:      "Queue pops across all frontiers, discards included",
		}),
		expansions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Nodes newly expanded, by frontier index",
		}, []string{"frontier"}),
		overlaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overlap_events_total",
			Help:      "Overlap events, by unordered frontier pair",
		}, []string{"pair"}),
		pathsKept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paths_total",
			Help:      "Reconstructed paths kept",
		}),
		lookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_failures_total",
			Help:      "Expander lookups skipped after an error",
		}),
		edges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_traversed_total",
			Help:      "Edges traversed by finished runs",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs, by termination reason",
		}, []string{"reason"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_iterations",
			Help:      "Iterations per finished run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{
		o.pops, o.expansions, o.overlaps, o.pathsKept,
		o.lookupFailures, o.edges, o.runs, o.iterations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return o, nil
}

// OnPop implements engine.Observer.
func (o *Observer) OnPop(int, string) { o.pops.Inc() }

// OnVisit implements engine.Observer.
func (o *Observer) OnVisit(frontier int, _ string, _ int) {
	o.expansions.WithLabelValues(strconv.Itoa(frontier)).Inc()
}

// OnOverlap implements engine.Observer.
func (o *Observer) OnOverlap(ev engine.OverlapEvent) {
	o.overlaps.WithLabelValues(PairLabel(ev.FrontierA, ev.FrontierB)).Inc()
}

// OnPath implements engine.Observer.
func (o *Observer) OnPath(paths.Path) { o.pathsKept.Inc() }

// OnLookupFailure implements engine.Observer.
func (o *Observer) OnLookupFailure(string, error) { o.lookupFailures.Inc() }

// OnTerminate implements engine.Observer.
func (o *Observer) OnTerminate(reason engine.Reason, stats engine.Stats) {
	o.runs.WithLabelValues(string(reason)).Inc()
	o.edges.Add(float64(stats.EdgesTraversed))
	o.iterations.Observe(float64(stats.Iterations))
}

// PairLabel renders an unordered frontier pair as "low-high".
func PairLabel(a, b int) string {
	if b < a {
		a, b = b, a
	}
	return strconv.Itoa(a) + "-" + strconv.Itoa(b)
}
