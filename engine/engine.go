// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontiers/expander"
	"github.com/katalvlaran/frontiers/policy"
	"github.com/katalvlaran/frontiers/termination"
)

// Engine is a single-use multi-frontier expansion. Build it with New, call
// Run once, and read progress concurrently through Stats and State.
type Engine struct {
	x     expander.Expander
	seeds []string
	opts  Options

	mu    sync.Mutex
	state State
	stats Stats
}

// New validates the seeds and options and returns a Ready engine.
//
// Seeds must be non-empty, distinct and known to x; the presence check costs
// one Degree lookup per seed.
//
// Errors: ErrNilExpander, ErrNoSeeds, ErrDuplicateSeed, ErrSeedNotFound,
// ErrOptionViolation, or a wrapped lookup error.
func New(x expander.Expander, seeds []string, opts ...Option) (*Engine, error) {
	if x == nil {
		return nil, ErrNilExpander
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.Policy = policy.ForRun(o.Policy)
	o.Termination = termination.ForRun(o.Termination)
	if o.Scheduler == nil {
		o.Scheduler = policy.SchedulerFor(o.Policy)
	} else {
		o.Scheduler = policy.SchedulerForRun(o.Scheduler)
	}

	seen := make(map[string]int, len(seeds))
	for i, s := range seeds {
		if s == "" {
			return nil, fmt.Errorf("%w: seed %d is empty", ErrSeedNotFound, i)
		}
		if j, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateSeed, s, j, i)
		}
		seen[s] = i

		if _, err := x.Degree(context.Background(), s); err != nil {
			if errors.Is(err, expander.ErrNodeNotFound) {
				return nil, fmt.Errorf("%w: %q: %w", ErrSeedNotFound, s, err)
			}
			return nil, fmt.Errorf("engine: checking seed %q: %w", s, err)
		}
	}

	return &Engine{
		x:     x,
		seeds: append([]string(nil), seeds...),
		opts:  o,
		stats: Stats{DegreeDistribution: make(map[int]int)},
	}, nil
}

// Run expands the frontiers until termination and returns the result
// snapshot. Budget and exhaustion outcomes are reported through
// Result.Overlap.TerminationReason with a nil error. When ctx is done the
// partial snapshot is returned with reason "cancelled" together with
// ctx.Err(). A second call returns ErrAlreadyRun.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return nil, ErrAlreadyRun
	}
	e.state = StateRunning
	e.mu.Unlock()

	runID := uuid.NewString()
	ctx, span := startRunSpan(ctx, runID, e.seeds, e.opts)
	defer span.End()

	log := e.opts.Logger.WithFields(logrus.Fields{
		"run_id": runID,
		"seeds":  len(e.seeds),
		"policy": e.opts.Policy.Name(),
	})
	log.Info("expansion started")

	start := e.opts.Clock()
	w := newWalker(ctx, e, log)
	reason, err := w.loop()
	res := w.result(reason)
	elapsed := e.opts.Clock().Sub(start)

	e.mu.Lock()
	e.state = StateTerminated
	e.mu.Unlock()

	for _, obs := range e.opts.Observers {
		obs.OnTerminate(reason, res.Stats)
	}
	setRunSpanResult(span, res)
	recordRunMetrics(ctx, reason, res.Stats.Iterations, len(res.Paths), elapsed)

	log.WithFields(logrus.Fields{
		"reason":     reason,
		"iterations": res.Stats.Iterations,
		"sampled":    len(res.SampledNodes),
		"paths":      len(res.Paths),
		"elapsed":    elapsed,
	}).Info("expansion terminated")

	return res, err
}

// Policy returns the policy instance owned by this engine.
func (e *Engine) Policy() policy.Policy { return e.opts.Policy }

// Stats returns a snapshot of the counters; safe to call while Run is in
// progress.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stats.clone()
}

// State returns the lifecycle stage.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Seeds returns a copy of the seed list.
func (e *Engine) Seeds() []string { return append([]string(nil), e.seeds...) }

// update mutates the counters under the lock.
func (e *Engine) update(fn func(*Stats)) {
	e.mu.Lock()
	fn(&e.stats)
	e.mu.Unlock()
}
