// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontiers/overlap"
	"github.com/katalvlaran/frontiers/policy"
	"github.com/katalvlaran/frontiers/termination"
)

// Option configures an Engine. An invalid Option is recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the strategies, budgets and hooks of one engine.
type Options struct {
	// Policy scores candidates. Default: policy.DegreeAscending().
	Policy policy.Policy

	// Scheduler picks the active frontier. Default: the policy's own
	// scheduler, else round-robin.
	Scheduler policy.Scheduler

	// Overlap detects meetings. Default: overlap.PhysicalMeeting().
	Overlap overlap.Strategy

	// Termination decides when overlap is satisfied. Default:
	// termination.FullPairwise().
	Termination termination.Strategy

	// MaxIterations, if > 0, stops the run after that many expansions.
	MaxIterations int

	// TimeBudget, if > 0, stops the run once elapsed per Clock.
	TimeBudget time.Duration

	// Clock is the time source for TimeBudget. Default: time.Now.
	Clock func() time.Time

	// TargetPathsPerPair, if > 0, caps reconstructed paths per frontier pair
	// and delays overlap-satisfied until every pair holds that many.
	TargetPathsPerPair int

	// Logger receives structured run logs. Default: discards output.
	Logger *logrus.Logger

	// Observers receive per-step callbacks in registration order.
	Observers []Observer

	err error
}

// DefaultOptions returns degree-ascending expansion with physical meeting
// detection, full-pairwise termination, no budgets and a silent logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Policy:      policy.DegreeAscending(),
		Overlap:     overlap.PhysicalMeeting(),
		Termination: termination.FullPairwise(),
		Clock:       time.Now,
		Logger:      silent,
	}
}

func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithPolicy sets the priority policy. A stateful policy is copied by New
// through policy.ForRun, so one value may configure several engines.
func WithPolicy(p policy.Policy) Option {
	return func(o *Options) {
		if p == nil {
			o.violate("nil policy")
			return
		}
		o.Policy = p
	}
}

// WithScheduler overrides frontier selection. Stateful schedulers are
// copied per engine like policies.
func WithScheduler(s policy.Scheduler) Option {
	return func(o *Options) {
		if s == nil {
			o.violate("nil scheduler")
			return
		}
		o.Scheduler = s
	}
}

// WithOverlap sets the overlap detection strategy.
func WithOverlap(s overlap.Strategy) Option {
	return func(o *Options) {
		if s == nil {
			o.violate("nil overlap strategy")
			return
		}
		o.Overlap = s
	}
}

// WithTermination sets the termination strategy. A stateful strategy is
// copied by New through termination.ForRun.
func WithTermination(s termination.Strategy) Option {
	return func(o *Options) {
		if s == nil {
			o.violate("nil termination strategy")
			return
		}
		o.Termination = s
	}
}

// WithMaxIterations caps expansions.
//
//	n > 0: stop after n iterations
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violate("MaxIterations cannot be negative (%d)", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTimeBudget bounds wall time, checked once per iteration boundary.
// Zero disables the budget; negative is a violation.
func WithTimeBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.violate("TimeBudget cannot be negative (%s)", d)
			return
		}
		o.TimeBudget = d
	}
}

// WithClock replaces the time source used by the time budget.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithTargetPathsPerPair sets the per-pair path cap and target.
// Zero disables it; negative is a violation.
func WithTargetPathsPerPair(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violate("TargetPathsPerPair cannot be negative (%d)", n)
			return
		}
		o.TargetPathsPerPair = n
	}
}

// WithLogger injects a logger. Nil keeps the silent default.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a step observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			o.violate("nil observer")
			return
		}
		o.Observers = append(o.Observers, obs)
	}
}
