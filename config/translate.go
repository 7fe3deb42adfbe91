// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/frontiers/engine"
	"github.com/katalvlaran/frontiers/expander"
	"github.com/katalvlaran/frontiers/overlap"
	"github.com/katalvlaran/frontiers/policy"
	"github.com/katalvlaran/frontiers/sweep"
	"github.com/katalvlaran/frontiers/termination"
)

func init() {
	_ = validate.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
		return slices.Contains(policy.Names(), fl.Field().String())
	})
}

// EngineOptions translates the run into engine options. Policies are
// stateful, so every call builds fresh instances.
func (r *Run) EngineOptions() ([]engine.Option, error) {
	return r.options(r.Policy, r.RandomSeed, r.Overlap, r.Termination)
}

func (r *Run) options(pname string, seed int64, ov Overlap, tname string) ([]engine.Option, error) {
	var opts []engine.Option

	if pname != "" {
		p, err := policy.FromName(pname, seed)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		opts = append(opts, engine.WithPolicy(p))
	}
	if ov.Strategy != "" {
		s, err := overlap.FromName(ov.Strategy, ov.Threshold, ov.MaxDistance)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		opts = append(opts, engine.WithOverlap(s))
	}
	if tname != "" {
		t, err := termination.FromName(tname)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		opts = append(opts, engine.WithTermination(t))
	}

	return append(opts,
		engine.WithMaxIterations(r.MaxIterations),
		engine.WithTimeBudget(r.TimeBudget),
		engine.WithTargetPathsPerPair(r.TargetPathsPerPair),
	), nil
}

// SweepVariants returns one sweep.Variant per configured variant, each
// inheriting the base run and overriding the names it sets. With no
// variants configured, the base run is the only entry, named "base".
func (r *Run) SweepVariants() []sweep.Variant {
	if len(r.Variants) == 0 {
		return []sweep.Variant{{Name: "base", Options: r.EngineOptions}}
	}
	out := make([]sweep.Variant, 0, len(r.Variants))
	for _, v := range r.Variants {
		pname, seed, ov, tname := r.Policy, r.RandomSeed, r.Overlap, r.Termination
		if v.Policy != "" {
			pname = v.Policy
		}
		if v.RandomSeed != nil {
			seed = *v.RandomSeed
		}
		if v.Overlap != nil {
			ov = *v.Overlap
		}
		if v.Termination != "" {
			tname = v.Termination
		}
		out = append(out, sweep.Variant{
			Name:    v.Name,
			Options: func() ([]engine.Option, error) { return r.options(pname, seed, ov, tname) },
		})
	}

	return out
}

// WrapExpander applies the configured cache and rate limit around x, cache
// outermost so hits bypass the limiter.
func (r *Run) WrapExpander(x expander.Expander) (expander.Expander, error) {
	out := x
	if r.Expander.RateLimit > 0 {
		rl, err := expander.NewRateLimited(out, rate.Limit(r.Expander.RateLimit), r.Expander.Burst)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = rl
	}
	if r.Expander.CacheSize > 0 {
		c, err := expander.NewCached(out, r.Expander.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = c
	}

	return out, nil
}

// NewLogger builds a logrus logger writing to w at the configured level
// (info by default) and format (text by default).
func (r *Run) NewLogger(w io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)
	if r.Logging.Level != "" {
		lvl, err := logrus.ParseLevel(r.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		l.SetLevel(lvl)
	}
	if r.Logging.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return l, nil
}
