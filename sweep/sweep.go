// SPDX-License-Identifier: MIT

// Package sweep runs several engine configurations over the same expander
// and seeds in parallel and summarises them side by side.
//
// Every variant builds fresh options per run, since policies carry per-run
// state. Runs share only the expander, which must be safe for concurrent
// use. Path quality is reported as mean stretch: path edges divided by the
// BFS hop distance between the two seeds of the path.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/frontiers/bfs"
	"github.com/katalvlaran/frontiers/engine"
	"github.com/katalvlaran/frontiers/expander"
)

var (
	// ErrNoVariants is returned when Compare is called without variants.
	ErrNoVariants = errors.New("sweep: no variants")

	// ErrDuplicateVariant is returned when two variants share a name.
	ErrDuplicateVariant = errors.New("sweep: duplicate variant name")
)

// Variant names one engine configuration. Options is called once per run.
type Variant struct {
	Name    string
	Options func() ([]engine.Option, error)
}

// Summary is the per-variant outcome.
type Summary struct {
	Name         string        `json:"name"`
	Reason       engine.Reason `json:"reason"`
	Iterations   int           `json:"iterations"`
	SampledNodes int           `json:"sampled_nodes"`
	SampledEdges int           `json:"sampled_edges"`
	Events       int           `json:"events"`
	Paths        int           `json:"paths"`
	// MeanStretch averages len(path)/dist(seed_a, seed_b) over kept paths;
	// 0 when no path was kept.
	MeanStretch float64       `json:"mean_stretch"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Option configures Compare.
type Option func(*config)

type config struct {
	limit  int
	logger *logrus.Logger
}

// WithLimit bounds the number of concurrent runs; n <= 0 means unbounded.
func WithLimit(n int) Option {
	return func(c *config) { c.limit = n }
}

// WithLogger sets the logger for per-variant progress.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Compare runs every variant on x from seeds and returns summaries in the
// order the variants were given. The first configuration or run error
// cancels the remaining runs and is returned.
func Compare(ctx context.Context, x expander.Expander, seeds []string, variants []Variant, opts ...Option) ([]Summary, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		if seen[v.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariant, v.Name)
		}
		seen[v.Name] = true
	}

	cfg := config{logger: silentLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	dist, err := SeedDistances(ctx, x, seeds)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, len(variants))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.limit > 0 {
		g.SetLimit(cfg.limit)
	}
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			s, err := runVariant(gctx, x, seeds, v, dist)
			if err != nil {
				return fmt.Errorf("sweep: variant %q: %w", v.Name, err)
			}
			cfg.logger.WithFields(logrus.Fields{
				"variant":    v.Name,
				"reason":     s.Reason,
				"iterations": s.Iterations,
				"paths":      s.Paths,
			}).Info("variant finished")
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func runVariant(ctx context.Context, x expander.Expander, seeds []string, v Variant, dist Distances) (Summary, error) {
	var opts []engine.Option
	if v.Options != nil {
		var err error
		if opts, err = v.Options(); err != nil {
			return Summary{}, err
		}
	}
	eng, err := engine.New(x, seeds, opts...)
	if err != nil {
		return Summary{}, err
	}
	start := time.Now()
	res, err := eng.Run(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Name:         v.Name,
		Reason:       res.Overlap.TerminationReason,
		Iterations:   res.Stats.Iterations,
		SampledNodes: len(res.SampledNodes),
		SampledEdges: len(res.SampledEdges),
		Events:       len(res.Overlap.Events),
		Paths:        len(res.Paths),
		MeanStretch:  MeanStretch(res, seeds, dist),
		Elapsed:      time.Since(start),
	}, nil
}

// Distances holds BFS hop distances between seed pairs, keyed by
// frontier indices (low, high). Unreachable pairs are absent.
type Distances map[[2]int]int

// SeedDistances runs one BFS per seed, stopping early once every later seed
// has been discovered.
func SeedDistances(ctx context.Context, x expander.Expander, seeds []string) (Distances, error) {
	d := make(Distances)
	for i := 0; i+1 < len(seeds); i++ {
		want := make(map[string]int, len(seeds)-i-1)
		for j := i + 1; j < len(seeds); j++ {
			want[seeds[j]] = j
		}
		found := 0
		stop := errors.New("all seeds found")
		res, err := bfs.BFS(ctx, x, seeds[i], bfs.WithOnVisit(func(id string, _ int) error {
			if _, ok := want[id]; ok {
				found++
				if found == len(want) {
					return stop
				}
			}
			return nil
		}))
		if err != nil && !errors.Is(err, stop) {
			return nil, fmt.Errorf("sweep: distances from %q: %w", seeds[i], err)
		}
		for id, j := range want {
			if depth, ok := res.Depth[id]; ok {
				d[[2]int{i, j}] = depth
			}
		}
	}

	return d, nil
}

// MeanStretch averages path length over seed distance for the paths of res.
// Paths between unreachable or coincident seed pairs are ignored.
func MeanStretch(res *engine.Result, seeds []string, dist Distances) float64 {
	var sum float64
	var n int
	for _, p := range res.Paths {
		lo, hi := p.FrontierA, p.FrontierB
		if hi < lo {
			lo, hi = hi, lo
		}
		d, ok := dist[[2]int{lo, hi}]
		if !ok || d == 0 {
			continue
		}
		sum += float64(p.Len()) / float64(d)
		n++
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// Best returns the summaries sorted by fewest iterations, then by lowest
// mean stretch, then by name.
func Best(in []Summary) []Summary {
	out := append([]Summary(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Iterations != out[j].Iterations {
			return out[i].Iterations < out[j].Iterations
		}
		if out[i].MeanStretch != out[j].MeanStretch {
			return out[i].MeanStretch < out[j].MeanStretch
		}
		return out[i].Name < out[j].Name
	})

	return out
}
