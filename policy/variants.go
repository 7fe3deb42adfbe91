// SPDX-License-Identifier: MIT
//
// File: variants.go
// Role: the priority policy variants.

package policy

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/frontiers/salience"
)

// DefaultRandomSeed seeds Random when no seed is configured.
const DefaultRandomSeed int64 = 1

type degreeAscending struct{}

// DegreeAscending scores a node by its degree, deferring hubs.
func DegreeAscending() Policy { return degreeAscending{} }

func (degreeAscending) Name() string  { return NameDegree }
func (degreeAscending) Dynamic() bool { return false }

func (degreeAscending) Score(ctx context.Context, req Request) (float64, error) {
	deg, err := req.Source.Degree(ctx, req.ID)
	if err != nil {
		return 0, err
	}
	return float64(deg), nil
}

type fifo struct {
	name    string
	counter uint64
}

// FIFO scores by a monotonic insertion counter: plain breadth-first order.
func FIFO() Policy { return &fifo{name: NameFIFO} }

func (p *fifo) Name() string  { return p.name }
func (p *fifo) Dynamic() bool { return false }

// Fresh implements Stateful.
func (p *fifo) Fresh() Policy { return &fifo{name: p.name} }

func (p *fifo) Score(context.Context, Request) (float64, error) {
	s := float64(p.counter)
	p.counter++
	return s, nil
}

type smallestFrontier struct {
	fifo
}

// SmallestFrontierFirst always advances the frontier with the fewest visited
// nodes; within a frontier candidates keep FIFO order.
func SmallestFrontierFirst() Policy {
	return &smallestFrontier{fifo: fifo{name: NameSmallestFrontier}}
}

func (*smallestFrontier) Scheduler() Scheduler { return SmallestFirst() }

// Fresh implements Stateful.
func (*smallestFrontier) Fresh() Policy { return SmallestFrontierFirst() }

type random struct {
	seed int64
	rng  *rand.Rand
}

// Random scores by a uniform draw from a PRNG seeded with seed; 0 selects
// DefaultRandomSeed.
func Random(seed int64) Policy {
	if seed == 0 {
		seed = DefaultRandomSeed
	}
	return &random{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (*random) Name() string  { return NameRandom }
func (*random) Dynamic() bool { return false }

// Fresh implements Stateful; the stream restarts from the seed.
func (p *random) Fresh() Policy { return Random(p.seed) }

func (p *random) Score(context.Context, Request) (float64, error) {
	return p.rng.Float64(), nil
}

type pathPotential struct{}

// PathPotential scores deg(v) / (1 + pp(v)), where pp(v) counts v's
// neighbors already visited by frontiers other than the considering one.
// With pp = 0 it degrades to degree order.
func PathPotential() Policy { return pathPotential{} }

func (pathPotential) Name() string  { return NamePathPotential }
func (pathPotential) Dynamic() bool { return true }

func (pathPotential) Score(ctx context.Context, req Request) (float64, error) {
	deg, err := req.Source.Degree(ctx, req.ID)
	if err != nil {
		return 0, err
	}
	nbrs, err := req.Source.Neighbors(ctx, req.ID)
	if err != nil {
		return 0, err
	}

	return float64(deg) / (1 + float64(Potential(req, nbrs))), nil
}

// Potential counts the neighbors visited by any frontier other than
// req.Active.
func Potential(req Request, neighbors []string) int {
	pp := 0
	for _, n := range neighbors {
		ord, ok := req.Group.Interner.Lookup(n)
		if !ok {
			continue
		}
		for _, f := range req.Group.Frontiers {
			if f.Index() != req.Active && f.Visited(ord) {
				pp++
				break
			}
		}
	}

	return pp
}

// Salience is the two-phase retrospective-salience policy. It behaves as
// DegreeAscending until the first cross-frontier path is reconstructed and
// then switches, permanently, to salience scoring.
type Salience struct {
	est      *salience.Estimator
	switched bool
}

// RetrospectiveSalience returns a fresh two-phase policy.
func RetrospectiveSalience() *Salience {
	return &Salience{est: salience.NewEstimator()}
}

// Name implements Policy.
func (*Salience) Name() string { return NameRetrospectiveSalience }

// Dynamic is false in phase 1 and true once switched.
func (p *Salience) Dynamic() bool { return p.switched }

// Fresh implements Stateful with empty evidence, back in phase 1.
func (*Salience) Fresh() Policy { return RetrospectiveSalience() }

// Switched reports whether phase 2 is active.
func (p *Salience) Switched() bool { return p.switched }

// Estimator exposes the accumulated evidence.
func (p *Salience) Estimator() *salience.Estimator { return p.est }

// Score implements Policy.
func (p *Salience) Score(ctx context.Context, req Request) (float64, error) {
	deg, err := req.Source.Degree(ctx, req.ID)
	if err != nil {
		return 0, err
	}
	if !p.switched {
		return float64(deg), nil
	}
	nbrs, err := req.Source.Neighbors(ctx, req.ID)
	if err != nil {
		return 0, err
	}

	return p.est.Score(deg, nbrs), nil
}

// ObserveVisit implements VisitObserver.
func (p *Salience) ObserveVisit(_ string, degree int) { p.est.ObserveDegree(degree) }

// ObservePath implements PathObserver and triggers the phase switch.
func (p *Salience) ObservePath(nodes []string) {
	p.est.AddPath(nodes)
	p.switched = true
}
