// SPDX-License-Identifier: MIT

// Package termination decides when a multi-frontier expansion has met its
// goal, from the frontier states and the overlap-event log.
//
// In increasing strictness:
//
//	common      ∩ visited_i ≠ ∅ over all frontiers
//	transitive  overlap graph over frontier indices is connected
//	pairwise    overlap graph is complete: all C(N,2) pairs overlapped
//
// All strategies report true for N ≤ 1. Strategies that read the event log
// consume it incrementally and must see the same append-only slice on every
// call; they belong to a single run. ForRun hands each run its own instance.
package termination

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/frontiers/frontier"
)

// Strategy names accepted by FromName.
const (
	NameCommon     = "common"
	NamePairwise   = "pairwise"
	NameTransitive = "transitive"
)

// ErrUnknownStrategy indicates FromName was given an unregistered name.
var ErrUnknownStrategy = errors.New("termination: unknown strategy")

// Strategy reports whether expansion should stop.
type Strategy interface {
	Name() string
	ShouldTerminate(g *frontier.Group, events []frontier.Event, iteration int) bool
}

// Stateful is implemented by strategies that keep per-run state.
// Fresh returns an unused instance with the same configuration.
type Stateful interface {
	Fresh() Strategy
}

// ForRun returns an instance of s safe to give to one run: a fresh copy when
// s is Stateful, s itself otherwise.
func ForRun(s Strategy) Strategy {
	if st, ok := s.(Stateful); ok {
		return st.Fresh()
	}
	return s
}

type common struct{}

// CommonConvergence stops once some node has been visited by every frontier.
func CommonConvergence() Strategy { return common{} }

func (common) Name() string { return NameCommon }

func (common) ShouldTerminate(g *frontier.Group, _ []frontier.Event, _ int) bool {
	if g.Len() <= 1 {
		return true
	}
	sets := make([]*roaring.Bitmap, g.Len())
	for i, f := range g.Frontiers {
		if f.Len() == 0 {
			return false
		}
		sets[i] = f.VisitedSet()
	}

	return !roaring.FastAnd(sets...).IsEmpty()
}

// pairLog folds the event log into the set of overlapped pairs.
type pairLog struct {
	cursor int
	pairs  map[frontier.PairKey]struct{}
}

// fold consumes events not yet seen and returns the pairs added.
func (p *pairLog) fold(events []frontier.Event) []frontier.PairKey {
	if p.pairs == nil {
		p.pairs = make(map[frontier.PairKey]struct{})
	}
	var added []frontier.PairKey
	for ; p.cursor < len(events); p.cursor++ {
		key := events[p.cursor].Pair()
		if key.Low == key.High {
			continue
		}
		if _, ok := p.pairs[key]; !ok {
			p.pairs[key] = struct{}{}
			added = append(added, key)
		}
	}

	return added
}

type pairwise struct {
	log pairLog
}

// FullPairwise stops once every pair of frontiers has overlapped.
func FullPairwise() Strategy { return &pairwise{} }

func (*pairwise) Name() string { return NamePairwise }

// Fresh implements Stateful.
func (*pairwise) Fresh() Strategy { return FullPairwise() }

func (s *pairwise) ShouldTerminate(g *frontier.Group, events []frontier.Event, _ int) bool {
	n := g.Len()
	if n <= 1 {
		return true
	}
	s.log.fold(events)

	return len(s.log.pairs) >= n*(n-1)/2
}

type transitive struct {
	log   pairLog
	uf    *unionFind
	comps int
}

// TransitiveConnectivity stops once every frontier reaches every other via a
// chain of overlapping pairs.
func TransitiveConnectivity() Strategy { return &transitive{} }

func (*transitive) Name() string { return NameTransitive }

// Fresh implements Stateful.
func (*transitive) Fresh() Strategy { return TransitiveConnectivity() }

func (s *transitive) ShouldTerminate(g *frontier.Group, events []frontier.Event, _ int) bool {
	n := g.Len()
	if n <= 1 {
		return true
	}
	if s.uf == nil {
		s.uf = newUnionFind(n)
		s.comps = n
	}
	for _, key := range s.log.fold(events) {
		if s.uf.union(key.Low, key.High) {
			s.comps--
		}
	}

	return s.comps == 1
}

// Names lists every name FromName accepts.
func Names() []string { return []string{NameCommon, NamePairwise, NameTransitive} }

// FromName builds a fresh strategy by name.
func FromName(name string) (Strategy, error) {
	switch name {
	case NameCommon:
		return CommonConvergence(), nil
	case NamePairwise:
		return FullPairwise(), nil
	case NameTransitive:
		return TransitiveConnectivity(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
