// SPDX-License-Identifier: MIT

package policy

import "github.com/katalvlaran/frontiers/frontier"

// Scheduler selects the active frontier for the next iteration among the
// frontiers not yet marked exhausted. It returns -1 when none remain.
type Scheduler interface {
	Next(g *frontier.Group) int
}

// StatefulScheduler is implemented by schedulers that keep per-run state.
type StatefulScheduler interface {
	Fresh() Scheduler
}

// SchedulerForRun returns s, or a fresh copy when s is a StatefulScheduler.
func SchedulerForRun(s Scheduler) Scheduler {
	if st, ok := s.(StatefulScheduler); ok {
		return st.Fresh()
	}
	return s
}

type roundRobin struct {
	next int
}

// RoundRobin cycles through frontiers in index order, skipping exhausted ones.
func RoundRobin() Scheduler { return &roundRobin{} }

// Fresh implements StatefulScheduler.
func (*roundRobin) Fresh() Scheduler { return RoundRobin() }

func (s *roundRobin) Next(g *frontier.Group) int {
	n := g.Len()
	for k := 0; k < n; k++ {
		i := (s.next + k) % n
		if !g.Frontier(i).Exhausted() {
			s.next = (i + 1) % n
			return i
		}
	}
	return -1
}

type smallestFirst struct{}

// SmallestFirst selects the frontier with the fewest visited nodes; ties go
// to the lowest index.
func SmallestFirst() Scheduler { return smallestFirst{} }

func (smallestFirst) Next(g *frontier.Group) int {
	best, size := -1, 0
	for _, f := range g.Frontiers {
		if f.Exhausted() {
			continue
		}
		if best < 0 || f.Len() < size {
			best, size = f.Index(), f.Len()
		}
	}
	return best
}

// SchedulerFor returns the scheduler p provides, or RoundRobin.
func SchedulerFor(p Policy) Scheduler {
	if sp, ok := p.(SchedulerProvider); ok {
		return sp.Scheduler()
	}
	return RoundRobin()
}
