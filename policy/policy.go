// SPDX-License-Identifier: MIT

package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/frontiers/expander"
	"github.com/katalvlaran/frontiers/frontier"
)

// ErrUnknownPolicy indicates FromName was given an unregistered name.
var ErrUnknownPolicy = errors.New("policy: unknown policy")

// Policy names accepted by FromName.
const (
	NameDegree                = "degree"
	NameFIFO                  = "fifo"
	NameSmallestFrontier      = "smallest-frontier"
	NameRandom                = "random"
	NamePathPotential         = "path-potential"
	NameRetrospectiveSalience = "retrospective-salience"
)

// Request describes one candidate being scored.
type Request struct {
	Group  *frontier.Group
	Active int    // frontier considering the candidate
	Node   uint32 // interned candidate
	ID     string
	Source expander.Expander
}

// Policy computes candidate priority scores.
type Policy interface {
	Name() string
	// Score returns the priority of req's candidate; lower expands first.
	// A lookup error leaves the candidate unqueued.
	Score(ctx context.Context, req Request) (float64, error)
	// Dynamic reports whether re-discoveries must be re-scored.
	Dynamic() bool
}

// SchedulerProvider is implemented by policies that replace the default
// round-robin frontier selection.
type SchedulerProvider interface {
	Scheduler() Scheduler
}

// VisitObserver is implemented by policies that learn from expanded nodes.
type VisitObserver interface {
	ObserveVisit(id string, degree int)
}

// PathObserver is implemented by policies that learn from reconstructed paths.
type PathObserver interface {
	ObservePath(nodes []string)
}

// Stateful is implemented by policies that keep per-run state (counters,
// random streams, learned evidence). Fresh returns an unused instance with
// the same configuration.
type Stateful interface {
	Fresh() Policy
}

// ForRun returns an instance of p safe to give to one run: a fresh copy when
// p is Stateful, p itself otherwise.
func ForRun(p Policy) Policy {
	if st, ok := p.(Stateful); ok {
		return st.Fresh()
	}
	return p
}

// Names lists every name FromName accepts.
func Names() []string {
	return []string{
		NameDegree, NameFIFO, NameSmallestFrontier,
		NameRandom, NamePathPotential, NameRetrospectiveSalience,
	}
}

// FromName builds a fresh policy by name; seed only affects "random".
func FromName(name string, seed int64) (Policy, error) {
	switch name {
	case NameDegree:
		return DegreeAscending(), nil
	case NameFIFO:
		return FIFO(), nil
	case NameSmallestFrontier:
		return SmallestFrontierFirst(), nil
	case NameRandom:
		return Random(seed), nil
	case NamePathPotential:
		return PathPotential(), nil
	case NameRetrospectiveSalience:
		return RetrospectiveSalience(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
