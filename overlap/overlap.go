// SPDX-License-Identifier: MIT

// Package overlap decides, for a node just admitted to the active frontier,
// which other frontiers it overlaps with.
//
// Every Strategy is called after the node has been marked visited by the
// active frontier and claimed in the ownership registry, and returns the
// overlapping frontier indices in ascending order. The engine records one
// event per returned index.
//
//	physical   other frontiers that already visited the node          O(N)
//	threshold  Jaccard(visited_active, visited_other) ≥ t             O(N·V/64)
//	sphere     depth_active(node) ≤ radius_other (≤ optional cap)     O(N)
package overlap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frontiers/frontier"
)

// Strategy names accepted by FromName.
const (
	NamePhysical  = "physical"
	NameThreshold = "threshold"
	NameSphere    = "sphere"
)

// DefaultThreshold is the Jaccard threshold of ThresholdSharing.
const DefaultThreshold = 0.5

var (
	// ErrUnknownStrategy indicates FromName was given an unregistered name.
	ErrUnknownStrategy = errors.New("overlap: unknown strategy")

	// ErrInvalidThreshold indicates a Jaccard threshold outside (0,1].
	ErrInvalidThreshold = errors.New("overlap: threshold must be in (0,1]")

	// ErrInvalidDistanceCap indicates a negative sphere distance cap.
	ErrInvalidDistanceCap = errors.New("overlap: distance cap must be ≥ 0")
)

// Strategy detects overlaps for a newly visited node.
type Strategy interface {
	Name() string
	Detect(g *frontier.Group, active int, node uint32) []int
}

type physical struct{}

// PhysicalMeeting overlaps with every other frontier that has already
// visited node, owner included. Each pair therefore records exactly one
// event per node in the intersection of their visited sets.
func PhysicalMeeting() Strategy { return physical{} }

func (physical) Name() string { return NamePhysical }

func (physical) Detect(g *frontier.Group, active int, node uint32) []int {
	visitors := g.Registry.Visitors(node)
	if len(visitors) < 2 {
		return nil
	}
	out := make([]int, 0, len(visitors)-1)
	for _, v := range visitors {
		if v != active {
			out = append(out, v)
		}
	}
	sortInts(out)

	return out
}

// Threshold is the soft-convergence strategy based on Jaccard similarity.
type Threshold struct {
	t float64
}

// ThresholdSharing overlaps with every other frontier whose visited set has
// Jaccard similarity ≥ t with the active one.
func ThresholdSharing(t float64) (*Threshold, error) {
	if !(t > 0 && t <= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, t)
	}
	return &Threshold{t: t}, nil
}

// Name implements Strategy.
func (*Threshold) Name() string { return NameThreshold }

// Value returns the configured threshold.
func (s *Threshold) Value() float64 { return s.t }

// Detect implements Strategy.
func (s *Threshold) Detect(g *frontier.Group, active int, _ uint32) []int {
	a := g.Frontier(active).VisitedSet()
	var out []int
	for _, f := range g.Frontiers {
		if f.Index() == active || f.Len() == 0 {
			continue
		}
		if Jaccard(a, f.VisitedSet()) >= s.t {
			out = append(out, f.Index())
		}
	}

	return out
}

// Sphere overlaps by comparing hop distances from the seeds.
type Sphere struct {
	cap int
}

// SphereIntersection overlaps with every other frontier whose radius is at
// least the node's depth in the active frontier. A positive maxDistance also
// bounds that depth; 0 disables the bound.
func SphereIntersection(maxDistance int) (*Sphere, error) {
	if maxDistance < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDistanceCap, maxDistance)
	}
	return &Sphere{cap: maxDistance}, nil
}

// Name implements Strategy.
func (*Sphere) Name() string { return NameSphere }

// Detect implements Strategy.
func (s *Sphere) Detect(g *frontier.Group, active int, node uint32) []int {
	depth, ok := g.Frontier(active).Depth(node)
	if !ok {
		return nil
	}
	if s.cap > 0 && depth > s.cap {
		return nil
	}
	var out []int
	for _, f := range g.Frontiers {
		if f.Index() == active {
			continue
		}
		if r, ok := f.Radius(); ok && depth <= r {
			out = append(out, f.Index())
		}
	}

	return out
}

// Names lists every name FromName accepts.
func Names() []string { return []string{NamePhysical, NameThreshold, NameSphere} }

// FromName builds a strategy by name. threshold applies to "threshold" (0
// selects DefaultThreshold); maxDistance applies to "sphere".
func FromName(name string, threshold float64, maxDistance int) (Strategy, error) {
	switch name {
	case NamePhysical:
		return PhysicalMeeting(), nil
	case NameThreshold:
		if threshold == 0 {
			threshold = DefaultThreshold
		}
		s, err := ThresholdSharing(threshold)
		if err != nil {
			return nil, err
		}
		return s, nil
	case NameSphere:
		s, err := SphereIntersection(maxDistance)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// sortInts is insertion sort; visitor lists are at most N long.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
