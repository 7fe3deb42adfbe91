// SPDX-License-Identifier: MIT

package frontier

import "github.com/katalvlaran/frontiers/core"

// Group is the frontier set of one run together with its shared Interner and
// ownership Registry.
type Group struct {
	Frontiers []*State
	Interner  *Interner
	Registry  *Registry
}

// NewGroup interns seeds in order and creates one State per seed.
func NewGroup(seeds []string) *Group {
	g := &Group{
		Frontiers: make([]*State, len(seeds)),
		Interner:  NewInterner(),
		Registry:  NewRegistry(),
	}
	for i, s := range seeds {
		g.Frontiers[i] = NewState(i, g.Interner.Intern(s))
	}

	return g
}

// Len returns the number of frontiers.
func (g *Group) Len() int { return len(g.Frontiers) }

// Frontier returns frontier i.
func (g *Group) Frontier(i int) *State { return g.Frontiers[i] }

// AllExhausted reports whether every frontier is marked exhausted.
func (g *Group) AllExhausted() bool {
	for _, f := range g.Frontiers {
		if !f.Exhausted() {
			return false
		}
	}
	return true
}

// VisitedBy returns the frontiers other than except that have visited node,
// ascending.
func (g *Group) VisitedBy(node uint32, except int) []int {
	var out []int
	for _, f := range g.Frontiers {
		if f.index != except && f.Visited(node) {
			out = append(out, f.index)
		}
	}
	return out
}

// ParentEdge returns the edge through which frontier i first reached node,
// oriented parent to node. It reports false for unvisited nodes and seeds.
func (g *Group) ParentEdge(i int, node uint32) (core.Edge, bool) {
	f := g.Frontiers[i]
	slot, ok := f.Slot(node)
	if !ok {
		return core.Edge{}, false
	}
	e := f.Entry(slot)
	if e.Parent == NoParent {
		return core.Edge{}, false
	}
	return core.Edge{From: g.Interner.ID(e.Edge.From), To: g.Interner.ID(e.Edge.To)}, true
}
