// SPDX-License-Identifier: MIT

// Package paths materialises cross-frontier paths from overlap events by
// walking parent chains.
//
// For an event with meeting node v between frontiers i and j, the chain of v
// in frontier i (back to seed i) is reversed and spliced with the chain of v
// in frontier j (back to seed j):
//
//	seed_lo → … → v → … → seed_hi
//
// Paths are oriented from the lower frontier index to the higher one, so the
// same meeting seen from either side yields the same node sequence.
// The Reconstructor dedupes by node sequence per frontier pair and enforces
// an optional per-pair cap.
package paths

import (
	"strings"

	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/frontier"
)

// Path is one reconstructed seed-to-seed path.
type Path struct {
	FrontierA   int      `json:"frontier_a"`
	FrontierB   int      `json:"frontier_b"`
	MeetingNode string   `json:"meeting_node"`
	Nodes       []string `json:"nodes"`
}

// Pair returns the frontier pair of the path.
func (p Path) Pair() frontier.PairKey { return frontier.NewPairKey(p.FrontierA, p.FrontierB) }

// Len returns the number of edges.
func (p Path) Len() int {
	if len(p.Nodes) == 0 {
		return 0
	}
	return len(p.Nodes) - 1
}

// Edges returns consecutive node pairs as undirected edges.
func (p Path) Edges() []core.Edge {
	if len(p.Nodes) < 2 {
		return nil
	}
	out := make([]core.Edge, 0, len(p.Nodes)-1)
	for i := 1; i < len(p.Nodes); i++ {
		out = append(out, core.NewEdge(p.Nodes[i-1], p.Nodes[i]))
	}
	return out
}

// Reconstructor builds, dedupes and caps paths for one run.
type Reconstructor struct {
	capPerPair int
	seen       map[frontier.PairKey]map[string]struct{}
	paths      []Path
}

// NewReconstructor returns a Reconstructor keeping at most capPerPair paths
// per frontier pair; capPerPair ≤ 0 means unbounded.
func NewReconstructor(capPerPair int) *Reconstructor {
	return &Reconstructor{
		capPerPair: capPerPair,
		seen:       make(map[frontier.PairKey]map[string]struct{}),
	}
}

// Reconstruct splices the parent chains of ev.MeetingNode. It returns false
// when the node is not visited by both frontiers, which soft overlap
// strategies allow.
// Complexity: O(depth_i + depth_j).
func (r *Reconstructor) Reconstruct(g *frontier.Group, ev frontier.Event) (Path, bool) {
	pair := ev.Pair()
	lo, hi := g.Frontier(pair.Low), g.Frontier(pair.High)

	left := lo.Chain(ev.MeetingNode)
	right := hi.Chain(ev.MeetingNode)
	if left == nil || right == nil {
		return Path{}, false
	}

	nodes := make([]string, 0, len(left)+len(right)-1)
	for i := len(left) - 1; i >= 0; i-- {
		nodes = append(nodes, g.Interner.ID(left[i]))
	}
	for _, o := range right[1:] {
		nodes = append(nodes, g.Interner.ID(o))
	}

	return Path{
		FrontierA:   pair.Low,
		FrontierB:   pair.High,
		MeetingNode: g.Interner.ID(ev.MeetingNode),
		Nodes:       nodes,
	}, true
}

// Add keeps p unless its pair is full or the same node sequence is already
// recorded for that pair. It reports whether p was kept.
func (r *Reconstructor) Add(p Path) bool {
	pair := p.Pair()
	if r.Full(pair) {
		return false
	}
	set, ok := r.seen[pair]
	if !ok {
		set = make(map[string]struct{})
		r.seen[pair] = set
	}
	key := strings.Join(p.Nodes, "\x00")
	if _, dup := set[key]; dup {
		return false
	}
	set[key] = struct{}{}
	r.paths = append(r.paths, p)

	return true
}

// Full reports whether pair has reached the cap.
func (r *Reconstructor) Full(pair frontier.PairKey) bool {
	return r.capPerPair > 0 && len(r.seen[pair]) >= r.capPerPair
}

// Count returns the number of paths kept for pair.
func (r *Reconstructor) Count(pair frontier.PairKey) int { return len(r.seen[pair]) }

// Paths returns kept paths in discovery order. Callers must not modify it.
func (r *Reconstructor) Paths() []Path { return r.paths }
