// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: one frontier: candidate queue, visited set, parent arena, depths.

package frontier

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Arc is a discovery edge between two ordinals, oriented parent to child.
type Arc struct {
	From uint32
	To   uint32
}

// Entry is one parent-arena record. Parent is the arena slot of the node
// that discovered Node, or NoParent for the seed. Edge is the edge Node was
// reached through; it is the zero Arc for the seed.
type Entry struct {
	Node   uint32
	Parent int32
	Edge   Arc
	Depth  int
}

// State is the search region grown from one seed.
type State struct {
	index int
	seed  uint32

	queue   *Queue
	visited *roaring.Bitmap
	order   []uint32

	arena []Entry
	slot  map[uint32]int32

	radius    int
	exhausted bool
}

// NewState creates frontier index for seed. The seed is not queued; callers
// push it with the score of their policy.
func NewState(index int, seed uint32) *State {
	return &State{
		index:   index,
		seed:    seed,
		queue:   NewQueue(),
		visited: roaring.New(),
		slot:    make(map[uint32]int32),
		radius:  -1,
	}
}

// Index returns the frontier index.
func (s *State) Index() int { return s.index }

// Seed returns the seed ordinal.
func (s *State) Seed() uint32 { return s.seed }

// Queue returns the candidate queue.
func (s *State) Queue() *Queue { return s.queue }

// Visit marks node visited with the given parent slot and returns the new
// arena slot. Visiting an already visited node returns its existing slot and
// false; the arena is never rewritten.
//
// Complexity: O(1) amortized.
func (s *State) Visit(node uint32, parent int32) (int32, bool) {
	if slot, ok := s.slot[node]; ok {
		return slot, false
	}

	e := Entry{Node: node, Parent: parent}
	if parent != NoParent {
		p := s.arena[parent]
		e.Depth = p.Depth + 1
		e.Edge = Arc{From: p.Node, To: node}
	}
	depth := e.Depth
	slot := int32(len(s.arena))
	s.arena = append(s.arena, e)
	s.slot[node] = slot
	s.visited.Add(node)
	s.order = append(s.order, node)
	if depth > s.radius {
		s.radius = depth
	}

	return slot, true
}

// Visited reports whether node has been visited by this frontier.
func (s *State) Visited(node uint32) bool { return s.visited.Contains(node) }

// VisitedSet returns the visited bitmap. Callers must not modify it.
func (s *State) VisitedSet() *roaring.Bitmap { return s.visited }

// Order returns visited ordinals in visit order. Callers must not modify it.
func (s *State) Order() []uint32 { return s.order }

// Len returns the number of visited nodes.
func (s *State) Len() int { return len(s.order) }

// Slot returns the arena slot of a visited node.
func (s *State) Slot(node uint32) (int32, bool) {
	slot, ok := s.slot[node]
	return slot, ok
}

// Entry returns the arena entry at slot.
func (s *State) Entry(slot int32) Entry { return s.arena[slot] }

// Depth returns the hop distance from the seed to a visited node.
func (s *State) Depth(node uint32) (int, bool) {
	slot, ok := s.slot[node]
	if !ok {
		return 0, false
	}
	return s.arena[slot].Depth, true
}

// Radius returns the largest depth visited so far; false before the seed
// is visited.
func (s *State) Radius() (int, bool) {
	if s.radius < 0 {
		return 0, false
	}
	return s.radius, true
}

// Chain returns the parent chain from node back to the seed, node first.
// It returns nil when node is not visited.
// Complexity: O(depth).
func (s *State) Chain(node uint32) []uint32 {
	slot, ok := s.slot[node]
	if !ok {
		return nil
	}
	out := make([]uint32, 0, s.arena[slot].Depth+1)
	for slot != NoParent {
		e := s.arena[slot]
		out = append(out, e.Node)
		slot = e.Parent
	}

	return out
}

// Exhausted reports whether the frontier has been marked exhausted.
func (s *State) Exhausted() bool { return s.exhausted }

// MarkExhausted flags the frontier; it is never selected again.
func (s *State) MarkExhausted() { s.exhausted = true }
