// SPDX-License-Identifier: MIT
//
// File: queue.go
// Role: per-frontier candidate queue.
//
// Ordering: lowest score first; equal scores pop in insertion order (seq).
// A node occupies at most one entry. Upsert on a queued node keeps the
// original seq and parent, and only changes the score when asked to re-key.

package frontier

import (
	"container/heap"
	"sort"
)

// NoParent marks a candidate (or arena entry) without a parent: a seed.
const NoParent int32 = -1

// Candidate is one queued node.
type Candidate struct {
	Node   uint32
	Score  float64
	Seq    uint64
	Parent int32 // arena slot of the discovering node in this frontier
	index  int
}

// Queue is a min-heap of candidates with O(1) membership.
type Queue struct {
	h       candidateHeap
	pos     map[uint32]*Candidate
	nextSeq uint64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{pos: make(map[uint32]*Candidate)}
}

// Upsert inserts node with score and parent, or updates an existing entry.
// For an existing entry the score changes only when rekey is true; seq and
// parent are always kept. It reports whether a new entry was inserted.
//
// Complexity: O(log n).
func (q *Queue) Upsert(node uint32, score float64, parent int32, rekey bool) bool {
	if c, ok := q.pos[node]; ok {
		if rekey && c.Score != score {
			c.Score = score
			heap.Fix(&q.h, c.index)
		}
		return false
	}

	c := &Candidate{Node: node, Score: score, Seq: q.nextSeq, Parent: parent}
	q.nextSeq++
	heap.Push(&q.h, c)
	q.pos[node] = c

	return true
}

// Pop removes and returns the best candidate.
// Complexity: O(log n).
func (q *Queue) Pop() (Candidate, bool) {
	if q.h.Len() == 0 {
		return Candidate{}, false
	}
	c := heap.Pop(&q.h).(*Candidate)
	delete(q.pos, c.Node)

	return *c, true
}

// Peek returns the best candidate without removing it.
func (q *Queue) Peek() (Candidate, bool) {
	if q.h.Len() == 0 {
		return Candidate{}, false
	}
	return *q.h[0], true
}

// Contains reports whether node is queued.
func (q *Queue) Contains(node uint32) bool {
	_, ok := q.pos[node]
	return ok
}

// Score returns the current score of a queued node.
func (q *Queue) Score(node uint32) (float64, bool) {
	c, ok := q.pos[node]
	if !ok {
		return 0, false
	}
	return c.Score, true
}

// Nodes returns the queued nodes in insertion order.
// Complexity: O(n log n).
func (q *Queue) Nodes() []uint32 {
	cs := make([]*Candidate, len(q.h))
	copy(cs, q.h)
	sort.Slice(cs, func(i, j int) bool { return cs[i].Seq < cs[j].Seq })
	out := make([]uint32, len(cs))
	for i, c := range cs {
		out[i] = c.Node
	}
	return out
}

// Len returns the number of queued candidates.
func (q *Queue) Len() int { return q.h.Len() }

// candidateHeap implements heap.Interface over (Score, Seq).
type candidateHeap []*Candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Seq < h[j].Seq
}

func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *candidateHeap) Push(x any) {
	c := x.(*Candidate)
	c.index = len(*h)
	*h = append(*h, c)
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.index = -1
	*h = old[:n-1]

	return c
}
