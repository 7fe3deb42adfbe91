// SPDX-License-Identifier: MIT
//
// File: event.go
// Role: overlap events and the per-pair meeting-node matrix.

package frontier

import "sort"

// Event is one recorded meeting of two frontiers. FrontierA is the frontier
// that was expanding when the overlap was detected.
type Event struct {
	Iteration   int
	FrontierA   int
	FrontierB   int
	MeetingNode uint32
}

// Pair returns the unordered key of the two frontiers.
func (e Event) Pair() PairKey { return NewPairKey(e.FrontierA, e.FrontierB) }

// PairKey identifies an unordered pair of frontiers; Low < High.
type PairKey struct {
	Low  int
	High int
}

// NewPairKey normalises (a, b).
func NewPairKey(a, b int) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}

// Matrix maps frontier pairs to the meeting nodes recorded for them, in
// discovery order without duplicates.
type Matrix struct {
	nodes map[PairKey][]uint32
	seen  map[PairKey]map[uint32]struct{}
}

// NewMatrix returns an empty Matrix.
func NewMatrix() *Matrix {
	return &Matrix{
		nodes: make(map[PairKey][]uint32),
		seen:  make(map[PairKey]map[uint32]struct{}),
	}
}

// Record adds the event's meeting node to its pair and reports whether the
// node was new for that pair.
func (m *Matrix) Record(e Event) bool {
	key := e.Pair()
	set, ok := m.seen[key]
	if !ok {
		set = make(map[uint32]struct{})
		m.seen[key] = set
	}
	if _, dup := set[e.MeetingNode]; dup {
		return false
	}
	set[e.MeetingNode] = struct{}{}
	m.nodes[key] = append(m.nodes[key], e.MeetingNode)

	return true
}

// Nodes returns the meeting nodes of pair in discovery order.
func (m *Matrix) Nodes(pair PairKey) []uint32 { return m.nodes[pair] }

// Has reports whether pair has overlapped at least once.
func (m *Matrix) Has(pair PairKey) bool { return len(m.nodes[pair]) > 0 }

// Pairs returns every overlapping pair sorted by (Low, High).
func (m *Matrix) Pairs() []PairKey {
	out := make([]PairKey, 0, len(m.nodes))
	for k := range m.nodes {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Low != out[j].Low {
			return out[i].Low < out[j].Low
		}
		return out[i].High < out[j].High
	})

	return out
}

// Len returns the number of overlapping pairs.
func (m *Matrix) Len() int { return len(m.nodes) }
