// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle and queries (AddEdge, HasEdge, Edges, EdgeCount).
// Determinism:
//   - Edges() is sorted by (From, To).

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects from and to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Lock, ensure both vertices, reject duplicates.
//  3. Link from→to; mirror to→from unless the graph is directed.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, dup := g.out[from][to]; dup {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}

	g.out[from][to] = struct{}{}
	if g.directed {
		g.inDegree[to]++
	} else if from != to {
		g.out[to][from] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge from→to exists. In undirected graphs the
// order of endpoints does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[from][to]

	return ok
}

// Edges returns every edge exactly once, sorted by (From, To). Undirected
// edges are reported in normalised form (From <= To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.out {
		for to := range nbrs {
			if g.directed {
				out = append(out, Edge{From: from, To: to})
				continue
			}
			if from <= to {
				out = append(out, Edge{From: from, To: to})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
