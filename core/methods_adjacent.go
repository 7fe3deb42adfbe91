// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: neighborhood query used by every expander built on core.Graph.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lexicographically.

package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// ascending. For directed graphs only outgoing neighbors are returned.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), d = number of neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	nbrs, ok := g.out[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}
