// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: vertex lifecycle and per-vertex queries (AddVertex, HasVertex, Degree,
// Vertices, VertexCount).
// Determinism:
//   - Vertices() returns IDs sorted lexicographically.

package core

import "sort"

// AddVertex inserts a vertex. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and its adjacency bucket. Caller holds g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]struct{})
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Degree returns the number of edge endpoints incident to id.
//
// Undirected graphs count every incident edge once and a self-loop twice.
// Directed graphs return in-degree plus out-degree.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.out[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	deg := len(nbrs)
	if g.directed {
		return deg + g.inDegree[id], nil
	}
	if _, loop := nbrs[id]; loop {
		deg++
	}

	return deg, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
