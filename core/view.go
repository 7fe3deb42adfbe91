// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: non-mutating views over a Graph.

package core

// InducedSubgraph returns a new Graph containing only the vertices in keep
// and every edge whose endpoints are both kept. IDs in keep that are absent
// from g are ignored. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock on the source only.
func InducedSubgraph(g *Graph, keep []string) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(keep)),
		out:        make(map[string]map[string]struct{}, len(keep)),
		inDegree:   make(map[string]int),
	}
	for _, id := range keep {
		if _, ok := g.vertices[id]; ok {
			out.addVertexLocked(id)
		}
	}

	for from := range out.vertices {
		for to := range g.out[from] {
			if _, ok := out.vertices[to]; !ok {
				continue
			}
			out.out[from][to] = struct{}{}
			if g.directed {
				out.inDegree[to]++
				out.edgeCount++
			} else if from <= to {
				out.edgeCount++
			}
		}
	}

	return out
}
