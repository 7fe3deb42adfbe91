// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, unweighted in-memory Graph used as the
// reference data source for multi-frontier expansion.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected by default; WithDirected() stores only "from→to" links.
//   - Simple: parallel edges are rejected (ErrDuplicateEdge), self-loops only
//     with WithLoops().
//   - Deterministic iteration: Vertices(), Edges() and NeighborIDs() all return
//     sorted results, which makes every traversal driven by this graph
//     reproducible for a fixed seed sequence.
//   - A single sync.RWMutex guards vertices and adjacency, so a Graph may be
//     shared by several concurrently running engines (see package sweep).
//
// Core Methods:
//
//	AddVertex(id string) error              // O(1)
//	AddEdge(from, to string) error          // O(1), auto-creates endpoints
//	HasVertex(id string) bool               // O(1)
//	HasEdge(from, to string) bool           // O(1)
//	NeighborIDs(id string) ([]string, error)// O(d·log d), unique, sorted
//	Degree(id string) (int, error)          // O(1)
//	Vertices() []string                     // O(V·log V)
//	Edges() []Edge                          // O(E·log E)
//	VertexCount(), EdgeCount()              // O(1)
//
// Views:
//
//	InducedSubgraph(g, keep) *Graph         // O(V+E), used to materialise sampled subgraphs
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrLoopNotAllowed – self-loop when loops disabled
//	ErrDuplicateEdge  – second edge between the same endpoints
package core
