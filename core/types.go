// SPDX-License-Identifier: MIT

// Package core defines the Graph and Edge types, graph options and sentinel
// errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge is a connection between two vertices. For undirected graphs the pair is
// normalised so that From <= To; see NewEdge.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewEdge returns the undirected, order-independent key for the pair (a, b).
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{From: a, To: b}
}

// String renders the edge as "from-to".
func (e Edge) String() string { return e.From + "-" + e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (from→to).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure.
//
// out holds forward adjacency; for undirected graphs every edge is mirrored.
// inDegree is maintained only for directed graphs so Degree stays O(1).
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	vertices  map[string]struct{}
	out       map[string]map[string]struct{}
	inDegree  map[string]int
	edgeCount int
}

// NewGraph creates an empty Graph. By default it is undirected and loop-free.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]struct{}),
		inDegree: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
