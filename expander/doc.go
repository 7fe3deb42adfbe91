// SPDX-License-Identifier: MIT

// Package expander defines the narrow graph-access contract consumed by the
// expansion engine, plus adapters that back it with concrete data sources.
//
// An Expander answers two questions about a node id: who are its neighbors,
// and what is its degree. Either call may fail per lookup; the engine treats
// such failures as missing data (skip and count) rather than fatal errors.
//
// Adapters:
//
//	FromGraph(*core.Graph)               in-memory graph, sorted neighbors
//	FromGonum(graph.Graph, labels)       any gonum graph, int64 ids mapped to labels
//	NewCached(x, size)                   LRU cache in front of a slow source
//	NewRateLimited(x, limit, burst)      token bucket in front of a remote source
//	NewFaulty(x, fail)                   injects lookup failures (tests, partial data)
//
// Wrappers forward Sizer when the wrapped Expander implements it, so coverage
// reporting survives caching and rate limiting.
//
// Determinism: every adapter returns neighbors in ascending id order.
package expander
