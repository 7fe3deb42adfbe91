// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an expander.Expander,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Hooks at three stages: OnEnqueue, OnDequeue and OnVisit (which may abort).
//   - Neighbor filtering via WithFilterNeighbor and a MaxDepth limit.
//   - WithStopAt ends the search once a target is discovered; Distance wraps it.
//
// Why
//
//	BFS hop distance is the reference against which the engine's sampled
//	paths are measured: stretch = path edges / BFS distance between seeds.
//
// Determinism
//
//	Neighbors are enqueued in the order the expander returns them (ascending
//	ids for every adapter in this module), so the visit order is reproducible.
//
// Complexity (V, E in the explored region)
//
//   - Time:   O(V + E) expander calls
//   - Memory: O(V) for queue, depth and parent maps
package bfs
