// SPDX-License-Identifier: MIT

// Package frontier holds the per-seed search state of a multi-frontier
// expansion and the structures shared between frontiers of one run.
//
// Node ids are interned once per run into dense uint32 ordinals (Interner),
// which lets every visited set be a roaring bitmap: membership is O(1) and
// the set algebra used by overlap detection and termination (And, Or,
// FastAnd) runs over compressed containers instead of hash maps.
//
// A State is one frontier:
//
//	queue    candidate min-heap on (score, insertion seq)
//	visited  roaring bitmap of ordinals plus visit order
//	arena    dense parent entries {node, parent slot, depth}; seed has parent -1
//	radius   max recorded depth, always populated
//
// A node receives an arena entry at most once per frontier (on first visit),
// so parent chains are acyclic by construction.
//
// Group ties the States of one run to the Interner and the ownership Registry.
// Event and Matrix record overlap discoveries.
//
// Nothing in this package is goroutine-safe; a Group is owned by exactly one
// engine run.
package frontier
