// SPDX-License-Identifier: MIT

// Package policy provides the node-priority policies and frontier schedulers
// of a multi-frontier expansion.
//
// A Policy scores a candidate for the frontier considering it; lower scores
// expand first and equal scores pop in insertion order. Non-dynamic policies
// score a node once, on first discovery. Dynamic policies are asked again on
// every re-discovery and may re-key the queued entry.
//
//	degree                  deg(v)
//	fifo                    insertion counter (plain BFS)
//	smallest-frontier       fifo within a frontier; SmallestFirst scheduler
//	random                  seeded uniform draw
//	path-potential          deg(v) / (1 + pathPotential(v))      dynamic
//	retrospective-salience  degree, then salience after the first path (dynamic once switched)
//
// A Scheduler picks the active frontier of each iteration. RoundRobin is the
// default; a Policy may bring its own by implementing SchedulerProvider.
//
// Policies are stateful and belong to a single run.
package policy
