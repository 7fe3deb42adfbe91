// SPDX-License-Identifier: MIT

// Package engine runs a multi-frontier expansion: one search frontier per
// seed, grown in lockstep over an expander.Expander until the frontiers meet
// according to a termination strategy.
//
// What
//
//   - Each iteration selects an active frontier (round-robin, or the
//     policy's own scheduler), pops its best candidate, marks it visited,
//     detects overlaps with other frontiers, reconstructs paths for new
//     meetings and queues the node's unvisited neighbors under the priority
//     policy.
//   - Returns a Result: reconstructed paths, sampled nodes and edges, visit
//     order per frontier, statistics and overlap metadata (termination
//     reason, event log, per-pair meeting nodes, iterations, coverage).
//
// Determinism
//
//	Run is single-threaded. Expanders return sorted neighbors, candidates
//	tie-break on insertion order and random policies are seeded, so the same
//	graph, seeds and options yield identical results.
//
// Termination reasons
//
//	overlap-satisfied  the termination strategy (and per-pair path target) is met
//	n1-coverage        a single seed was expanded
//	exhaustion         every frontier queue is empty
//	max-iterations     WithMaxIterations reached
//	time-budget        WithTimeBudget elapsed
//	cancelled          ctx done (Run also returns ctx.Err())
//
// Failure handling
//
//   - Bad input fails New: ErrNilExpander, ErrNoSeeds, ErrDuplicateSeed,
//     ErrSeedNotFound, ErrOptionViolation.
//   - Lookup failures during Run skip the affected node or edge and are
//     counted in Stats.LookupFailures.
//   - Budgets end the run with a reason, not an error.
//
// Usage
//
//	eng, err := engine.New(expander.FromGraph(g), []string{"a", "b"},
//	    engine.WithPolicy(policy.PathPotential()),
//	    engine.WithOverlap(overlap.PhysicalMeeting()),
//	    engine.WithTermination(termination.FullPairwise()),
//	    engine.WithTargetPathsPerPair(5),
//	)
//	res, err := eng.Run(ctx)
//
// Observability
//
//	WithLogger injects a logrus logger (silent by default). Every Run opens an
//	OpenTelemetry span "Engine.Run" and records run/iteration instruments on
//	the global providers. WithObserver receives per-step callbacks (see
//	package metrics for a Prometheus exporter).
package engine
