// SPDX-License-Identifier: MIT

// Package frontiers is a deterministic multi-frontier graph expansion engine.
//
// Given a graph reachable only through neighbor and degree lookups, and a set
// of seed nodes, it grows one search frontier per seed, one node expansion at
// a time, until the frontiers have met according to a chosen overlap strategy
// and a termination strategy is satisfied. The output is the sampled
// subgraph, the seed-to-seed paths found at meeting points, per-frontier
// visit sets, and run statistics.
//
// What is inside
//
//	core/         small thread-safe in-memory graph (vertices, edges, induced subgraphs)
//	builder/      deterministic topologies (path, cycle, star, grid, complete, G(n,p)) and edge-list loading
//	expander/     the Expander interface plus adapters: core graphs, gonum graphs, LRU cache, rate limit, fault injection
//	frontier/     per-frontier state: priority queue, visited bitmap, parent chains, visitor registry, overlap matrix
//	policy/       expansion policies (degree, FIFO, smallest-frontier, random, path-potential, retrospective salience) and schedulers
//	salience/     degree-histogram surprisal used by the retrospective-salience policy
//	overlap/      overlap strategies (physical meeting, Jaccard threshold, sphere intersection)
//	termination/  termination strategies (common convergence, full pairwise, transitive connectivity)
//	paths/        path reconstruction from overlap events
//	engine/       the run loop, options, observers, tracing and result snapshot
//	bfs/          breadth-first search over an Expander, the distance reference for path stretch
//	metrics/      Prometheus observer
//	sweep/        parallel comparison of engine configurations
//	config/       YAML run files
//	cmd/frontierctl  command-line front end
//
// Determinism
//
//	For fixed inputs and options, Run produces identical results: queues break
//	score ties by insertion order, schedulers break ties by frontier index,
//	neighbor lists are sorted, and every random choice is seeded.
//
// Quick start
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Grid(10, 10))
//	eng, _ := engine.New(expander.FromGraph(g), []string{"0,0", "9,9"},
//	    engine.WithPolicy(policy.PathPotential()))
//	res, _ := eng.Run(ctx)
//	fmt.Println(res.Overlap.TerminationReason, len(res.Paths))
package frontiers
