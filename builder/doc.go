// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the graph fixtures
// and datasets that multi-frontier expansion runs over.
//
// A Constructor is a closure func(*core.Graph, builderConfig) error. BuildGraph
// creates a core.Graph, resolves the builder configuration from BuilderOption
// values and applies every Constructor in order:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSymbNumb("N")},
//	    builder.Path(7))              // N0–N1–…–N6
//
// Topologies:
//
//	Path(n)            n ≥ 2   vertices idFn(0..n-1), edges i–i+1
//	Cycle(n)           n ≥ 3   Path(n) plus the closing edge
//	Star(n)            n ≥ 2   hub (WithHubID, default "Center") + n-1 leaves idFn(0..n-2)
//	Grid(rows, cols)   ≥ 1×1   IDs "r,c", 4-neighborhood
//	Complete(n)        n ≥ 1   K_n
//	RandomSparse(n, p)         Erdős–Rényi G(n,p); needs WithSeed/WithRand when 0<p<1
//
// Datasets:
//
//	EdgeList(r io.Reader)      whitespace separated "u v" lines, '#' comments
//
// Option constructors panic on meaningless input (nil functions); Constructors
// never panic and return errors that wrap the package sentinels, so callers
// branch with errors.Is.
//
// Determinism: vertex and edge emission order is fixed for given parameters;
// stochastic builders are reproducible for a fixed seed.
package builder
