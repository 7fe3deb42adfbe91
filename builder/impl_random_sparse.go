// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p), Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (ErrNeedRandSource).
//
// Determinism: trials run for i asc, j asc (j > i when undirected, j ≠ i
// when directed), so a fixed seed always yields the same edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frontiers/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n,p).
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, cfg.idFn(i), err)
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}

// trial runs one Bernoulli(p) draw. p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p == 0:
		return false
	case p == 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
