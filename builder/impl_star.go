// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n): one hub and n-1 leaves.
// Determinism: hub first, then leaves idFn(0..n-2) ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frontiers/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub cfg.hubID and n-1
// leaves. The hub is the sole connector between any two leaves, which makes
// the star the canonical hub-avoidance fixture.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(cfg.hubID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, cfg.hubID, err)
		}
		for i := 0; i < n-1; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddEdge(cfg.hubID, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodStar, cfg.hubID, leaf, err)
			}
		}

		return nil
	}
}
