// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete(n), the clique K_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frontiers/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n. Every vertex is a meeting
// candidate for every frontier after one hop.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, cfg.idFn(i), err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
