// SPDX-License-Identifier: MIT
//
// File: impl_path.go
// Role: Path(n) and Cycle(n).
// Determinism: vertices idFn(0..n-1) in order; edges i–i+1 ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frontiers/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		return chain(methodPath, g, cfg, n)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := chain(methodCycle, g, cfg, n); err != nil {
			return err
		}
		u, v := cfg.idFn(n-1), cfg.idFn(0)
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, u, v, err)
		}

		return nil
	}
}

// chain adds idFn(0..n-1) and the n-1 consecutive edges.
func chain(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for i := 0; i+1 < n; i++ {
		u, v := cfg.idFn(i), cfg.idFn(i+1)
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
		}
	}

	return nil
}
