// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) with 4-neighborhood.
//
// Vertex IDs use the fixed scheme "r,c" (row-major); cfg.idFn is ignored so
// coordinates stay explicit.
// Determinism: row-major vertices; for each (r,c) emit Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frontiers/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := g.AddEdge(u, GridID(r, c+1)); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, u, GridID(r, c+1), err)
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(u, GridID(r+1, c)); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, u, GridID(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}
