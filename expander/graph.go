// SPDX-License-Identifier: MIT

package expander

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/frontiers/core"
)

// Graph adapts a *core.Graph to Expander.
type Graph struct {
	g *core.Graph
}

// FromGraph wraps g. A nil graph is reported on first use.
func FromGraph(g *core.Graph) *Graph { return &Graph{g: g} }

// Neighbors implements Expander.
func (x *Graph) Neighbors(ctx context.Context, id string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if x.g == nil {
		return nil, ErrNilSource
	}
	nbrs, err := x.g.NeighborIDs(id)
	if err != nil {
		return nil, mapCoreErr(id, err)
	}

	return nbrs, nil
}

// Degree implements Expander.
func (x *Graph) Degree(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if x.g == nil {
		return 0, ErrNilSource
	}
	deg, err := x.g.Degree(id)
	if err != nil {
		return 0, mapCoreErr(id, err)
	}

	return deg, nil
}

// NodeCount implements Sizer.
func (x *Graph) NodeCount() int {
	if x.g == nil {
		return 0
	}
	return x.g.VertexCount()
}

func mapCoreErr(id string, err error) error {
	if errors.Is(err, core.ErrVertexNotFound) || errors.Is(err, core.ErrEmptyVertexID) {
		return fmt.Errorf("%w: %q: %w", ErrNodeNotFound, id, err)
	}
	return err
}
