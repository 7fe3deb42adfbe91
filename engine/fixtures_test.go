// SPDX-License-Identifier: MIT

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/builder"
	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/expander"
)

// chain returns N0–N1–…–N6.
func chain(t testing.TB) *expander.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("N")}, builder.Path(7))
	require.NoError(t, err)
	return expander.FromGraph(g)
}

// grid returns an n×n grid with ids "r,c".
func grid(t testing.TB, n int) *expander.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(n, n))
	require.NoError(t, err)
	return expander.FromGraph(g)
}

// star returns hub H with leaves S0..S9.
func star(t testing.TB) *expander.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithHubID("H"), builder.WithSymbNumb("S")},
		builder.Star(11))
	require.NoError(t, err)
	return expander.FromGraph(g)
}

// fan returns X linked to a,b,c,d with extra edges b–c and c–d, plus an
// isolated Y. Degrees: X=4, a=1, b=2, c=3, d=2.
func fan(t testing.TB) *expander.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"X", "a"}, {"X", "b"}, {"X", "c"}, {"X", "d"}, {"b", "c"}, {"c", "d"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.AddVertex("Y"))
	return expander.FromGraph(g)
}
