// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/builder"
	"github.com/katalvlaran/frontiers/core"
)

func TestTopologies_Counts(t *testing.T) {
	cases := []struct {
		name  string
		cons  builder.Constructor
		opts  []builder.BuilderOption
		nodes int
		edges int
	}{
		{"path7", builder.Path(7), nil, 7, 6},
		{"cycle5", builder.Cycle(5), nil, 5, 5},
		{"star11", builder.Star(11), nil, 11, 10},
		{"grid4x4", builder.Grid(4, 4), nil, 16, 24},
		{"complete5", builder.Complete(5), nil, 5, 10},
		{"sparse-full", builder.RandomSparse(6, 1), nil, 6, 15},
		{"sparse-empty", builder.RandomSparse(6, 0), nil, 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestStar_HubAndLeaves(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithHubID("H"), builder.WithSymbNumb("S")},
		builder.Star(11))
	require.NoError(t, err)

	deg, err := g.Degree("H")
	require.NoError(t, err)
	assert.Equal(t, 10, deg)
	assert.True(t, g.HasEdge("H", "S0"))
	assert.True(t, g.HasEdge("H", "S9"))
	assert.False(t, g.HasVertex("S10"))
}

func TestPath_SymbolIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("N")}, builder.Path(7))
	require.NoError(t, err)
	nbrs, err := g.NeighborIDs("N3")
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N4"}, nbrs)
}

func TestGrid_IDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(0, 1)))
	assert.True(t, g.HasEdge(builder.GridID(0, 2), builder.GridID(1, 2)))
	assert.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	assert.Equal(t, build().Edges(), build().Edges())
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"star", builder.Star(1), builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"prob", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.cons)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestEdgeList(t *testing.T) {
	src := `# toy graph
a b
b c 0.5
c a

% isolated
z
a b
b a
d d
`
	g, err := builder.BuildGraph(nil, nil, builder.EdgeList(strings.NewReader(src)))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "z"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestEdgeList_ReadError(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.EdgeList(failingReader{}))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, nil, builder.EdgeList(nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
