// SPDX-License-Identifier: MIT

package sweep_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/builder"
	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/engine"
	"github.com/katalvlaran/frontiers/expander"
	"github.com/katalvlaran/frontiers/policy"
	"github.com/katalvlaran/frontiers/sweep"
)

func grid(t *testing.T, n int) *expander.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(n, n))
	require.NoError(t, err)
	return expander.FromGraph(g)
}

func byPolicy(name string) sweep.Variant {
	return sweep.Variant{
		Name: name,
		Options: func() ([]engine.Option, error) {
			p, err := policy.FromName(name, 7)
			if err != nil {
				return nil, err
			}
			return []engine.Option{engine.WithPolicy(p)}, nil
		},
	}
}

func TestCompare_AllPolicies(t *testing.T) {
	var variants []sweep.Variant
	for _, name := range policy.Names() {
		variants = append(variants, byPolicy(name))
	}
	seeds := []string{"0,0", "5,5", "0,5"}

	got, err := sweep.Compare(context.Background(), grid(t, 6), seeds, variants, sweep.WithLimit(2))
	require.NoError(t, err)
	require.Len(t, got, len(variants))
	for i, s := range got {
		assert.Equal(t, variants[i].Name, s.Name)
		assert.Equal(t, engine.ReasonOverlapSatisfied, s.Reason, s.Name)
		assert.GreaterOrEqual(t, s.Paths, 3, s.Name)
		assert.GreaterOrEqual(t, s.MeanStretch, 1.0, s.Name)
		assert.Positive(t, s.SampledNodes)
	}
}

func TestCompare_Errors(t *testing.T) {
	x := grid(t, 3)
	ctx := context.Background()

	_, err := sweep.Compare(ctx, x, []string{"0,0"}, nil)
	assert.ErrorIs(t, err, sweep.ErrNoVariants)

	_, err = sweep.Compare(ctx, x, []string{"0,0"}, []sweep.Variant{byPolicy("fifo"), byPolicy("fifo")})
	assert.ErrorIs(t, err, sweep.ErrDuplicateVariant)

	_, err = sweep.Compare(ctx, x, []string{"0,0", "2,2"}, []sweep.Variant{byPolicy("fifo"), byPolicy("nope")})
	assert.ErrorIs(t, err, policy.ErrUnknownPolicy)

	_, err = sweep.Compare(ctx, x, []string{"0,0", "9,9"}, []sweep.Variant{byPolicy("fifo")})
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = sweep.Compare(cancelled, x, []string{"0,0", "2,2"}, []sweep.Variant{byPolicy("fifo")})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSeedDistances(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddVertex("z"))

	d, err := sweep.SeedDistances(context.Background(), expander.FromGraph(g), []string{"a", "c", "z"})
	require.NoError(t, err)
	assert.Equal(t, sweep.Distances{{0, 1}: 2}, d)
}

func TestMeanStretch_Chain(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("N")}, builder.Path(7))
	require.NoError(t, err)
	x := expander.FromGraph(g)
	seeds := []string{"N0", "N6"}

	eng, err := engine.New(x, seeds)
	require.NoError(t, err)
	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	d, err := sweep.SeedDistances(context.Background(), x, seeds)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sweep.MeanStretch(res, seeds, d), 1e-12)
	assert.Zero(t, sweep.MeanStretch(&engine.Result{}, seeds, d))
}

func TestBest(t *testing.T) {
	in := []sweep.Summary{
		{Name: "c", Iterations: 10, MeanStretch: 1.2},
		{Name: "a", Iterations: 8, MeanStretch: 1.5},
		{Name: "b", Iterations: 10, MeanStretch: 1.0},
	}
	got := sweep.Best(in)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, "c", in[0].Name, "input untouched")
}
