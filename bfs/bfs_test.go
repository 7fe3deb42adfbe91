// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/bfs"
	"github.com/katalvlaran/frontiers/builder"
	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/expander"
)

func cycle(t testing.TB) *expander.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return expander.FromGraph(g)
}

func grid(t testing.TB, n int) *expander.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(n, n))
	require.NoError(t, err)
	return expander.FromGraph(g)
}

func TestBFS_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := bfs.BFS(ctx, nil, "A")
	assert.ErrorIs(t, err, bfs.ErrNilExpander)

	_, err = bfs.BFS(ctx, cycle(t), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(ctx, cycle(t), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	res, err := bfs.BFS(context.Background(), cycle(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])

	p, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p)

	p, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p)
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq []string
	res, err := bfs.BFS(context.Background(), cycle(t), "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, enq)
	assert.Equal(t, res.Order, deq)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(context.Background(), cycle(t), "A",
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "D" {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	x := grid(t, 5)
	res, err := bfs.BFS(context.Background(), x, "0,0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6) // 1 + 2 + 3
	for _, d := range res.Depth {
		assert.LessOrEqual(t, d, 2)
	}

	res, err = bfs.BFS(context.Background(), x, "0,0",
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr[0] == '0' }))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "0,2", "0,3", "0,4"}, res.Order)
}

func TestDistance(t *testing.T) {
	x := grid(t, 4)
	d, err := bfs.Distance(context.Background(), x, "0,0", "3,3")
	require.NoError(t, err)
	assert.Equal(t, 6, d)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err = bfs.Distance(context.Background(), expander.FromGraph(g), "A", "B")
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestBFS_StopAtIsEarly(t *testing.T) {
	res, err := bfs.BFS(context.Background(), grid(t, 6), "0,0", bfs.WithStopAt("0,1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0"}, res.Order)
	assert.Equal(t, 1, res.Depth["0,1"])
}

func TestBFS_LookupFailure(t *testing.T) {
	x := expander.NewFaulty(cycle(t), func(op expander.Op, id string) error {
		if op == expander.OpNeighbors && id == "B" {
			return errors.New("shard offline")
		}
		return nil
	})
	_, err := bfs.BFS(context.Background(), x, "A")
	assert.ErrorIs(t, err, bfs.ErrNeighbors)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(ctx, grid(t, 3), "0,0")
	assert.ErrorIs(t, err, context.Canceled)
}
