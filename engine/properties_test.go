// SPDX-License-Identifier: MIT

package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/engine"
	"github.com/katalvlaran/frontiers/expander"
	"github.com/katalvlaran/frontiers/overlap"
	"github.com/katalvlaran/frontiers/policy"
	"github.com/katalvlaran/frontiers/termination"
)

// assertPathsSampled checks that every path node is sampled and every
// consecutive pair is a traversed edge.
func assertPathsSampled(t *testing.T, res *engine.Result) {
	t.Helper()
	nodes := make(map[string]bool, len(res.SampledNodes))
	for _, n := range res.SampledNodes {
		nodes[n] = true
	}
	edges := make(map[core.Edge]bool, len(res.SampledEdges))
	for _, e := range res.SampledEdges {
		edges[e] = true
	}
	for _, p := range res.Paths {
		for _, n := range p.Nodes {
			assert.True(t, nodes[n], "path node %s not sampled", n)
		}
		for _, e := range p.Edges() {
			assert.True(t, edges[e], "path edge %s not traversed", e)
		}
	}
}

func TestProperty_ConnectedGraphsTerminate(t *testing.T) {
	for _, tname := range termination.Names() {
		for _, pname := range policy.Names() {
			t.Run(tname+"/"+pname, func(t *testing.T) {
				term, err := termination.FromName(tname)
				require.NoError(t, err)
				p, err := policy.FromName(pname, 5)
				require.NoError(t, err)

				res := run(t, grid(t, 5), []string{"0,0", "4,4", "0,4"},
					engine.WithPolicy(p), engine.WithTermination(term))
				assert.Contains(t,
					[]engine.Reason{engine.ReasonOverlapSatisfied, engine.ReasonExhaustion},
					res.Overlap.TerminationReason)
				assertPathsSampled(t, res)
			})
		}
	}
}

func TestProperty_PhysicalEventsMatchIntersection(t *testing.T) {
	seeds := []string{"0,0", "4,4", "0,4", "4,0"}
	res := run(t, grid(t, 5), seeds,
		engine.WithOverlap(overlap.PhysicalMeeting()),
		engine.WithTargetPathsPerPair(1000),
	)
	require.Equal(t, engine.ReasonExhaustion, res.Overlap.TerminationReason)

	counts := make(map[[2]int]int)
	for _, ev := range res.Overlap.Events {
		lo, hi := ev.FrontierA, ev.FrontierB
		if hi < lo {
			lo, hi = hi, lo
		}
		counts[[2]int{lo, hi}]++
	}
	for i := range seeds {
		for j := i + 1; j < len(seeds); j++ {
			inter := intersect(res.VisitedPerFrontier[i], res.VisitedPerFrontier[j])
			assert.Equal(t, inter, counts[[2]int{i, j}], "pair %d-%d", i, j)
		}
	}
}

func intersect(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	n := 0
	for _, x := range b {
		if set[x] {
			n++
		}
	}
	return n
}

func TestProperty_PairwiseNotEarlierThanCommon(t *testing.T) {
	fixtures := map[string]struct {
		x     expander.Expander
		seeds []string
	}{
		"chain": {chain(t), []string{"N0", "N6"}},
		"grid":  {grid(t, 6), []string{"0,0", "5,5"}},
		"star":  {star(t), []string{"S0", "S5"}},
	}
	for name, fx := range fixtures {
		t.Run(name, func(t *testing.T) {
			pw := run(t, fx.x, fx.seeds, engine.WithTermination(termination.FullPairwise()))
			cc := run(t, fx.x, fx.seeds, engine.WithTermination(termination.CommonConvergence()))
			assert.GreaterOrEqual(t, pw.Stats.Iterations, cc.Stats.Iterations)
		})
	}
}

func TestProperty_DegreeAscendingPopOrder(t *testing.T) {
	var popped []string
	obs := &recorder{pop: func(f int, node string) {
		if f == 0 {
			popped = append(popped, node)
		}
	}}
	res := run(t, fan(t), []string{"X", "Y"},
		engine.WithPolicy(policy.DegreeAscending()),
		engine.WithObserver(obs),
	)
	assert.Equal(t, engine.ReasonExhaustion, res.Overlap.TerminationReason)
	assert.Equal(t, []string{"X", "a", "b", "d", "c"}, popped)

	deg := map[string]int{"a": 1, "b": 2, "c": 3, "d": 2}
	for i := 2; i < len(popped); i++ {
		assert.LessOrEqual(t, deg[popped[i-1]], deg[popped[i]])
	}
}

func TestProperty_ThresholdNeverEarly(t *testing.T) {
	th, err := overlap.ThresholdSharing(0.5)
	require.NoError(t, err)

	visited := []map[string]bool{{}, {}}
	var checked int
	obs := &recorder{
		visit: func(f int, node string, _ int) { visited[f][node] = true },
		overlap: func(ev engine.OverlapEvent) {
			a, b := visited[ev.FrontierA], visited[ev.FrontierB]
			inter, union := 0, len(b)
			for n := range a {
				if b[n] {
					inter++
				} else {
					union++
				}
			}
			j := float64(inter) / float64(union)
			assert.GreaterOrEqual(t, j, 0.5, fmt.Sprintf("event %+v at J=%.3f", ev, j))
			checked++
		},
	}
	res := run(t, grid(t, 4), []string{"0,0", "3,3"},
		engine.WithOverlap(th),
		engine.WithObserver(obs),
	)
	assert.Positive(t, checked)
	assert.Equal(t, engine.ReasonOverlapSatisfied, res.Overlap.TerminationReason)
}
