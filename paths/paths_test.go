// SPDX-License-Identifier: MIT

package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/frontier"
	"github.com/katalvlaran/frontiers/paths"
)

// chainGroup builds two frontiers that grew along N0..N3 and N6..N3.
func chainGroup() *frontier.Group {
	g := frontier.NewGroup([]string{"N0", "N6"})
	grow := func(f int, ids ...string) {
		st := g.Frontier(f)
		parent := frontier.NoParent
		for _, id := range ids {
			parent, _ = st.Visit(g.Interner.Intern(id), parent)
		}
	}
	grow(0, "N0", "N1", "N2", "N3")
	grow(1, "N6", "N5", "N4", "N3")

	return g
}

func TestReconstruct_Splice(t *testing.T) {
	g := chainGroup()
	r := paths.NewReconstructor(0)
	m, _ := g.Interner.Lookup("N3")

	p, ok := r.Reconstruct(g, frontier.Event{FrontierA: 1, FrontierB: 0, MeetingNode: m})
	require.True(t, ok)
	assert.Equal(t, []string{"N0", "N1", "N2", "N3", "N4", "N5", "N6"}, p.Nodes)
	assert.Equal(t, 0, p.FrontierA, "oriented low to high")
	assert.Equal(t, "N3", p.MeetingNode)
	assert.Equal(t, 6, p.Len())
	assert.Equal(t, core.Edge{From: "N3", To: "N4"}, p.Edges()[3])
}

func TestReconstruct_NotVisitedByBoth(t *testing.T) {
	g := chainGroup()
	r := paths.NewReconstructor(0)
	n1, _ := g.Interner.Lookup("N1")
	_, ok := r.Reconstruct(g, frontier.Event{FrontierA: 0, FrontierB: 1, MeetingNode: n1})
	assert.False(t, ok)
}

func TestAdd_DedupeAndCap(t *testing.T) {
	r := paths.NewReconstructor(2)
	p := paths.Path{FrontierA: 0, FrontierB: 1, MeetingNode: "m", Nodes: []string{"a", "m", "b"}}
	assert.True(t, r.Add(p))
	assert.False(t, r.Add(p), "same sequence")

	q := paths.Path{FrontierA: 0, FrontierB: 1, MeetingNode: "n", Nodes: []string{"a", "n", "b"}}
	assert.True(t, r.Add(q))
	pair := frontier.NewPairKey(1, 0)
	assert.True(t, r.Full(pair))
	assert.False(t, r.Add(paths.Path{FrontierA: 0, FrontierB: 1, Nodes: []string{"a", "x", "b"}}))
	assert.Equal(t, 2, r.Count(pair))

	other := paths.Path{FrontierA: 0, FrontierB: 2, Nodes: []string{"a", "m", "b"}}
	assert.True(t, r.Add(other), "dedupe is per pair")
	assert.Len(t, r.Paths(), 3)
	assert.Equal(t, "m", r.Paths()[0].MeetingNode)
}

func TestPath_Degenerate(t *testing.T) {
	assert.Zero(t, paths.Path{}.Len())
	assert.Nil(t, paths.Path{Nodes: []string{"a"}}.Edges())
}
