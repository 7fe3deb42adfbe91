// SPDX-License-Identifier: MIT

package termination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/frontier"
	"github.com/katalvlaran/frontiers/termination"
)

func ev(a, b int) frontier.Event { return frontier.Event{FrontierA: a, FrontierB: b} }

func TestSingleFrontierIsTerminal(t *testing.T) {
	g := frontier.NewGroup([]string{"only"})
	for _, name := range termination.Names() {
		s, err := termination.FromName(name)
		require.NoError(t, err)
		assert.True(t, s.ShouldTerminate(g, nil, 0), name)
	}
}

func TestCommonConvergence(t *testing.T) {
	g := frontier.NewGroup([]string{"a", "b", "c"})
	s := termination.CommonConvergence()
	assert.False(t, s.ShouldTerminate(g, nil, 0))

	m := g.Interner.Intern("m")
	g.Frontier(0).Visit(m, frontier.NoParent)
	g.Frontier(1).Visit(m, frontier.NoParent)
	assert.False(t, s.ShouldTerminate(g, nil, 2))

	g.Frontier(2).Visit(m, frontier.NoParent)
	assert.True(t, s.ShouldTerminate(g, nil, 3))
}

func TestFullPairwise_Incremental(t *testing.T) {
	g := frontier.NewGroup([]string{"a", "b", "c"})
	s := termination.FullPairwise()

	events := []frontier.Event{ev(1, 0), ev(0, 1)}
	assert.False(t, s.ShouldTerminate(g, events, 1))
	events = append(events, ev(2, 1))
	assert.False(t, s.ShouldTerminate(g, events, 2))
	events = append(events, ev(0, 2))
	assert.True(t, s.ShouldTerminate(g, events, 3))
}

func TestTransitiveConnectivity(t *testing.T) {
	g := frontier.NewGroup([]string{"a", "b", "c", "d"})
	s := termination.TransitiveConnectivity()
	p := termination.FullPairwise()

	events := []frontier.Event{ev(0, 1), ev(2, 3)}
	assert.False(t, s.ShouldTerminate(g, events, 1))
	events = append(events, ev(1, 2))
	assert.True(t, s.ShouldTerminate(g, events, 2), "chain 0-1-2-3 connects all")
	assert.False(t, p.ShouldTerminate(g, events, 2), "but only 3 of 6 pairs overlapped")
}

func TestForRun_FreshState(t *testing.T) {
	g := frontier.NewGroup([]string{"a", "b"})
	events := []frontier.Event{ev(0, 1)}

	for _, s := range []termination.Strategy{termination.FullPairwise(), termination.TransitiveConnectivity()} {
		require.True(t, s.ShouldTerminate(g, events, 1), s.Name())

		fresh := termination.ForRun(s)
		assert.NotSame(t, s, fresh, s.Name())
		assert.Equal(t, s.Name(), fresh.Name())
		assert.False(t, fresh.ShouldTerminate(g, nil, 1), "%s: no events seen yet", s.Name())
	}

	c := termination.CommonConvergence()
	assert.Equal(t, c, termination.ForRun(c))
}

func TestFromName_Unknown(t *testing.T) {
	_, err := termination.FromName("never")
	assert.ErrorIs(t, err, termination.ErrUnknownStrategy)
}
