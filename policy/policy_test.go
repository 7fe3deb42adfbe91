// SPDX-License-Identifier: MIT

package policy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontiers/builder"
	"github.com/katalvlaran/frontiers/expander"
	"github.com/katalvlaran/frontiers/frontier"
	"github.com/katalvlaran/frontiers/policy"
)

// pathSetup returns P_5 (N0..N4) with frontiers seeded at N0 and N4, where
// frontier 1 has already visited N4 and N3.
func pathSetup(t *testing.T) (*frontier.Group, expander.Expander) {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("N")}, builder.Path(5))
	require.NoError(t, err)

	grp := frontier.NewGroup([]string{"N0", "N4"})
	f1 := grp.Frontier(1)
	s, _ := f1.Visit(f1.Seed(), frontier.NoParent)
	f1.Visit(grp.Interner.Intern("N3"), s)

	return grp, expander.FromGraph(g)
}

func req(grp *frontier.Group, x expander.Expander, active int, id string) policy.Request {
	return policy.Request{Group: grp, Active: active, Node: grp.Interner.Intern(id), ID: id, Source: x}
}

func TestDegreeAscending(t *testing.T) {
	grp, x := pathSetup(t)
	p := policy.DegreeAscending()
	s, err := p.Score(context.Background(), req(grp, x, 0, "N0"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)
	s, err = p.Score(context.Background(), req(grp, x, 0, "N2"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, s)
	assert.False(t, p.Dynamic())

	_, err = p.Score(context.Background(), req(grp, x, 0, "ghost"))
	assert.ErrorIs(t, err, expander.ErrNodeNotFound)
}

func TestFIFO_Monotonic(t *testing.T) {
	grp, x := pathSetup(t)
	p := policy.FIFO()
	var last float64 = -1
	for _, id := range []string{"N2", "N1", "N0"} {
		s, err := p.Score(context.Background(), req(grp, x, 0, id))
		require.NoError(t, err)
		assert.Greater(t, s, last)
		last = s
	}
}

func TestRandom_Seeded(t *testing.T) {
	grp, x := pathSetup(t)
	draw := func(seed int64) []float64 {
		p := policy.Random(seed)
		out := make([]float64, 5)
		for i := range out {
			out[i], _ = p.Score(context.Background(), req(grp, x, 0, "N1"))
		}
		return out
	}
	assert.Equal(t, draw(7), draw(7))
	assert.NotEqual(t, draw(7), draw(8))
	assert.Equal(t, draw(0), draw(policy.DefaultRandomSeed))
}

func TestPathPotential(t *testing.T) {
	grp, x := pathSetup(t)
	p := policy.PathPotential()
	assert.True(t, p.Dynamic())

	// N2 has neighbors N1, N3; N3 is visited by frontier 1.
	s, err := p.Score(context.Background(), req(grp, x, 0, "N2"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)

	// From frontier 1's own point of view N3 does not count.
	s, err = p.Score(context.Background(), req(grp, x, 1, "N2"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, s)

	s, err = p.Score(context.Background(), req(grp, x, 0, "N1"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, s)
}

func TestRetrospectiveSalience_Switch(t *testing.T) {
	grp, x := pathSetup(t)
	p := policy.RetrospectiveSalience()
	assert.False(t, p.Dynamic())

	s, err := p.Score(context.Background(), req(grp, x, 0, "N2"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, s, "phase 1 is degree order")

	p.ObserveVisit("N0", 1)
	p.ObserveVisit("N1", 2)
	p.ObservePath([]string{"N0", "N1", "N2", "N3", "N4"})
	assert.True(t, p.Switched())
	assert.True(t, p.Dynamic())
	assert.True(t, p.Estimator().OnPath("N3"))

	s, err = p.Score(context.Background(), req(grp, x, 0, "N2"))
	require.NoError(t, err)
	assert.Less(t, s, 2.0, "on-path neighbors lower the score")
}

func TestFromName(t *testing.T) {
	for _, name := range policy.Names() {
		p, err := policy.FromName(name, 3)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}
	_, err := policy.FromName("dijkstra", 0)
	assert.ErrorIs(t, err, policy.ErrUnknownPolicy)
}

func TestSchedulers(t *testing.T) {
	grp := frontier.NewGroup([]string{"a", "b", "c"})

	rr := policy.RoundRobin()
	assert.Equal(t, []int{0, 1, 2, 0}, []int{rr.Next(grp), rr.Next(grp), rr.Next(grp), rr.Next(grp)})
	grp.Frontier(1).MarkExhausted()
	assert.Equal(t, 2, rr.Next(grp))
	assert.Equal(t, 0, rr.Next(grp))

	sf := policy.SchedulerFor(policy.SmallestFrontierFirst())
	f0 := grp.Frontier(0)
	f0.Visit(f0.Seed(), frontier.NoParent)
	assert.Equal(t, 2, sf.Next(grp))
	f2 := grp.Frontier(2)
	f2.Visit(f2.Seed(), frontier.NoParent)
	assert.Equal(t, 0, sf.Next(grp), "tie goes to the lowest index")

	grp.Frontier(0).MarkExhausted()
	grp.Frontier(2).MarkExhausted()
	assert.Equal(t, -1, sf.Next(grp))
	assert.Equal(t, -1, rr.Next(grp))

	def := policy.SchedulerFor(policy.FIFO())
	fresh := frontier.NewGroup([]string{"a", "b"})
	assert.Equal(t, []int{0, 1, 0}, []int{def.Next(fresh), def.Next(fresh), def.Next(fresh)})
}

func TestForRun_FreshState(t *testing.T) {
	grp, x := pathSetup(t)
	ctx := context.Background()

	r := policy.Random(42)
	first, err := r.Score(ctx, req(grp, x, 0, "N1"))
	require.NoError(t, err)
	_, err = r.Score(ctx, req(grp, x, 0, "N1"))
	require.NoError(t, err)

	fresh := policy.ForRun(r)
	assert.NotSame(t, r, fresh)
	again, err := fresh.Score(ctx, req(grp, x, 0, "N1"))
	require.NoError(t, err)
	assert.Equal(t, first, again, "a fresh random policy restarts its stream")

	f := policy.FIFO()
	a, _ := f.Score(ctx, req(grp, x, 0, "N1"))
	_, _ = f.Score(ctx, req(grp, x, 0, "N1"))
	b, _ := policy.ForRun(f).Score(ctx, req(grp, x, 0, "N1"))
	assert.Equal(t, a, b)

	s := policy.RetrospectiveSalience()
	s.ObservePath([]string{"N0", "N1", "N2"})
	require.True(t, s.Switched())
	sf, ok := policy.ForRun(s).(*policy.Salience)
	require.True(t, ok)
	assert.False(t, sf.Switched())
	assert.Zero(t, sf.Estimator().Paths())

	d := policy.DegreeAscending()
	assert.Equal(t, d, policy.ForRun(d))

	rr := policy.RoundRobin()
	grp3 := frontier.NewGroup([]string{"a", "b", "c"})
	rr.Next(grp3)
	assert.Equal(t, 0, policy.SchedulerForRun(rr).Next(grp3))
	assert.Equal(t, 1, rr.Next(grp3))
}
