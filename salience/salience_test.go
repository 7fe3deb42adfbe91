// SPDX-License-Identifier: MIT

package salience_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/frontiers/salience"
)

func TestBucket(t *testing.T) {
	cases := map[int]int{-1: 0, 0: 0, 1: 1, 2: 2, 3: 2, 4: 4, 7: 4, 8: 8, 1000: 512}
	for deg, want := range cases {
		assert.Equal(t, want, salience.Bucket(deg), "deg=%d", deg)
	}
}

func TestEstimator_Empty(t *testing.T) {
	e := salience.NewEstimator()
	assert.Zero(t, e.Entropy())
	assert.Zero(t, e.Surprisal(3))
	assert.Equal(t, 4.0, e.Score(4, nil))
}

func TestEstimator_EntropyAndSurprisal(t *testing.T) {
	e := salience.NewEstimator()
	e.ObserveDegree(1)
	e.ObserveDegree(2)
	assert.InDelta(t, math.Ln2, e.Entropy(), 1e-12)

	for i := 0; i < 8; i++ {
		e.ObserveDegree(2)
	}
	assert.Greater(t, e.Surprisal(1), e.Surprisal(2), "rare class is more surprising")
	assert.Greater(t, e.Surprisal(64), e.Surprisal(1), "unseen class is most surprising")
	assert.False(t, math.IsInf(e.Surprisal(64), 0))
}

func TestEstimator_OnPathLowersScore(t *testing.T) {
	e := salience.NewEstimator()
	e.ObserveDegree(3)
	e.ObserveDegree(3)
	e.AddPath([]string{"a", "m", "b"})

	assert.True(t, e.OnPath("m"))
	assert.Equal(t, 1, e.Paths())

	near := e.Score(3, []string{"m", "x", "a"})
	far := e.Score(3, []string{"x", "y", "z"})
	assert.Less(t, near, far)
}
