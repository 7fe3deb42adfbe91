// SPDX-License-Identifier: MIT

// Package salience estimates how much information a candidate node is likely
// to contribute to the paths discovered so far.
//
// The Estimator keeps two pieces of evidence gathered during a run:
//
//   - the degree histogram of expanded nodes, bucketed by powers of two;
//   - the set of nodes lying on reconstructed paths.
//
// For a candidate v with degree d and neighbors N(v):
//
//	S(v)     = surprisal(bucket(d)) / H + |N(v) ∩ onPath|
//	Score(v) = d / (1 + S(v))            // lower expands first
//
// surprisal is −ln p(bucket) under the observed histogram with one pseudo-count
// per bucket (so unseen degree classes stay finite), and H is the Shannon
// entropy of the histogram (gonum stat.Entropy), taken as 1 when it is 0.
// Rare degree classes next to known paths therefore score lowest.
package salience

import (
	"math"
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Bucket returns the lower bound of the power-of-two class containing deg:
// 0 for deg ≤ 0, otherwise the largest 2^k ≤ deg.
func Bucket(deg int) int {
	if deg <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(deg)) - 1)
}

// Estimator accumulates degree and path evidence. It is not goroutine-safe.
type Estimator struct {
	hist   map[int]int
	total  int
	onPath map[string]struct{}
	paths  int
}

// NewEstimator returns an empty Estimator.
func NewEstimator() *Estimator {
	return &Estimator{
		hist:   make(map[int]int),
		onPath: make(map[string]struct{}),
	}
}

// ObserveDegree records the degree of an expanded node.
func (e *Estimator) ObserveDegree(deg int) {
	e.hist[Bucket(deg)]++
	e.total++
}

// AddPath marks every node of a reconstructed path.
func (e *Estimator) AddPath(nodes []string) {
	for _, n := range nodes {
		e.onPath[n] = struct{}{}
	}
	e.paths++
}

// OnPath reports whether id lies on any recorded path.
func (e *Estimator) OnPath(id string) bool {
	_, ok := e.onPath[id]
	return ok
}

// Paths returns the number of recorded paths.
func (e *Estimator) Paths() int { return e.paths }

// Entropy returns the Shannon entropy (nats) of the degree histogram.
func (e *Estimator) Entropy() float64 {
	if e.total == 0 {
		return 0
	}
	keys := make([]int, 0, len(e.hist))
	for k := range e.hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	p := make([]float64, len(keys))
	for i, k := range keys {
		p[i] = float64(e.hist[k]) / float64(e.total)
	}

	return stat.Entropy(p)
}

// Surprisal returns −ln p(bucket(deg)) with add-one smoothing over the seen
// buckets plus one slot for unseen ones. It is 0 before any observation.
func (e *Estimator) Surprisal(deg int) float64 {
	if e.total == 0 {
		return 0
	}
	slots := len(e.hist) + 1
	p := float64(e.hist[Bucket(deg)]+1) / float64(e.total+slots)

	return -math.Log(p)
}

// Salience returns S(v) for a node of degree deg with the given neighbors.
func (e *Estimator) Salience(deg int, neighbors []string) float64 {
	h := e.Entropy()
	if h == 0 {
		h = 1
	}
	s := e.Surprisal(deg) / h
	for _, n := range neighbors {
		if e.OnPath(n) {
			s++
		}
	}

	return s
}

// Score returns deg / (1 + S(v)); lower is expanded first.
func (e *Estimator) Score(deg int, neighbors []string) float64 {
	return float64(deg) / (1 + e.Salience(deg, neighbors))
}
