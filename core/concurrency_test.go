// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/frontiers/core"
)

// TestConcurrentReadsAndWrites exercises the RWMutex under -race.
func TestConcurrentReadsAndWrites(t *testing.T) {
	g := core.NewGraph()
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("n%d_%d", w, i))
				_, _ = g.NeighborIDs(fmt.Sprintf("w%d", w))
				_, _ = g.Degree(fmt.Sprintf("w%d", w))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, g.EdgeCount())
	assert.Equal(t, workers*(perWorker+1), g.VertexCount())
}
