// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/frontiers/core"
)

// ExampleGraph_NeighborIDs shows deterministic neighbor ordering.
func ExampleGraph_NeighborIDs() {
	g := core.NewGraph()
	_ = g.AddEdge("hub", "s2")
	_ = g.AddEdge("hub", "s0")
	_ = g.AddEdge("hub", "s1")

	nbrs, _ := g.NeighborIDs("hub")
	deg, _ := g.Degree("hub")
	fmt.Println(nbrs, deg)
	// Output: [s0 s1 s2] 3
}
