// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/frontiers/builder"
)

// ExampleStar builds the hub-avoidance fixture used across the engine tests.
func ExampleStar() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithHubID("H"), builder.WithSymbNumb("S")},
		builder.Star(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices(), g.EdgeCount())
	// Output: [H S0 S1 S2] 3
}
