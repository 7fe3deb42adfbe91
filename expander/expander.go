// SPDX-License-Identifier: MIT

package expander

import (
	"context"
	"errors"
)

// ErrNodeNotFound indicates the requested node does not exist in the source.
var ErrNodeNotFound = errors.New("expander: node not found")

// ErrNilSource indicates an adapter was built over a nil source.
var ErrNilSource = errors.New("expander: nil source")

// Expander supplies neighbor lists and degrees for node ids. Implementations
// must be safe for concurrent use when shared between engines.
type Expander interface {
	// Neighbors returns the ids adjacent to id in ascending order. On
	// directed sources only successors are returned, so expansion follows
	// edge direction.
	Neighbors(ctx context.Context, id string) ([]string, error)
	// Degree returns the number of edges incident to id. On directed
	// sources it counts both directions and may exceed len(Neighbors).
	Degree(ctx context.Context, id string) (int, error)
}

// Sizer is implemented by expanders that know the total node count.
type Sizer interface {
	NodeCount() int
}

// Size reports the node count of x when it (or a wrapped source) is a Sizer.
func Size(x Expander) (int, bool) {
	s, ok := x.(Sizer)
	if !ok {
		return 0, false
	}
	n := s.NodeCount()

	return n, n >= 0
}
