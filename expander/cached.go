// SPDX-License-Identifier: MIT

package expander

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached memoises neighbor lists and degrees of a slower Expander in two
// bounded LRU caches. Failed lookups are not cached.
type Cached struct {
	src       Expander
	neighbors *lru.Cache[string, []string]
	degrees   *lru.Cache[string, int]
}

// NewCached wraps src with caches holding up to size entries each.
func NewCached(src Expander, size int) (*Cached, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	nc, err := lru.New[string, []string](size)
	if err != nil {
		return nil, fmt.Errorf("expander: neighbor cache: %w", err)
	}
	dc, err := lru.New[string, int](size)
	if err != nil {
		return nil, fmt.Errorf("expander: degree cache: %w", err)
	}

	return &Cached{src: src, neighbors: nc, degrees: dc}, nil
}

// Neighbors implements Expander. The returned slice is shared with the cache
// and must not be modified.
func (c *Cached) Neighbors(ctx context.Context, id string) ([]string, error) {
	if nbrs, ok := c.neighbors.Get(id); ok {
		return nbrs, nil
	}
	nbrs, err := c.src.Neighbors(ctx, id)
	if err != nil {
		return nil, err
	}
	c.neighbors.Add(id, nbrs)

	return nbrs, nil
}

// Degree implements Expander.
func (c *Cached) Degree(ctx context.Context, id string) (int, error) {
	if deg, ok := c.degrees.Get(id); ok {
		return deg, nil
	}
	deg, err := c.src.Degree(ctx, id)
	if err != nil {
		return 0, err
	}
	c.degrees.Add(id, deg)

	return deg, nil
}

// NodeCount forwards to the wrapped source; -1 when it is not a Sizer.
func (c *Cached) NodeCount() int { return forwardSize(c.src) }

// Len returns the number of cached neighbor lists.
func (c *Cached) Len() int { return c.neighbors.Len() }

func forwardSize(x Expander) int {
	if n, ok := Size(x); ok {
		return n
	}
	return -1
}
