// SPDX-License-Identifier: MIT

package expander

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
)

// Gonum adapts a gonum graph.Graph to Expander. Gonum nodes carry int64 ids;
// labels maps them to the string ids the engine works with.
type Gonum struct {
	g      graph.Graph
	label  map[int64]string
	lookup map[string]int64
}

// FromGonum wraps g. A nil labels map labels every node with its decimal id.
// Nodes missing from a non-nil labels map also fall back to the decimal id.
// The node set is snapshotted here; later additions to g are not visible.
//
// Complexity: O(V) to build the label tables.
func FromGonum(g graph.Graph, labels map[int64]string) (*Gonum, error) {
	if g == nil {
		return nil, ErrNilSource
	}
	x := &Gonum{
		g:      g,
		label:  make(map[int64]string),
		lookup: make(map[string]int64),
	}
	for _, n := range graph.NodesOf(g.Nodes()) {
		name, ok := labels[n.ID()]
		if !ok {
			name = strconv.FormatInt(n.ID(), 10)
		}
		if prev, dup := x.lookup[name]; dup {
			return nil, fmt.Errorf("expander: label %q used by nodes %d and %d", name, prev, n.ID())
		}
		x.label[n.ID()] = name
		x.lookup[name] = n.ID()
	}

	return x, nil
}

// Neighbors implements Expander. Directed graphs return successors only.
func (x *Gonum) Neighbors(ctx context.Context, id string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	nid, ok := x.lookup[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	nodes := graph.NodesOf(x.g.From(nid))
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, x.label[n.ID()])
	}
	sort.Strings(out)

	return out, nil
}

// Degree implements Expander. Directed graphs report in- plus out-degree.
func (x *Gonum) Degree(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	nid, ok := x.lookup[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	deg := x.g.From(nid).Len()
	if d, ok := x.g.(graph.Directed); ok {
		deg += d.To(nid).Len()
	}

	return deg, nil
}

// NodeCount implements Sizer.
func (x *Gonum) NodeCount() int { return len(x.lookup) }
