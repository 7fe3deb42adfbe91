// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: breadth-first walker over an expander.Expander.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/frontiers/expander"
)

// ErrNeighbors is returned when fetching neighbors from the expander fails.
var ErrNeighbors = errors.New("bfs: neighbor lookup error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	x       expander.Expander
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	stopped bool
	res     *Result
}

// BFS runs breadth-first search over x starting from start.
// Returns ErrNilExpander or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for lookup failures,
// ctx.Err() on cancellation, or any hook error.
//
// Complexity: O(V + E) expander calls in the explored region.
func BFS(ctx context.Context, x expander.Expander, start string, opts ...Option) (*Result, error) {
	if x == nil {
		return nil, ErrNilExpander
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if _, err := x.Degree(ctx, start); err != nil {
		if errors.Is(err, expander.ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
		}
		return nil, fmt.Errorf("bfs: start %q: %w", start, err)
	}

	w := &walker{
		x:       x,
		opts:    o,
		ctx:     ctx,
		visited: make(map[string]bool),
		res: &Result{
			Start:  start,
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// Distance returns the hop distance between from and to, or ErrUnreachable.
func Distance(ctx context.Context, x expander.Expander, from, to string) (int, error) {
	res, err := BFS(ctx, x, from, WithStopAt(to))
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, to, from)
	}

	return d, nil
}

// enqueue marks id seen at depth d, records its parent and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	if w.opts.StopAt != "" && id == w.opts.StopAt {
		w.stopped = true
	}
}

// loop processes the queue until empty, stopped, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.stopped {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in the order the expander returns them.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.x.Neighbors(w.ctx, item.id)
	if err != nil {
		if ctxErr := w.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
		if w.stopped {
			return nil
		}
	}

	return nil
}
