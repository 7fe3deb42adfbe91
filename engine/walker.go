// SPDX-License-Identifier: MIT
//
// File: walker.go
// Role: the iteration loop of one Run.
//
// Per iteration:
//  1. select the active frontier (scheduler);
//  2. empty queue → mark exhausted, all exhausted → "exhaustion";
//  3. pop the best candidate;
//  4. already visited in this frontier → discard;
//  5. visit: parent entry, ownership claim;
//  6. overlap detection → events, matrix, live path reconstruction
//     (re-scoring every queue when the policy turns dynamic);
//  7. queue unvisited neighbors under the policy, count traversed edges;
//  8. iteration and degree-bucket statistics;
//  9. termination strategy or per-pair path target;
//  10. iteration cap.
// Cancellation and the time budget are checked before step 1.

package engine

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/frontier"
	"github.com/katalvlaran/frontiers/paths"
	"github.com/katalvlaran/frontiers/policy"
	"github.com/katalvlaran/frontiers/salience"
)

// walker owns the mutable state of one Run.
type walker struct {
	ctx  context.Context
	e    *Engine
	opts Options
	log  *logrus.Entry

	group  *frontier.Group
	events []frontier.Event
	matrix *frontier.Matrix
	recon  *paths.Reconstructor
	edges  map[core.Edge]struct{}

	iterations int
}

func newWalker(ctx context.Context, e *Engine, log *logrus.Entry) *walker {
	return &walker{
		ctx:    ctx,
		e:      e,
		opts:   e.opts,
		log:    log,
		group:  frontier.NewGroup(e.seeds),
		matrix: frontier.NewMatrix(),
		recon:  paths.NewReconstructor(e.opts.TargetPathsPerPair),
		edges:  make(map[core.Edge]struct{}),
	}
}

// loop seeds every queue and iterates until a terminal reason is reached.
func (w *walker) loop() (Reason, error) {
	for _, f := range w.group.Frontiers {
		w.seed(f)
	}

	start := w.opts.Clock()
	for {
		if err := w.ctx.Err(); err != nil {
			return ReasonCancelled, err
		}
		if w.opts.TimeBudget > 0 && w.opts.Clock().Sub(start) >= w.opts.TimeBudget {
			return ReasonTimeBudget, nil
		}

		active := w.opts.Scheduler.Next(w.group)
		if active < 0 {
			return ReasonExhaustion, nil
		}
		f := w.group.Frontier(active)

		c, ok := f.Queue().Pop()
		if !ok {
			f.MarkExhausted()
			w.log.WithField("frontier", active).Debug("frontier exhausted")
			if w.group.AllExhausted() {
				return ReasonExhaustion, nil
			}
			continue
		}

		id := w.group.Interner.ID(c.Node)
		w.e.update(func(s *Stats) { s.Pops++ })
		for _, obs := range w.opts.Observers {
			obs.OnPop(active, id)
		}

		if f.Visited(c.Node) {
			w.e.update(func(s *Stats) { s.Discards++ })
			continue
		}

		w.visit(f, c, id)

		if reason, done := w.satisfied(); done {
			return reason, nil
		}
		if w.opts.MaxIterations > 0 && w.iterations >= w.opts.MaxIterations {
			return ReasonMaxIterations, nil
		}
	}
}

// seed queues a frontier's seed under the policy. Seeds were verified by
// New; a failing score falls back to 0 and is counted.
func (w *walker) seed(f *frontier.State) {
	id := w.group.Interner.ID(f.Seed())
	score, err := w.opts.Policy.Score(w.ctx, w.request(f, f.Seed(), id))
	if err != nil {
		w.lookupFailed(id, err)
		score = 0
	}
	f.Queue().Upsert(f.Seed(), score, frontier.NoParent, false)
}

// visit performs steps 5 to 8 for candidate c of frontier f.
func (w *walker) visit(f *frontier.State, c frontier.Candidate, id string) {
	iteration := w.iterations + 1
	slot, _ := f.Visit(c.Node, c.Parent)
	w.group.Registry.Claim(c.Node, f.Index())
	w.e.update(func(s *Stats) { s.NodesExpanded++ })
	for _, obs := range w.opts.Observers {
		obs.OnVisit(f.Index(), id, iteration)
	}

	for _, other := range w.opts.Overlap.Detect(w.group, f.Index(), c.Node) {
		w.record(frontier.Event{
			Iteration:   iteration,
			FrontierA:   f.Index(),
			FrontierB:   other,
			MeetingNode: c.Node,
		})
	}

	w.expand(f, slot, id)

	deg, err := w.e.x.Degree(w.ctx, id)
	if err != nil {
		w.lookupFailed(id, err)
	} else {
		if vo, ok := w.opts.Policy.(policy.VisitObserver); ok {
			vo.ObserveVisit(id, deg)
		}
	}

	w.iterations = iteration
	w.e.update(func(s *Stats) {
		s.Iterations = iteration
		if err == nil {
			s.DegreeDistribution[salience.Bucket(deg)]++
		}
	})
}

// record appends an event, updates the matrix and reconstructs its path.
func (w *walker) record(ev frontier.Event) {
	w.events = append(w.events, ev)
	w.matrix.Record(ev)

	oe := w.toEvent(ev)
	w.log.WithFields(logrus.Fields{
		"iteration": ev.Iteration,
		"frontier":  ev.FrontierA,
		"other":     ev.FrontierB,
		"node":      oe.MeetingNode,
	}).Debug("overlap")
	for _, obs := range w.opts.Observers {
		obs.OnOverlap(oe)
	}

	if w.recon.Full(ev.Pair()) {
		return
	}
	p, ok := w.recon.Reconstruct(w.group, ev)
	if !ok || !w.recon.Add(p) {
		return
	}
	if po, ok := w.opts.Policy.(policy.PathObserver); ok {
		static := !w.opts.Policy.Dynamic()
		po.ObservePath(p.Nodes)
		if static && w.opts.Policy.Dynamic() {
			w.rescore()
		}
	}
	for _, obs := range w.opts.Observers {
		obs.OnPath(p)
	}
}

// rescore re-keys every queued candidate once the policy turns dynamic, so
// candidates queued under the old scores compete under the new ones.
func (w *walker) rescore() {
	n := 0
	for _, f := range w.group.Frontiers {
		for _, ord := range f.Queue().Nodes() {
			id := w.group.Interner.ID(ord)
			score, err := w.opts.Policy.Score(w.ctx, w.request(f, ord, id))
			if err != nil {
				w.lookupFailed(id, err)
				continue
			}
			f.Queue().Upsert(ord, score, frontier.NoParent, true)
			n++
		}
	}
	w.log.WithField("candidates", n).Debug("policy switched, queues re-scored")
}

// expand queues the unvisited neighbors of the node at slot.
func (w *walker) expand(f *frontier.State, slot int32, id string) {
	nbrs, err := w.e.x.Neighbors(w.ctx, id)
	if err != nil {
		w.lookupFailed(id, err)
		return
	}

	dynamic := w.opts.Policy.Dynamic()
	traversed := 0
	for _, nb := range nbrs {
		ord := w.group.Interner.Intern(nb)
		if f.Visited(ord) {
			continue
		}
		traversed++
		w.edges[core.NewEdge(id, nb)] = struct{}{}

		if f.Queue().Contains(ord) && !dynamic {
			continue
		}
		score, err := w.opts.Policy.Score(w.ctx, w.request(f, ord, nb))
		if err != nil {
			w.lookupFailed(nb, err)
			continue
		}
		f.Queue().Upsert(ord, score, slot, dynamic)
	}
	w.e.update(func(s *Stats) { s.EdgesTraversed += traversed })
}

func (w *walker) request(f *frontier.State, node uint32, id string) policy.Request {
	return policy.Request{
		Group:  w.group,
		Active: f.Index(),
		Node:   node,
		ID:     id,
		Source: w.e.x,
	}
}

// lookupFailed counts a skipped lookup. Failures caused by cancellation are
// not counted; the loop reports them as the termination reason.
func (w *walker) lookupFailed(id string, err error) {
	if w.ctx.Err() != nil {
		return
	}
	w.e.update(func(s *Stats) { s.LookupFailures++ })
	w.log.WithFields(logrus.Fields{"node": id, "error": err}).Debug("lookup failed, skipping")
	for _, obs := range w.opts.Observers {
		obs.OnLookupFailure(id, err)
	}
}

// satisfied evaluates step 9. A positive per-pair target both delays a
// satisfied strategy and stops the run on its own once every pair holds it.
func (w *walker) satisfied() (Reason, bool) {
	met := w.targetMet()
	if !w.opts.Termination.ShouldTerminate(w.group, w.events, w.iterations) {
		if met {
			return ReasonOverlapSatisfied, true
		}
		return "", false
	}
	if w.group.Len() <= 1 {
		return ReasonN1Coverage, true
	}
	if w.opts.TargetPathsPerPair > 0 && !met {
		return "", false
	}

	return ReasonOverlapSatisfied, true
}

// targetMet reports whether TargetPathsPerPair is set and every frontier pair
// holds that many reconstructed paths.
func (w *walker) targetMet() bool {
	t, n := w.opts.TargetPathsPerPair, w.group.Len()
	if t <= 0 || n <= 1 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w.recon.Count(frontier.PairKey{Low: i, High: j}) < t {
				return false
			}
		}
	}
	return true
}

func (w *walker) toEvent(ev frontier.Event) OverlapEvent {
	return OverlapEvent{
		Iteration:   ev.Iteration,
		FrontierA:   ev.FrontierA,
		FrontierB:   ev.FrontierB,
		MeetingNode: w.group.Interner.ID(ev.MeetingNode),
	}
}

// result builds the terminal snapshot.
func (w *walker) result(reason Reason) *Result {
	in := w.group.Interner
	res := &Result{
		Paths:              append([]paths.Path(nil), w.recon.Paths()...),
		VisitedPerFrontier: make([][]string, w.group.Len()),
		Stats:              w.e.Stats(),
	}

	sampled := make(map[string]struct{})
	for i, f := range w.group.Frontiers {
		ids := in.IDs(f.Order())
		res.VisitedPerFrontier[i] = ids
		for _, id := range ids {
			sampled[id] = struct{}{}
		}
	}
	res.SampledNodes = make([]string, 0, len(sampled))
	for id := range sampled {
		res.SampledNodes = append(res.SampledNodes, id)
	}
	sort.Strings(res.SampledNodes)

	res.SampledEdges = make([]core.Edge, 0, len(w.edges))
	for e := range w.edges {
		res.SampledEdges = append(res.SampledEdges, e)
	}
	sort.Slice(res.SampledEdges, func(i, j int) bool {
		a, b := res.SampledEdges[i], res.SampledEdges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	res.Overlap = Metadata{
		TerminationReason: reason,
		Events:            make([]OverlapEvent, len(w.events)),
		Iterations:        w.iterations,
	}
	for i, ev := range w.events {
		res.Overlap.Events[i] = w.toEvent(ev)
	}
	for _, pair := range w.matrix.Pairs() {
		res.Overlap.Matrix = append(res.Overlap.Matrix, PairOverlap{
			Low:   pair.Low,
			High:  pair.High,
			Nodes: in.IDs(w.matrix.Nodes(pair)),
		})
	}
	if n, ok := expanderSize(w.e); ok && n > 0 {
		cov := float64(len(res.SampledNodes)) / float64(n)
		res.Overlap.Coverage = &cov
	}

	return res
}
