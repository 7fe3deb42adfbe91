// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/paths"
)

// Reason explains why a run terminated.
type Reason string

// Termination reasons.
const (
	ReasonOverlapSatisfied Reason = "overlap-satisfied"
	ReasonN1Coverage       Reason = "n1-coverage"
	ReasonMaxIterations    Reason = "max-iterations"
	ReasonExhaustion       Reason = "exhaustion"
	ReasonTimeBudget       Reason = "time-budget"
	ReasonCancelled        Reason = "cancelled"
)

// State is the lifecycle stage of an Engine.
type State int

// Engine states.
const (
	StateReady State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Stats counts the work of a run. Counters only grow.
//
// Pops = NodesExpanded + Discards: every queue pop either expands a node or
// is discarded because the frontier already visited it.
type Stats struct {
	NodesExpanded  int `json:"nodes_expanded"`
	EdgesTraversed int `json:"edges_traversed"`
	Iterations     int `json:"iterations"`
	Pops           int `json:"pops"`
	Discards       int `json:"discards"`
	LookupFailures int `json:"lookup_failures"`
	// DegreeDistribution maps power-of-two degree buckets (0,1,2,4,...) to
	// the number of expanded nodes in them.
	DegreeDistribution map[int]int `json:"degree_distribution"`
}

func (s Stats) clone() Stats {
	out := s
	out.DegreeDistribution = make(map[int]int, len(s.DegreeDistribution))
	for k, v := range s.DegreeDistribution {
		out.DegreeDistribution[k] = v
	}
	return out
}

// OverlapEvent is one recorded meeting. FrontierA was expanding.
type OverlapEvent struct {
	Iteration   int    `json:"iteration"`
	FrontierA   int    `json:"frontier_a"`
	FrontierB   int    `json:"frontier_b"`
	MeetingNode string `json:"meeting_node"`
}

// PairOverlap lists the meeting nodes of one frontier pair (Low < High) in
// discovery order.
type PairOverlap struct {
	Low   int      `json:"low"`
	High  int      `json:"high"`
	Nodes []string `json:"nodes"`
}

// Metadata describes how a run ended and how the frontiers met.
type Metadata struct {
	TerminationReason Reason         `json:"termination_reason"`
	Events            []OverlapEvent `json:"events"`
	Matrix            []PairOverlap  `json:"matrix"`
	Iterations        int            `json:"iterations"`
	// Coverage is |SampledNodes| / |V|, present when the expander knows |V|.
	Coverage *float64 `json:"coverage,omitempty"`
}

// Result is the terminal snapshot of a run. It is built once and must be
// treated as read-only.
type Result struct {
	Paths              []paths.Path `json:"paths"`
	SampledNodes       []string     `json:"sampled_nodes"`
	SampledEdges       []core.Edge  `json:"sampled_edges"`
	VisitedPerFrontier [][]string   `json:"visited_per_frontier"`
	Stats              Stats        `json:"stats"`
	Overlap            Metadata     `json:"overlap"`
}

// Observer receives callbacks while a run progresses. Callbacks run on the
// Run goroutine and must not block.
type Observer interface {
	// OnPop fires for every queue pop, including discards.
	OnPop(frontier int, node string)
	// OnVisit fires when a node is newly expanded.
	OnVisit(frontier int, node string, iteration int)
	// OnOverlap fires for every recorded event.
	OnOverlap(ev OverlapEvent)
	// OnPath fires for every path kept by the reconstructor.
	OnPath(p paths.Path)
	// OnLookupFailure fires when an expander lookup is skipped.
	OnLookupFailure(node string, err error)
	// OnTerminate fires once with the final reason and stats.
	OnTerminate(reason Reason, stats Stats)
}

// NopObserver implements Observer with no-ops; embed it to override a subset.
type NopObserver struct{}

func (NopObserver) OnPop(int, string)             {}
func (NopObserver) OnVisit(int, string, int)      {}
func (NopObserver) OnOverlap(OverlapEvent)        {}
func (NopObserver) OnPath(paths.Path)             {}
func (NopObserver) OnLookupFailure(string, error) {}
func (NopObserver) OnTerminate(Reason, Stats)     {}
