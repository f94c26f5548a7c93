package aggregation

import (
	"sort"

	"github.com/masmgr/gitlanes/internal/layout"
)

// LaneMetrics holds aggregated metrics for a single lane.
type LaneMetrics struct {
	Lane        int
	Color       string
	CommitCount int
	MergeCount  int
	FirstOrder  int // Oldest commit on the lane
	LastOrder   int // Newest commit on the lane
	Branches    map[string]struct{}
}

// NewLaneMetrics creates a new LaneMetrics instance.
func NewLaneMetrics(lane int, color string) *LaneMetrics {
	return &LaneMetrics{
		Lane:       lane,
		Color:      color,
		FirstOrder: -1,
		LastOrder:  -1,
		Branches:   make(map[string]struct{}),
	}
}

// Span returns how many rows the lane covers from its oldest to its newest commit.
func (m *LaneMetrics) Span() int {
	if m.CommitCount == 0 {
		return 0
	}
	return m.LastOrder - m.FirstOrder + 1
}

// BranchNames returns the branch names seen on the lane, sorted.
func (m *LaneMetrics) BranchNames() []string {
	names := make([]string, 0, len(m.Branches))
	for name := range m.Branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddNode adds a laid out commit to this lane's metrics.
func (m *LaneMetrics) AddNode(n layout.LayoutNode) {
	m.CommitCount++
	if n.IsMerge() {
		m.MergeCount++
	}
	if m.FirstOrder < 0 || n.Order < m.FirstOrder {
		m.FirstOrder = n.Order
	}
	if n.Order > m.LastOrder {
		m.LastOrder = n.Order
	}
	for _, name := range layout.BranchRefs(n.Refs) {
		m.Branches[name] = struct{}{}
	}
}

// LaneMetricsAggregator aggregates laid out commits by lane.
type LaneMetricsAggregator struct {
	metrics map[int]*LaneMetrics
}

// NewLaneMetricsAggregator creates a new aggregator.
func NewLaneMetricsAggregator() *LaneMetricsAggregator {
	return &LaneMetricsAggregator{
		metrics: make(map[int]*LaneMetrics),
	}
}

// Process aggregates nodes and returns the metrics ordered by lane.
func (a *LaneMetricsAggregator) Process(nodes []layout.LayoutNode) []*LaneMetrics {
	for _, n := range nodes {
		m, ok := a.metrics[n.Lane]
		if !ok {
			m = NewLaneMetrics(n.Lane, n.Color)
			a.metrics[n.Lane] = m
		}
		m.AddNode(n)
	}
	return a.Results()
}

// Results returns the metrics collected so far, ordered by lane.
func (a *LaneMetricsAggregator) Results() []*LaneMetrics {
	results := make([]*LaneMetrics, 0, len(a.metrics))
	for _, m := range a.metrics {
		results = append(results, m)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Lane < results[j].Lane })
	return results
}
