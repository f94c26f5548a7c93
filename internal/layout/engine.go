// Package layout turns a commit snapshot into a branch diagram: a lane,
// a topological position, pixel coordinates and a color for every commit,
// in the spirit of git log --graph.
package layout

// Engine lays out one commit snapshot. New does the graph building,
// sequencing and lane allocation up front; Layout only colors and projects
// the stored result, so repeated calls return identical layouts.
//
// An Engine is never mutated after New returns and may be shared between
// goroutines.
type Engine struct {
	graph *Graph
	order []int // node indices in topological order
	lanes LaneAssignment
	opts  Options
}

// New builds an engine for commits.
func New(commits []Commit, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := BuildGraph(commits)
	order := g.TopoOrder()

	return &Engine{
		graph: g,
		order: order,
		lanes: AssignLanes(g, order),
		opts:  o.normalized(),
	}
}

// Len returns the number of commits laid out.
func (e *Engine) Len() int {
	return len(e.order)
}

// Order returns the hashes in topological order, ancestors first.
func (e *Engine) Order() []string {
	hashes := make([]string, len(e.order))
	for i, n := range e.order {
		hashes[i] = e.graph.nodes[n].Hash
	}
	return hashes
}

// Lane returns the lane assigned to hash.
func (e *Engine) Lane(hash string) (int, bool) {
	i, ok := e.graph.index[hash]
	if !ok {
		return 0, false
	}
	return e.lanes.Lanes[i], true
}

// MaxLane returns the highest lane in use, or -1 for an empty snapshot.
func (e *Engine) MaxLane() int {
	return e.lanes.Max()
}

// Options returns the options the engine projects with.
func (e *Engine) Options() Options {
	return e.opts
}

// Layout returns the laid out nodes ordered by topological position.
//
// tips maps branch names to their tip hashes. It is reserved for tip
// highlighting and does not influence lanes or colors.
func (e *Engine) Layout(tips map[string]string) []LayoutNode {
	colors := AssignColors(e.lanes.Distinct(), e.opts)
	total := len(e.order)

	nodes := make([]LayoutNode, total)
	for order, i := range e.order {
		src := e.graph.nodes[i]
		lane := e.lanes.Lanes[i]
		x, y := Project(lane, order, total, e.opts)

		nodes[order] = LayoutNode{
			CommitNode: cloneNode(src),
			Lane:       lane,
			Order:      order,
			X:          x,
			Y:          y,
			Color:      colors[lane],
		}
	}
	return nodes
}

func cloneNode(n CommitNode) CommitNode {
	return CommitNode{
		Commit: Commit{
			Hash:    n.Hash,
			Parents: append([]string{}, n.Parents...),
			Refs:    append([]string{}, n.Refs...),
			Message: n.Message,
		},
		Children: append([]string{}, n.Children...),
	}
}

// Edges returns one edge per resolved parent link of nodes, colored by the
// child's lane. A link is curved when it changes lanes and either the child
// is a merge or the parent forks into several children; otherwise it is
// straight. Links to parents missing from nodes are omitted.
func Edges(nodes []LayoutNode) []Edge {
	byHash := make(map[string]int, len(nodes))
	for i, n := range nodes {
		byHash[n.Hash] = i
	}

	var edges []Edge
	for _, n := range nodes {
		for _, p := range n.Parents {
			pi, ok := byHash[p]
			if !ok {
				continue
			}
			parent := nodes[pi]

			kind := EdgeStraight
			if parent.Lane != n.Lane && (n.IsMerge() || len(parent.Children) > 1) {
				kind = EdgeCurved
			}
			edges = append(edges, Edge{
				Child:  n.Hash,
				Parent: p,
				Color:  n.Color,
				Kind:   kind,
			})
		}
	}
	return edges
}
