package layout

// Graph is the node table built from a commit snapshot. Nodes keep the order
// in which their hash first appeared; a repeated hash overwrites the content
// of the earlier record.
//
// Graph is not safe for concurrent mutation, but it is never mutated after
// BuildGraph returns.
type Graph struct {
	nodes   []CommitNode
	index   map[string]int
	parents [][]int // resolved parent indices, dangling parents omitted
}

// BuildGraph builds the node table and links every commit into the Children
// of each parent present in the table. Parents absent from the table stay in
// Parents but are never linked.
func BuildGraph(commits []Commit) *Graph {
	g := &Graph{
		nodes: make([]CommitNode, 0, len(commits)),
		index: make(map[string]int, len(commits)),
	}

	for _, c := range commits {
		node := CommitNode{Commit: c, Children: []string{}}
		if i, ok := g.index[c.Hash]; ok {
			g.nodes[i] = node
			continue
		}
		g.index[c.Hash] = len(g.nodes)
		g.nodes = append(g.nodes, node)
	}

	// Children are linked once per input record, so a repeated record
	// links its child twice.
	for _, c := range commits {
		for _, p := range c.Parents {
			if pi, ok := g.index[p]; ok {
				g.nodes[pi].Children = append(g.nodes[pi].Children, c.Hash)
			}
		}
	}

	g.parents = make([][]int, len(g.nodes))
	for i := range g.nodes {
		for _, p := range g.nodes[i].Parents {
			if pi, ok := g.index[p]; ok {
				g.parents[i] = append(g.parents[i], pi)
			}
		}
	}

	return g
}

// Len returns the number of nodes in the table.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// lookup returns the node stored for hash.
func (g *Graph) lookup(hash string) (CommitNode, bool) {
	i, ok := g.index[hash]
	if !ok {
		return CommitNode{}, false
	}
	return g.nodes[i], true
}

const (
	unvisited = iota
	visiting
	visited
)

// TopoOrder returns node indices ordered so that every parent precedes its
// children. It runs a parent-first post-order depth-first search started once
// per node in table order, visiting parents in listed order.
//
// A parent found while it is still being visited closes a cycle; the search
// backs off and that node is emitted through its own path. This guarantees
// termination but not a meaningful order inside the cycle.
func (g *Graph) TopoOrder() []int {
	type frame struct {
		node int
		next int // next parent position to explore
	}

	state := make([]uint8, len(g.nodes))
	order := make([]int, 0, len(g.nodes))
	stack := make([]frame, 0, 64)

	for start := range g.nodes {
		if state[start] != unvisited {
			continue
		}
		state[start] = visiting
		stack = append(stack, frame{node: start})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			parents := g.parents[top.node]

			if top.next < len(parents) {
				p := parents[top.next]
				top.next++
				if state[p] == unvisited {
					state[p] = visiting
					stack = append(stack, frame{node: p})
				}
				continue
			}

			state[top.node] = visited
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	return order
}
