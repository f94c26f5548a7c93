package layout

// LaneAssignment is the result of lane allocation: one lane per node of the
// graph, indexed like Graph.Nodes, plus the branch registrations made along
// the way.
type LaneAssignment struct {
	Lanes    []int
	Branches map[string]int
}

// Max returns the highest lane in use, or -1 when there are no nodes.
func (a LaneAssignment) Max() int {
	max := -1
	for _, l := range a.Lanes {
		if l > max {
			max = l
		}
	}
	return max
}

// Distinct returns the lanes in use in ascending order.
func (a LaneAssignment) Distinct() []int {
	seen := make([]bool, a.Max()+1)
	var lanes []int
	for _, l := range a.Lanes {
		seen[l] = true
	}
	for l, ok := range seen {
		if ok {
			lanes = append(lanes, l)
		}
	}
	return lanes
}

const noLane = -1

// laneState is the accumulator threaded through the allocation fold.
type laneState struct {
	branchLane map[string]int
	lanes      []int
	next       int
	// primary is set when main or master decorates any commit of the input.
	primary bool
}

// fresh allocates the next unused lane. Lane 0 goes to the first allocation
// unless it is already claimed, or the allocation is for a named branch
// while lane 0 is held back for the primary branch.
func (s *laneState) fresh(named bool) int {
	if s.next == 0 && named && s.primary {
		s.next = 1
	}
	l := s.next
	s.next++
	return l
}

// claimPrimary pins lane 0 to the primary branch.
func (s *laneState) claimPrimary() {
	s.branchLane[BranchMain] = 0
	s.branchLane[BranchMaster] = 0
	if s.next == 0 {
		s.next = 1
	}
}

// AssignLanes walks the nodes in topological order and gives each one a
// lane. For every commit the first matching rule wins:
//
//  1. a main or master decoration pins the commit, and both names, to lane 0;
//  2. any other branch name reuses that branch's lane or registers a new one;
//  3. a single-parent commit inherits its parent's lane;
//  4. a merge inherits its first parent's lane;
//  5. anything else opens a new lane.
//
// Lanes are handed out by a counter that only grows. When main or master
// decorates any commit, no other named branch ever gets lane 0; an
// undecorated root processed before the primary branch claims it may still
// open lane 0, which is how a linear history ending at main stays on one
// track.
func AssignLanes(g *Graph, order []int) LaneAssignment {
	s := &laneState{
		branchLane: make(map[string]int),
		lanes:      make([]int, g.Len()),
		primary:    hasPrimaryBranch(g),
	}
	for i := range s.lanes {
		s.lanes[i] = noLane
	}

	for _, i := range order {
		s.lanes[i] = s.decide(g, i)
	}

	// Nodes missing from order cannot happen with TopoOrder, but the
	// assignment must stay total for callers passing their own order.
	for i, l := range s.lanes {
		if l == noLane {
			s.lanes[i] = s.fresh(false)
		}
	}

	return LaneAssignment{Lanes: s.lanes, Branches: s.branchLane}
}

func (s *laneState) decide(g *Graph, i int) int {
	node := g.nodes[i]
	names := BranchNames(node.Refs)

	for _, name := range names {
		if IsPrimaryBranch(name) {
			s.claimPrimary()
			return 0
		}
	}

	if len(names) > 0 {
		if l, ok := s.branchLane[names[0]]; ok {
			return l
		}
		l := s.fresh(true)
		s.branchLane[names[0]] = l
		return l
	}

	// Single parent and merge commits both follow the first parent.
	if len(node.Parents) > 0 {
		if l := s.parentLane(g, node.Parents[0]); l != noLane {
			return l
		}
	}

	return s.fresh(false)
}

func (s *laneState) parentLane(g *Graph, hash string) int {
	pi, ok := g.index[hash]
	if !ok {
		return noLane
	}
	return s.lanes[pi]
}

func hasPrimaryBranch(g *Graph) bool {
	for _, n := range g.nodes {
		for _, name := range BranchNames(n.Refs) {
			if IsPrimaryBranch(name) {
				return true
			}
		}
	}
	return false
}
