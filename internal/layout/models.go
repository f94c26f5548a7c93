package layout

// NoMessage is the subject used for commits whose log line carries none.
const NoMessage = "No message"

// Commit represents one raw commit record as produced by the log fetcher.
type Commit struct {
	Hash    string
	Parents []string // Parents[0] is the mainline parent of a merge
	Refs    []string // Raw decorations, e.g. "HEAD -> main", "tag: v1.0"
	Message string
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// CommitNode is a Commit with its derived child links.
type CommitNode struct {
	Commit
	Children []string
}

// LayoutNode is a CommitNode placed on the diagram.
type LayoutNode struct {
	CommitNode
	Lane  int
	Order int // 0-based position in topological order, ancestors first
	X     int
	Y     int
	Color string
}

// Center returns the pixel center of the node.
func (n LayoutNode) Center() (int, int) {
	return n.X + NodeOffset, n.Y + NodeOffset
}

// IsBranchTip reports whether the node carries a branch decoration and has
// no children.
func (n LayoutNode) IsBranchTip() bool {
	return len(n.Children) == 0 && len(BranchRefs(n.Refs)) > 0
}

// EdgeKind tells a renderer how to draw a parent link.
type EdgeKind int

const (
	EdgeStraight EdgeKind = iota
	EdgeCurved
)

// String returns a string representation of the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeStraight:
		return "straight"
	case EdgeCurved:
		return "curved"
	default:
		return "unknown"
	}
}

// Edge links a child node to one of its resolved parents.
type Edge struct {
	Child  string
	Parent string
	Color  string // Color of the child's lane
	Kind   EdgeKind
}
