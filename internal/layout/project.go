package layout

// Project maps a lane and a topological position to pixel coordinates. The
// vertical axis is flipped: the newest commit (highest order) sits at y = 0
// and the oldest at the bottom.
func Project(lane, order, total int, opts Options) (x, y int) {
	opts = opts.normalized()
	x = lane * opts.LaneWidth
	y = (total - 1 - order) * opts.RowHeight
	return x, y
}

// Bounds returns the canvas size needed to draw nodes: one lane width per
// lane and one row height below the lowest node.
func Bounds(nodes []LayoutNode, opts Options) (width, height int) {
	if len(nodes) == 0 {
		return 0, 0
	}
	opts = opts.normalized()

	maxLane, maxY := 0, 0
	for _, n := range nodes {
		if n.Lane > maxLane {
			maxLane = n.Lane
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	return (maxLane + 1) * opts.LaneWidth, maxY + opts.RowHeight
}
