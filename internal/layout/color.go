package layout

import "sort"

// AssignColors maps every lane to a display color. lanes may repeat. Lane 0 always gets the
// primary color; the other lanes, in ascending order, take palette entries in
// turn and wrap around once the palette is exhausted, so two lanes may share a
// color on wide histories.
func AssignColors(lanes []int, opts Options) map[int]string {
	opts = opts.normalized()

	distinct := make([]int, 0, len(lanes))
	seen := make(map[int]struct{}, len(lanes))
	for _, l := range lanes {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		distinct = append(distinct, l)
	}
	sort.Ints(distinct)

	colors := make(map[int]string, len(distinct))
	next := 0
	for _, l := range distinct {
		if l == 0 {
			colors[0] = opts.PrimaryColor
			continue
		}
		colors[l] = opts.Palette[next%len(opts.Palette)]
		next++
	}
	return colors
}
