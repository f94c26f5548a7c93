package layout

// Geometry shared with renderers. A node's center is offset by NodeOffset
// from its projected (X, Y).
const (
	LaneWidth  = 80
	RowHeight  = 60
	NodeOffset = LaneWidth / 2
)

// PrimaryColor marks lane 0, the primary line of development.
const PrimaryColor = "#000000"

// DefaultPalette returns the colors handed out to lanes other than 0.
func DefaultPalette() []string {
	return []string{
		"#3b82f6", // blue
		"#ec4899", // pink
		"#10b981", // green
		"#a855f7", // purple
		"#f59e0b", // amber
		"#f97316", // orange
		"#22c55e", // emerald
		"#64748b", // slate
	}
}

// Options configures color assignment and coordinate projection.
type Options struct {
	LaneWidth    int
	RowHeight    int
	PrimaryColor string
	Palette      []string
}

// DefaultOptions returns the shared geometry and default colors.
func DefaultOptions() Options {
	return Options{
		LaneWidth:    LaneWidth,
		RowHeight:    RowHeight,
		PrimaryColor: PrimaryColor,
		Palette:      DefaultPalette(),
	}
}

// normalized fills zero or invalid fields with defaults.
func (o Options) normalized() Options {
	if o.LaneWidth <= 0 {
		o.LaneWidth = LaneWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = RowHeight
	}
	if o.PrimaryColor == "" {
		o.PrimaryColor = PrimaryColor
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette()
	} else {
		o.Palette = append([]string(nil), o.Palette...)
	}
	return o
}

// Option mutates Options passed to New.
type Option func(*Options)

// WithOptions replaces all options at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// WithGeometry sets lane width and row height.
func WithGeometry(laneWidth, rowHeight int) Option {
	return func(o *Options) {
		o.LaneWidth = laneWidth
		o.RowHeight = rowHeight
	}
}

// WithPalette sets the palette used for lanes other than 0.
func WithPalette(palette []string) Option {
	return func(o *Options) { o.Palette = palette }
}

// WithPrimaryColor sets the color of lane 0.
func WithPrimaryColor(color string) Option {
	return func(o *Options) { o.PrimaryColor = color }
}
