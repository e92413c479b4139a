package plot

// DefaultPalette is the rotation of default colors handed out when a
// plot call supplies no explicit color.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// PaletteCursor is the rotating pointer into a fixed color sequence.
// One cursor belongs to one Plotter; it is not safe for concurrent use.
type PaletteCursor struct {
	colors []string
	next   int
}

// NewPaletteCursor returns a cursor over colors, or over DefaultPalette
// when colors is empty.
func NewPaletteCursor(colors []string) *PaletteCursor {
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	return &PaletteCursor{colors: colors}
}

// Next returns the current color and advances the cursor, wrapping at
// the palette length.
func (c *PaletteCursor) Next() string {
	col := c.colors[c.next]
	c.next = (c.next + 1) % len(c.colors)
	return col
}
