package plot

// Style is the full set of drawing parameters attached to a primitive at
// creation time. Empty color fields mean "use the next palette default"
// at dispatch time; FillNone as fill means outline only.
type Style struct {
	Color      string  // stroke / marker color, hex "#rrggbb"
	Fill       string  // polygon fill color, hex, or FillNone
	LineWidth  float64 // 0 means the backend default
	MarkerSize float64 // marker radius, 0 means the backend default
}

// FillNone disables polygon filling, leaving only the outline.
const FillNone = "none"

// StyleOption mutates a Style before plotting. Passing any option to
// Plot marks the call as explicitly styled, which opts the layer out of
// the style-continuity rule on redraw.
type StyleOption func(*Style)

// WithColor sets the stroke and marker color.
func WithColor(hex string) StyleOption {
	return func(s *Style) { s.Color = hex }
}

// WithFill sets the polygon fill color.
func WithFill(hex string) StyleOption {
	return func(s *Style) { s.Fill = hex }
}

// WithNoFill draws polygons as outlines only.
func WithNoFill() StyleOption {
	return func(s *Style) { s.Fill = FillNone }
}

// WithLineWidth sets the stroke width.
func WithLineWidth(w float64) StyleOption {
	return func(s *Style) { s.LineWidth = w }
}

// WithMarkerSize sets the marker radius.
func WithMarkerSize(r float64) StyleOption {
	return func(s *Style) { s.MarkerSize = r }
}
