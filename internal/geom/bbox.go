package geom

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Expand grows the box to include p.
func (b *BBox) Expand(p Point) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// Width returns the horizontal extent.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Valid reports whether the box spans a nonzero area in both axes.
func (b BBox) Valid() bool { return b.MaxX > b.MinX && b.MaxY > b.MinY }
