package geom

// Verb is a single path instruction.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
)

// PathSpec describes a compound path as a flat vertex buffer and a
// parallel verb buffer. Each ring contributes one MoveTo followed by
// len-1 LineTo verbs, so a fill-rule-aware rasterizer treats every ring
// as its own subpath.
type PathSpec struct {
	Vertices []Point
	Verbs    []Verb
}

// BuildPath composes one outer ring and zero or more hole rings into a
// single compound path. The outer ring is normalized clockwise and each
// hole counter-clockwise, so a nonzero winding fill renders the holes as
// gaps. Ring order in the output is preserved: outer first, then holes
// in the order given.
func BuildPath(outer []Point, holes ...[]Point) (PathSpec, error) {
	var spec PathSpec
	ring, err := NormalizeRing(outer, true)
	if err != nil {
		return PathSpec{}, err
	}
	spec.appendRing(ring)
	for _, h := range holes {
		ring, err = NormalizeRing(h, false)
		if err != nil {
			return PathSpec{}, err
		}
		spec.appendRing(ring)
	}
	return spec, nil
}

func (s *PathSpec) appendRing(ring []Point) {
	s.Vertices = append(s.Vertices, ring...)
	s.Verbs = append(s.Verbs, MoveTo)
	for i := 1; i < len(ring); i++ {
		s.Verbs = append(s.Verbs, LineTo)
	}
}

// Bounds returns the bounding box over the path's vertices.
// The second result is false for an empty path.
func (s PathSpec) Bounds() (BBox, bool) {
	if len(s.Vertices) == 0 {
		return BBox{}, false
	}
	p := s.Vertices[0]
	b := BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	for _, p := range s.Vertices[1:] {
		b.Expand(p)
	}
	return b, true
}

// Rings splits the vertex buffer back into its subpaths, one slice per
// MoveTo. Useful for renderers that fill ring by ring.
func (s PathSpec) Rings() [][]Point {
	var rings [][]Point
	start := -1
	for i, v := range s.Verbs {
		if v == MoveTo {
			if start >= 0 {
				rings = append(rings, s.Vertices[start:i])
			}
			start = i
		}
	}
	if start >= 0 && start < len(s.Vertices) {
		rings = append(rings, s.Vertices[start:])
	}
	return rings
}
