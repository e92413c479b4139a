package geom

import "fmt"

// Point is an (x, y) coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Kind tags the variants a Geometry can hold.
type Kind int

const (
	KindPoint Kind = iota + 1
	KindMultiPoint
	KindLine
	KindMultiLine
	KindPolygon
	KindMultiPolygon
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindMultiPoint:
		return "multipoint"
	case KindLine:
		return "line"
	case KindMultiLine:
		return "multiline"
	case KindPolygon:
		return "polygon"
	case KindMultiPolygon:
		return "multipolygon"
	case KindCollection:
		return "collection"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Geometry is a tagged variant over point, multipoint, line, multiline,
// polygon, multipolygon, and recursive collections thereof. Values are
// immutable once built; the payload slices must not be mutated by callers.
type Geometry struct {
	kind    Kind
	pts     []Point     // point (len 1), multipoint, line
	lines   [][]Point   // multiline
	rings   [][]Point   // polygon: first ring outer, rest holes
	polys   [][][]Point // multipolygon
	members []Geometry  // collection
}

// Kind returns the variant tag. The zero Geometry has an invalid kind.
func (g Geometry) Kind() Kind { return g.kind }

func NewPoint(x, y float64) Geometry {
	return Geometry{kind: KindPoint, pts: []Point{{X: x, Y: y}}}
}

func NewMultiPoint(pts []Point) Geometry {
	return Geometry{kind: KindMultiPoint, pts: pts}
}

func NewLine(pts []Point) Geometry {
	return Geometry{kind: KindLine, pts: pts}
}

func NewMultiLine(lines [][]Point) Geometry {
	return Geometry{kind: KindMultiLine, lines: lines}
}

// NewPolygon builds a polygon from rings, the first being the outer
// boundary and the rest holes. Hole containment is not validated.
func NewPolygon(rings [][]Point) Geometry {
	return Geometry{kind: KindPolygon, rings: rings}
}

func NewMultiPolygon(polys [][][]Point) Geometry {
	return Geometry{kind: KindMultiPolygon, polys: polys}
}

func NewCollection(members ...Geometry) Geometry {
	return Geometry{kind: KindCollection, members: members}
}

// Point extracts the coordinate of a point geometry.
func (g Geometry) Point() (Point, error) {
	if g.kind != KindPoint || len(g.pts) == 0 {
		return Point{}, fmt.Errorf("%w: want point, have %s", ErrUnsupportedGeometry, g.kind)
	}
	return g.pts[0], nil
}

// Points extracts the flat coordinate sequence of a point, multipoint or line.
func (g Geometry) Points() ([]Point, error) {
	switch g.kind {
	case KindPoint, KindMultiPoint, KindLine:
		return g.pts, nil
	}
	return nil, fmt.Errorf("%w: want point, multipoint or line, have %s", ErrUnsupportedGeometry, g.kind)
}

// Lines extracts the per-line coordinate sequences of a multiline.
func (g Geometry) Lines() ([][]Point, error) {
	if g.kind != KindMultiLine {
		return nil, fmt.Errorf("%w: want multiline, have %s", ErrUnsupportedGeometry, g.kind)
	}
	return g.lines, nil
}

// Rings extracts a polygon's rings, outer first.
func (g Geometry) Rings() ([][]Point, error) {
	if g.kind != KindPolygon {
		return nil, fmt.Errorf("%w: want polygon, have %s", ErrUnsupportedGeometry, g.kind)
	}
	return g.rings, nil
}

// Polygons extracts the per-polygon ring sets of a multipolygon.
func (g Geometry) Polygons() ([][][]Point, error) {
	if g.kind != KindMultiPolygon {
		return nil, fmt.Errorf("%w: want multipolygon, have %s", ErrUnsupportedGeometry, g.kind)
	}
	return g.polys, nil
}

// Members extracts the sub-geometries of a collection.
func (g Geometry) Members() ([]Geometry, error) {
	if g.kind != KindCollection {
		return nil, fmt.Errorf("%w: want collection, have %s", ErrUnsupportedGeometry, g.kind)
	}
	return g.members, nil
}

// Bounds returns the bounding box over every coordinate in g.
// The second result is false when g contains no coordinates.
func (g Geometry) Bounds() (BBox, bool) {
	var b BBox
	found := false
	g.eachPoint(func(p Point) {
		if !found {
			b = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			found = true
			return
		}
		b.Expand(p)
	})
	return b, found
}

func (g Geometry) eachPoint(fn func(Point)) {
	for _, p := range g.pts {
		fn(p)
	}
	for _, ls := range g.lines {
		for _, p := range ls {
			fn(p)
		}
	}
	for _, r := range g.rings {
		for _, p := range r {
			fn(p)
		}
	}
	for _, poly := range g.polys {
		for _, r := range poly {
			for _, p := range r {
				fn(p)
			}
		}
	}
	for _, m := range g.members {
		m.eachPoint(fn)
	}
}
