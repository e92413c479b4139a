package geom

import (
	"errors"
	"testing"
)

func TestGeometryAccessors(t *testing.T) {
	pt := NewPoint(2, 3)
	if pt.Kind() != KindPoint {
		t.Fatalf("kind = %s, want point", pt.Kind())
	}
	p, err := pt.Point()
	if err != nil {
		t.Fatal(err)
	}
	if p != (Point{2, 3}) {
		t.Errorf("point = %+v, want (2,3)", p)
	}

	line := NewLine([]Point{{0, 0}, {1, 1}})
	pts, err := line.Points()
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 {
		t.Errorf("line points = %d, want 2", len(pts))
	}

	poly := NewPolygon([][]Point{{{0, 0}, {1, 0}, {0, 1}}})
	rings, err := poly.Rings()
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 {
		t.Errorf("rings = %d, want 1", len(rings))
	}

	coll := NewCollection(pt, line, poly)
	members, err := coll.Members()
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 3 {
		t.Errorf("members = %d, want 3", len(members))
	}
}

func TestGeometryAccessorMismatch(t *testing.T) {
	line := NewLine([]Point{{0, 0}, {1, 1}})
	if _, err := line.Rings(); !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("Rings on line: err = %v, want ErrUnsupportedGeometry", err)
	}
	if _, err := line.Point(); !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("Point on line: err = %v, want ErrUnsupportedGeometry", err)
	}
	var zero Geometry
	if _, err := zero.Points(); !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("Points on zero geometry: err = %v, want ErrUnsupportedGeometry", err)
	}
}

func TestGeometryBounds(t *testing.T) {
	coll := NewCollection(
		NewPoint(-3, 1),
		NewLine([]Point{{0, 0}, {5, 2}}),
		NewPolygon([][]Point{{{1, -4}, {2, 0}, {1, 1}}}),
	)
	b, ok := coll.Bounds()
	if !ok {
		t.Fatal("Bounds reported no coordinates")
	}
	want := BBox{MinX: -3, MinY: -4, MaxX: 5, MaxY: 2}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	var zero Geometry
	if _, ok := zero.Bounds(); ok {
		t.Error("zero geometry reported bounds")
	}
}
