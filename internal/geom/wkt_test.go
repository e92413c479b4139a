package geom

import "testing"

func TestParseWKTPoint(t *testing.T) {
	g, err := ParseWKT("POINT(30 10)")
	if err != nil {
		t.Fatal(err)
	}
	p, err := g.Point()
	if err != nil {
		t.Fatal(err)
	}
	if p != (Point{30, 10}) {
		t.Errorf("point = %+v, want (30,10)", p)
	}
}

func TestParseWKTMultiPoint(t *testing.T) {
	for _, s := range []string{
		"MULTIPOINT(10 40, 40 30, 20 20)",
		"MULTIPOINT((10 40),(40 30),(20 20))",
	} {
		g, err := ParseWKT(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		pts, err := g.Points()
		if err != nil {
			t.Fatal(err)
		}
		if len(pts) != 3 {
			t.Errorf("%q: points = %d, want 3", s, len(pts))
		}
	}
}

func TestParseWKTLineString(t *testing.T) {
	g, err := ParseWKT("LINESTRING(30 10, 10 30, 40 40)")
	if err != nil {
		t.Fatal(err)
	}
	if g.Kind() != KindLine {
		t.Fatalf("kind = %s, want line", g.Kind())
	}
	pts, _ := g.Points()
	if len(pts) != 3 {
		t.Errorf("points = %d, want 3", len(pts))
	}
}

func TestParseWKTPolygonWithHole(t *testing.T) {
	g, err := ParseWKT("POLYGON((35 10, 45 45, 15 40, 10 20), (20 30, 35 35, 30 20))")
	if err != nil {
		t.Fatal(err)
	}
	rings, err := g.Rings()
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 2 {
		t.Fatalf("rings = %d, want 2", len(rings))
	}
	if len(rings[0]) != 4 || len(rings[1]) != 3 {
		t.Errorf("ring sizes = %d/%d, want 4/3", len(rings[0]), len(rings[1]))
	}
}

func TestParseWKTMultiPolygon(t *testing.T) {
	g, err := ParseWKT("MULTIPOLYGON(((30 20, 45 40, 10 40)), ((15 5, 40 10, 10 20, 5 10)))")
	if err != nil {
		t.Fatal(err)
	}
	polys, err := g.Polygons()
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 2 {
		t.Fatalf("polygons = %d, want 2", len(polys))
	}
}

func TestParseWKTErrors(t *testing.T) {
	for _, s := range []string{"", "POINT 30 10", "TRIANGLE(0 0, 1 1, 2 2)", "POLYGON(35 10)"} {
		if _, err := ParseWKT(s); err == nil {
			t.Errorf("ParseWKT(%q) succeeded, want error", s)
		}
	}
}
