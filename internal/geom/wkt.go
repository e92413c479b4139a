package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a well-known-text string into a Geometry.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON,
// MULTIPOLYGON.
func ParseWKT(wkt string) (Geometry, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Geometry{}, errors.New("wkt: empty input")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		block, err := parenBlock(s, "(", ")")
		if err != nil {
			return Geometry{}, err
		}
		// tolerate both MULTIPOINT(1 2, 3 4) and MULTIPOINT((1 2),(3 4))
		block = strings.NewReplacer("(", "", ")", "").Replace(block)
		pts := parseTuples(block)
		if len(pts) == 0 {
			return Geometry{}, errors.New("wkt multipoint: no coordinates")
		}
		return NewMultiPoint(pts), nil
	case strings.HasPrefix(up, "POINT"):
		block, err := parenBlock(s, "(", ")")
		if err != nil {
			return Geometry{}, err
		}
		pts := parseTuples(block)
		if len(pts) == 0 {
			return Geometry{}, errors.New("wkt point: no coordinates")
		}
		return NewPoint(pts[0].X, pts[0].Y), nil
	case strings.HasPrefix(up, "MULTILINESTRING"):
		block, err := parenBlock(s, "((", "))")
		if err != nil {
			return Geometry{}, err
		}
		var lines [][]Point
		for _, part := range splitRings(block) {
			if pts := parseTuples(part); len(pts) > 0 {
				lines = append(lines, pts)
			}
		}
		if len(lines) == 0 {
			return Geometry{}, errors.New("wkt multilinestring: no coordinates")
		}
		return NewMultiLine(lines), nil
	case strings.HasPrefix(up, "LINESTRING"):
		block, err := parenBlock(s, "(", ")")
		if err != nil {
			return Geometry{}, err
		}
		pts := parseTuples(block)
		if len(pts) == 0 {
			return Geometry{}, errors.New("wkt linestring: no coordinates")
		}
		return NewLine(pts), nil
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		block, err := parenBlock(s, "(((", ")))")
		if err != nil {
			return Geometry{}, err
		}
		var polys [][][]Point
		for _, polyPart := range strings.Split(normalizeSeps(block), ")),((") {
			var rings [][]Point
			for _, ringPart := range splitRings(polyPart) {
				if pts := parseTuples(ringPart); len(pts) > 0 {
					rings = append(rings, pts)
				}
			}
			if len(rings) > 0 {
				polys = append(polys, rings)
			}
		}
		if len(polys) == 0 {
			return Geometry{}, errors.New("wkt multipolygon: no coordinates")
		}
		return NewMultiPolygon(polys), nil
	case strings.HasPrefix(up, "POLYGON"):
		block, err := parenBlock(s, "((", "))")
		if err != nil {
			return Geometry{}, err
		}
		var rings [][]Point
		for _, part := range splitRings(block) {
			if pts := parseTuples(part); len(pts) > 0 {
				rings = append(rings, pts)
			}
		}
		if len(rings) == 0 {
			return Geometry{}, errors.New("wkt polygon: no coordinates")
		}
		return NewPolygon(rings), nil
	}
	return Geometry{}, errors.New("wkt: unsupported type")
}

// parenBlock returns the text between the first open marker and the last
// close marker.
func parenBlock(s, open, close string) (string, error) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, close)
	if i < 0 || j <= i {
		return "", errors.New("wkt: unbalanced parentheses")
	}
	return s[i+len(open) : j], nil
}

// normalizeSeps collapses whitespace around ring separators so rings
// split cleanly on "),(".
func normalizeSeps(block string) string {
	out := strings.ReplaceAll(block, ") ,", "),")
	out = strings.ReplaceAll(out, ", (", ",(")
	out = strings.ReplaceAll(out, ") ,(", "),(")
	return out
}

func splitRings(block string) []string {
	return strings.Split(normalizeSeps(block), "),(")
}

// parseTuples reads comma-separated "x y" pairs; malformed tuples are
// skipped rather than failing the whole parse.
func parseTuples(block string) []Point {
	var out []Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.Trim(parts[0], "()"), 64)
		y, err2 := strconv.ParseFloat(strings.Trim(parts[1], "()"), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Point{X: x, Y: y})
	}
	return out
}
