package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DecodeGeoJSON parses a GeoJSON document (a bare geometry, a Feature,
// or a FeatureCollection) into geometry values, one per feature.
func DecodeGeoJSON(data []byte) ([]Geometry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	t, _ := raw["type"].(string)
	if t == "" {
		return nil, errors.New("geojson: missing type")
	}
	var geoms []Geometry
	switch t {
	case "Feature":
		g, ok := raw["geometry"].(map[string]any)
		if !ok {
			return nil, errors.New("geojson: feature without geometry")
		}
		geom, err := decodeGeometry(g)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, geom)
	case "FeatureCollection":
		fs, ok := raw["features"].([]any)
		if !ok {
			return nil, errors.New("geojson: feature collection without features")
		}
		for _, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				continue
			}
			g, ok := fm["geometry"].(map[string]any)
			if !ok {
				continue
			}
			geom, err := decodeGeometry(g)
			if err != nil {
				return nil, err
			}
			geoms = append(geoms, geom)
		}
	default:
		geom, err := decodeGeometry(raw)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, geom)
	}
	if len(geoms) == 0 {
		return nil, errors.New("geojson: no geometries found")
	}
	return geoms, nil
}

// LoadGeoJSON reads and decodes a GeoJSON file.
func LoadGeoJSON(path string) ([]Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeGeoJSON(data)
}

func decodeGeometry(g map[string]any) (Geometry, error) {
	gt, _ := g["type"].(string)
	switch gt {
	case "Point":
		pt, ok := decodePosition(g["coordinates"])
		if !ok {
			return Geometry{}, errors.New("geojson: invalid point coordinates")
		}
		return NewPoint(pt.X, pt.Y), nil
	case "MultiPoint":
		pts, ok := decodePositions(g["coordinates"])
		if !ok {
			return Geometry{}, errors.New("geojson: invalid multipoint coordinates")
		}
		return NewMultiPoint(pts), nil
	case "LineString":
		pts, ok := decodePositions(g["coordinates"])
		if !ok {
			return Geometry{}, errors.New("geojson: invalid linestring coordinates")
		}
		return NewLine(pts), nil
	case "MultiLineString":
		lines, ok := decodeNested(g["coordinates"])
		if !ok {
			return Geometry{}, errors.New("geojson: invalid multilinestring coordinates")
		}
		return NewMultiLine(lines), nil
	case "Polygon":
		rings, ok := decodeNested(g["coordinates"])
		if !ok {
			return Geometry{}, errors.New("geojson: invalid polygon coordinates")
		}
		return NewPolygon(rings), nil
	case "MultiPolygon":
		arr, ok := g["coordinates"].([]any)
		if !ok {
			return Geometry{}, errors.New("geojson: invalid multipolygon coordinates")
		}
		var polys [][][]Point
		for _, el := range arr {
			rings, ok := decodeNested(el)
			if !ok {
				return Geometry{}, errors.New("geojson: invalid multipolygon member")
			}
			polys = append(polys, rings)
		}
		return NewMultiPolygon(polys), nil
	case "GeometryCollection":
		arr, ok := g["geometries"].([]any)
		if !ok {
			return Geometry{}, errors.New("geojson: collection without geometries")
		}
		var members []Geometry
		for _, el := range arr {
			gm, ok := el.(map[string]any)
			if !ok {
				continue
			}
			m, err := decodeGeometry(gm)
			if err != nil {
				return Geometry{}, err
			}
			members = append(members, m)
		}
		return NewCollection(members...), nil
	}
	return Geometry{}, fmt.Errorf("%w: geojson type %q", ErrUnsupportedGeometry, gt)
}

// decodePosition reads one [lon, lat, ...] position; altitude is ignored.
func decodePosition(v any) (Point, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return Point{}, false
	}
	x, xok := a[0].(float64)
	y, yok := a[1].(float64)
	if !xok || !yok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

func decodePositions(v any) ([]Point, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	var pts []Point
	for _, el := range arr {
		if pt, ok := decodePosition(el); ok {
			pts = append(pts, pt)
		}
	}
	return pts, true
}

func decodeNested(v any) ([][]Point, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	var out [][]Point
	for _, el := range arr {
		if pts, ok := decodePositions(el); ok {
			out = append(out, pts)
		}
	}
	return out, true
}
