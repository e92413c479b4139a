package plot

import (
	"fmt"

	"geoplot/internal/geom"
)

// draw routes a geometry to the backend calls its kind requires and
// returns the primitives produced, in drawing order. Style defaults are
// resolved here: a point or line kind missing a stroke color and a
// polygon kind missing a fill color each advance the palette cursor
// once. Collection members inherit the collection's style and resolve
// their own defaults.
func (p *Plotter) draw(g geom.Geometry, st Style) ([]Primitive, error) {
	switch g.Kind() {
	case geom.KindPoint:
		pt, err := g.Point()
		if err != nil {
			return nil, err
		}
		prim, err := p.backend.DrawMarker(pt, p.strokeDefault(st))
		if err != nil {
			return nil, fmt.Errorf("plot: draw marker: %w", err)
		}
		return []Primitive{prim}, nil

	case geom.KindMultiPoint:
		pts, err := g.Points()
		if err != nil {
			return nil, err
		}
		st = p.strokeDefault(st)
		prims := make([]Primitive, 0, len(pts))
		for _, pt := range pts {
			prim, err := p.backend.DrawMarker(pt, st)
			if err != nil {
				return nil, fmt.Errorf("plot: draw marker: %w", err)
			}
			prims = append(prims, prim)
		}
		return prims, nil

	case geom.KindLine:
		pts, err := g.Points()
		if err != nil {
			return nil, err
		}
		prim, err := p.backend.DrawPath(pts, p.strokeDefault(st), false)
		if err != nil {
			return nil, fmt.Errorf("plot: draw path: %w", err)
		}
		return []Primitive{prim}, nil

	case geom.KindMultiLine:
		lines, err := g.Lines()
		if err != nil {
			return nil, err
		}
		st = p.strokeDefault(st)
		prims := make([]Primitive, 0, len(lines))
		for _, ls := range lines {
			prim, err := p.backend.DrawPath(ls, st, false)
			if err != nil {
				return nil, fmt.Errorf("plot: draw path: %w", err)
			}
			prims = append(prims, prim)
		}
		return prims, nil

	case geom.KindPolygon:
		rings, err := g.Rings()
		if err != nil {
			return nil, err
		}
		prim, err := p.drawPolygon(rings, p.fillDefault(st))
		if err != nil {
			return nil, err
		}
		return []Primitive{prim}, nil

	case geom.KindMultiPolygon:
		polys, err := g.Polygons()
		if err != nil {
			return nil, err
		}
		st = p.fillDefault(st)
		prims := make([]Primitive, 0, len(polys))
		for _, rings := range polys {
			prim, err := p.drawPolygon(rings, st)
			if err != nil {
				return nil, err
			}
			prims = append(prims, prim)
		}
		return prims, nil

	case geom.KindCollection:
		members, err := g.Members()
		if err != nil {
			return nil, err
		}
		var prims []Primitive
		for _, m := range members {
			sub, err := p.draw(m, st)
			if err != nil {
				return nil, err
			}
			prims = append(prims, sub...)
		}
		return prims, nil
	}
	return nil, fmt.Errorf("%w: %s", geom.ErrUnsupportedGeometry, g.Kind())
}

// drawPolygon builds the compound path for one ring set (outer first,
// then holes) and hands it to the backend as a single primitive.
func (p *Plotter) drawPolygon(rings [][]geom.Point, st Style) (Primitive, error) {
	if len(rings) == 0 {
		return nil, geom.ErrDegenerateRing
	}
	spec, err := geom.BuildPath(rings[0], rings[1:]...)
	if err != nil {
		return nil, err
	}
	prim, err := p.backend.DrawCompoundPath(spec, st)
	if err != nil {
		return nil, fmt.Errorf("plot: draw compound path: %w", err)
	}
	return prim, nil
}

// strokeDefault fills in a palette color for point and line kinds that
// were plotted without an explicit color.
func (p *Plotter) strokeDefault(st Style) Style {
	if st.Color == "" {
		st.Color = p.palette.Next()
	}
	return st
}

// fillDefault fills in a palette color for polygon kinds plotted without
// an explicit fill. FillNone is an explicit choice and is kept.
func (p *Plotter) fillDefault(st Style) Style {
	if st.Fill == "" {
		st.Fill = p.palette.Next()
	}
	return st
}
