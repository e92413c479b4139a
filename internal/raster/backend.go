// Package raster renders attached primitives to a PNG image using the
// gg drawing context. The backend is retained-mode: draw calls create
// primitives in data coordinates, attach/detach maintain a display list,
// and rasterizing replays the list through a data-to-pixel transform.
package raster

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"geoplot/internal/geom"
	"geoplot/internal/plot"
)

const (
	defaultMargin     = 12.0
	defaultLineWidth  = 1.5
	defaultMarkerSize = 3.0
)

type primitive struct {
	kind   plot.PrimitiveKind
	verts  []geom.Point
	verbs  []geom.Verb // set for compound paths only
	closed bool
	style  plot.Style
}

func (p *primitive) Kind() plot.PrimitiveKind { return p.kind }
func (p *primitive) PointCount() int          { return len(p.verts) }
func (p *primitive) Style() plot.Style        { return p.style }
func (p *primitive) SetStyle(st plot.Style)   { p.style = st }

// Backend is a plot.Backend drawing onto an in-memory canvas of fixed
// pixel dimensions.
type Backend struct {
	width  int
	height int
	margin float64

	scene       []*primitive // attached primitives in draw order
	bounds      *geom.BBox   // explicit data bounds; nil means fit to scene
	equalAspect bool
}

// New creates a raster backend with the given pixel dimensions.
func New(width, height int) *Backend {
	return &Backend{width: width, height: height, margin: defaultMargin}
}

func (b *Backend) DrawMarker(pt geom.Point, st plot.Style) (plot.Primitive, error) {
	return &primitive{kind: plot.Marker, verts: []geom.Point{pt}, style: st}, nil
}

func (b *Backend) DrawPath(pts []geom.Point, st plot.Style, closed bool) (plot.Primitive, error) {
	verts := make([]geom.Point, len(pts))
	copy(verts, pts)
	return &primitive{kind: plot.Path, verts: verts, closed: closed, style: st}, nil
}

func (b *Backend) DrawCompoundPath(spec geom.PathSpec, st plot.Style) (plot.Primitive, error) {
	return &primitive{kind: plot.CompoundPath, verts: spec.Vertices, verbs: spec.Verbs, style: st}, nil
}

// Attach puts a primitive on the canvas. Attaching twice is a no-op.
func (b *Backend) Attach(p plot.Primitive) error {
	prim, ok := p.(*primitive)
	if !ok {
		return plot.ErrForeignPrimitive
	}
	if slices.Contains(b.scene, prim) {
		return nil
	}
	b.scene = append(b.scene, prim)
	return nil
}

// Detach removes a primitive from the canvas. Detaching a primitive
// that is not attached is a no-op.
func (b *Backend) Detach(p plot.Primitive) error {
	prim, ok := p.(*primitive)
	if !ok {
		return plot.ErrForeignPrimitive
	}
	if i := slices.Index(b.scene, prim); i >= 0 {
		b.scene = slices.Delete(b.scene, i, i+1)
	}
	return nil
}

func (b *Backend) SetBounds(bounds geom.BBox) { b.bounds = &bounds }

func (b *Backend) SetEqualAspect(on bool) { b.equalAspect = on }

// Attached reports how many primitives are currently on the canvas.
func (b *Backend) Attached() int { return len(b.scene) }

// RasterizeToFile renders the attached scene and writes it as a PNG.
func (b *Backend) RasterizeToFile(path string) error {
	dc, err := b.render()
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save png: %w", err)
	}
	return nil
}

// Image renders the attached scene and returns the pixels.
func (b *Backend) Image() (image.Image, error) {
	dc, err := b.render()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (b *Backend) render() (*gg.Context, error) {
	dc := gg.NewContext(b.width, b.height)
	dc.ClearWithColor(gg.White)
	bounds, ok := b.viewBounds()
	if !ok {
		return dc, nil // nothing attached, blank canvas
	}
	tr := newTransform(bounds, b.width, b.height, b.margin, b.equalAspect)
	for _, prim := range b.scene {
		if err := renderPrimitive(dc, prim, tr); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

// viewBounds returns the explicit bounds if set, otherwise the union of
// every attached primitive's vertices.
func (b *Backend) viewBounds() (geom.BBox, bool) {
	if b.bounds != nil {
		return *b.bounds, true
	}
	var bounds geom.BBox
	found := false
	for _, prim := range b.scene {
		for _, p := range prim.verts {
			if !found {
				bounds = geom.BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				found = true
				continue
			}
			bounds.Expand(p)
		}
	}
	return bounds, found
}

// newTransform maps data coordinates into a width x height canvas with
// the given margin, inverting Y so north is up. With equal aspect the
// smaller scale wins on both axes and the data is centered.
func newTransform(bounds geom.BBox, width, height int, margin float64, equalAspect bool) func(geom.Point) (float64, float64) {
	innerW := float64(width) - 2*margin
	innerH := float64(height) - 2*margin
	bw := bounds.Width()
	bh := bounds.Height()
	if bw <= 0 {
		bw = 1 // point-like data: arbitrary unit extent
	}
	if bh <= 0 {
		bh = 1
	}
	sx := innerW / bw
	sy := innerH / bh
	if equalAspect {
		s := min(sx, sy)
		sx, sy = s, s
	}
	ox := margin + (innerW-sx*bw)/2
	oy := margin + (innerH-sy*bh)/2
	return func(p geom.Point) (float64, float64) {
		px := ox + sx*(p.X-bounds.MinX)
		py := float64(height) - (oy + sy*(p.Y-bounds.MinY))
		return px, py
	}
}

func renderPrimitive(dc *gg.Context, prim *primitive, tr func(geom.Point) (float64, float64)) error {
	st := prim.style
	lw := st.LineWidth
	if lw == 0 {
		lw = defaultLineWidth
	}
	switch prim.kind {
	case plot.Marker:
		r := st.MarkerSize
		if r == 0 {
			r = defaultMarkerSize
		}
		col, err := strokeColor(st)
		if err != nil {
			return err
		}
		px, py := tr(prim.verts[0])
		dc.SetColor(col)
		dc.DrawCircle(px, py, r)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("raster: fill marker: %w", err)
		}

	case plot.Path:
		col, err := strokeColor(st)
		if err != nil {
			return err
		}
		for i, v := range prim.verts {
			px, py := tr(v)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		if prim.closed {
			dc.ClosePath()
		}
		dc.SetColor(col)
		dc.SetLineWidth(lw)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("raster: stroke path: %w", err)
		}

	case plot.CompoundPath:
		for i, verb := range prim.verbs {
			px, py := tr(prim.verts[i])
			if verb == geom.MoveTo {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.SetFillRule(gg.FillRuleNonZero)
		if st.Fill != plot.FillNone {
			fill, err := parseHex(st.Fill)
			if err != nil {
				return err
			}
			dc.SetColor(fill)
			if err := dc.FillPreserve(); err != nil {
				return fmt.Errorf("raster: fill compound path: %w", err)
			}
		}
		if st.Color != "" || st.Fill == plot.FillNone {
			col, err := strokeColor(st)
			if err != nil {
				dc.ClearPath()
				return err
			}
			dc.SetColor(col)
			dc.SetLineWidth(lw)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("raster: stroke compound path: %w", err)
			}
		} else {
			dc.ClearPath()
		}
	}
	return nil
}

// strokeColor resolves the stroke color, defaulting to black.
func strokeColor(st plot.Style) (colorful.Color, error) {
	if st.Color == "" {
		return colorful.Color{}, nil // black
	}
	return parseHex(st.Color)
}

func parseHex(hex string) (colorful.Color, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("raster: bad color %q: %w", hex, err)
	}
	return col, nil
}
