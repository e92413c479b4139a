// Package tui is the interactive terminal front end: a plot.Backend
// that keeps attached primitives as a scene, and a bubbletea viewer
// that projects the scene onto a braille canvas with per-layer
// visibility toggles.
package tui

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"geoplot/internal/geom"
	"geoplot/internal/plot"
)

// snapshot text raster size used by RasterizeToFile
const (
	rasterCols = 120
	rasterRows = 40
)

type primitive struct {
	kind   plot.PrimitiveKind
	verts  []geom.Point
	verbs  []geom.Verb // compound paths only
	closed bool
	style  plot.Style
}

func (p *primitive) Kind() plot.PrimitiveKind { return p.kind }
func (p *primitive) PointCount() int          { return len(p.verts) }
func (p *primitive) Style() plot.Style        { return p.style }
func (p *primitive) SetStyle(st plot.Style)   { p.style = st }

// Backend is a plot.Backend whose canvas is the terminal. Attached
// primitives form the scene the viewer renders each frame.
type Backend struct {
	scene  []*primitive
	bounds *geom.BBox
}

func NewBackend() *Backend { return &Backend{} }

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

func (b *Backend) Attach(p plot.Primitive) error {
	prim, ok := p.(*primitive)
	if !ok {
		return plot.ErrForeignPrimitive
	}
	if !slices.Contains(b.scene, prim) {
		b.scene = append(b.scene, prim)
	}
	return nil
}

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

// SetEqualAspect is accepted but moot here: braille cells are not
// square, so the terminal projection cannot promise equal aspect.
func (b *Backend) SetEqualAspect(bool) {}

// RasterizeToFile writes a braille text snapshot of the scene.
func (b *Backend) RasterizeToFile(path string) error {
	br := newBrailleBuf(rasterCols, rasterRows)
	bounds, ok := b.viewBounds()
	if ok {
		pr := newProjection(bounds, rasterCols, rasterRows, 1.0, 0, 0)
		renderScene(b.scene, br, pr)
	}
	text := strings.Join(br.toLines(), "\n") + "\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("tui: write snapshot: %w", err)
	}
	return nil
}

// viewBounds returns the explicit bounds if set, otherwise the union of
// the attached primitives' vertices.
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
