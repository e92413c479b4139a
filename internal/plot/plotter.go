package plot

import (
	"log/slog"

	"geoplot/internal/geom"
)

// Plotter is a single plotting session: one backend, one layer registry,
// one palette cursor. It is not safe for concurrent use; callers must
// serialize all calls against one Plotter.
type Plotter struct {
	backend Backend
	reg     *registry
	palette *PaletteCursor
	log     *slog.Logger
	bounds  *geom.BBox
}

// Option configures a Plotter at construction.
type Option func(*Plotter)

// WithPalette replaces the default color rotation.
func WithPalette(colors []string) Option {
	return func(p *Plotter) { p.palette = NewPaletteCursor(colors) }
}

// WithLogger enables logging of dispatch and registry transitions.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plotter) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a plotting session on backend. Aspect is locked to equal
// on both axes, matching geographic plotting expectations.
func New(backend Backend, opts ...Option) *Plotter {
	p := &Plotter{
		backend: backend,
		reg:     newRegistry(backend),
		palette: NewPaletteCursor(nil),
		log:     newNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	backend.SetEqualAspect(true)
	return p
}

// Plot dispatches g to the backend and stores the resulting primitives
// as the layer called name. An empty name gets the next ordinal. A
// failure aborts this call only; previously established layers remain
// untouched. Returns the resolved layer name.
func (p *Plotter) Plot(g geom.Geometry, name string, opts ...StyleOption) (string, error) {
	var st Style
	for _, opt := range opts {
		opt(&st)
	}
	prims, err := p.draw(g, st)
	if err != nil {
		return "", err
	}
	resolved, err := p.reg.set(name, prims, len(opts) > 0)
	if err != nil {
		return resolved, err
	}
	p.log.Debug("layer set", "name", resolved, "kind", g.Kind().String(), "primitives", len(prims))
	return resolved, nil
}

// PlotAll draws a whole sequence of geometries (one geometry source's
// features) as a single layer. The palette default is pulled once for
// the set, keyed off the first geometry's kind, so every feature in the
// layer shares one color the way a plotted file does.
func (p *Plotter) PlotAll(gs []geom.Geometry, name string, opts ...StyleOption) (string, error) {
	var st Style
	for _, opt := range opts {
		opt(&st)
	}
	if len(gs) > 0 {
		st = p.resolveForKind(gs[0].Kind(), st)
	}
	var prims []Primitive
	for _, g := range gs {
		sub, err := p.draw(g, st)
		if err != nil {
			return "", err
		}
		prims = append(prims, sub...)
	}
	resolved, err := p.reg.set(name, prims, len(opts) > 0)
	if err != nil {
		return resolved, err
	}
	p.log.Debug("layer set", "name", resolved, "geometries", len(gs), "primitives", len(prims))
	return resolved, nil
}

// resolveForKind applies the palette default a kind would pull, so the
// per-geometry resolution inside draw finds the field already set.
func (p *Plotter) resolveForKind(k geom.Kind, st Style) Style {
	switch k {
	case geom.KindPoint, geom.KindMultiPoint, geom.KindLine, geom.KindMultiLine:
		return p.strokeDefault(st)
	case geom.KindPolygon, geom.KindMultiPolygon:
		return p.fillDefault(st)
	}
	return st
}

// Hide detaches the named layer from the canvas, keeping its primitives.
// Unknown names are ignored.
func (p *Plotter) Hide(name string) error {
	if err := p.reg.hide(name); err != nil {
		return err
	}
	p.log.Debug("layer hidden", "name", name)
	return nil
}

// Show reattaches a hidden layer. Unknown names are ignored.
func (p *Plotter) Show(name string) error {
	if err := p.reg.show(name); err != nil {
		return err
	}
	p.log.Debug("layer shown", "name", name)
	return nil
}

// Remove hides and releases the named layer. Unknown names are ignored.
func (p *Plotter) Remove(name string) error {
	if err := p.reg.remove(name); err != nil {
		return err
	}
	p.log.Debug("layer removed", "name", name)
	return nil
}

// Clear releases every layer and resets ordinal naming.
func (p *Plotter) Clear() error {
	if err := p.reg.clear(); err != nil {
		return err
	}
	p.bounds = nil
	p.log.Debug("plot cleared")
	return nil
}

// Layers lists the registry's layers in insertion order.
func (p *Plotter) Layers() []LayerInfo { return p.reg.snapshot() }

// SetBounds fixes the visible data extent.
func (p *Plotter) SetBounds(minX, maxX, minY, maxY float64) {
	b := geom.BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	p.bounds = &b
	p.backend.SetBounds(b)
}

// Zoom scales the current bounds in or out by a percentage; negative
// zooms out. A no-op until bounds have been set.
func (p *Plotter) Zoom(percent float64) {
	if p.bounds == nil {
		p.log.Warn("zoom ignored: no bounds set")
		return
	}
	dx := p.bounds.Width() * percent / 100
	dy := p.bounds.Height() * percent / 100
	p.bounds.MinX += dx
	p.bounds.MaxX -= dx
	p.bounds.MinY += dy
	p.bounds.MaxY -= dy
	p.backend.SetBounds(*p.bounds)
}

// Save rasterizes the attached primitives to a file via the backend.
func (p *Plotter) Save(path string) error {
	return p.backend.RasterizeToFile(path)
}
