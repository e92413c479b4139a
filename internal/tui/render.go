package tui

import (
	"sort"

	"geoplot/internal/geom"
	"geoplot/internal/plot"
)

// projection maps data coordinates onto the braille microgrid (2x4
// micro-pixels per cell), zooming around the view center and panning in
// cell units.
type projection struct {
	bounds     geom.BBox
	wMic, hMic int
	zoom       float64
	offX, offY int // pan, in micro-pixels
}

func newProjection(bounds geom.BBox, wCells, hCells int, zoom float64, offX, offY int) projection {
	return projection{
		bounds: bounds,
		wMic:   wCells * 2,
		hMic:   hCells * 4,
		zoom:   zoom,
		offX:   offX * 2,
		offY:   offY * 4,
	}
}

// micro converts a data point to microgrid coordinates, Y inverted.
func (pr projection) micro(p geom.Point) (int, int) {
	w := pr.bounds.Width()
	h := pr.bounds.Height()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	nx := (p.X - pr.bounds.MinX) / w
	ny := (p.Y - pr.bounds.MinY) / h
	zx := 0.5 + (nx-0.5)*pr.zoom
	zy := 0.5 + (ny-0.5)*pr.zoom
	mx := int(zx*float64(pr.wMic-1)) + pr.offX
	my := int((1.0-zy)*float64(pr.hMic-1)) + pr.offY
	return mx, my
}

// renderScene draws every primitive of the scene into the buffer, in
// attach order so later layers draw over earlier ones.
func renderScene(scene []*primitive, br *brailleBuf, pr projection) {
	for _, prim := range scene {
		switch prim.kind {
		case plot.Marker:
			mx, my := pr.micro(prim.verts[0])
			br.marker(mx, my)
		case plot.Path:
			drawPolyline(br, pr, prim.verts, prim.closed)
		case plot.CompoundPath:
			drawCompound(br, pr, prim)
		}
	}
}

func drawPolyline(br *brailleBuf, pr projection, verts []geom.Point, closed bool) {
	if len(verts) == 0 {
		return
	}
	px, py := pr.micro(verts[0])
	fx, fy := px, py
	for _, v := range verts[1:] {
		mx, my := pr.micro(v)
		br.line(px, py, mx, my)
		px, py = mx, my
	}
	if closed {
		br.line(px, py, fx, fy)
	}
}

// drawCompound scanline-fills a compound path with the even-odd rule
// over all of its rings, so hole rings come out as gaps, then traces
// each ring's edges for a crisp outline.
func drawCompound(br *brailleBuf, pr projection, prim *primitive) {
	rings := geom.PathSpec{Vertices: prim.verts, Verbs: prim.verbs}.Rings()
	if len(rings) == 0 {
		return
	}
	// project all rings to micro coordinates once
	mic := make([][][2]int, 0, len(rings))
	for _, ring := range rings {
		mr := make([][2]int, 0, len(ring))
		for _, p := range ring {
			mx, my := pr.micro(p)
			mr = append(mr, [2]int{mx, my})
		}
		mic = append(mic, mr)
	}
	if prim.style.Fill != plot.FillNone {
		fillRings(br, mic)
	}
	for _, mr := range mic {
		for i := 0; i < len(mr); i++ {
			a := mr[i]
			b := mr[(i+1)%len(mr)]
			br.line(a[0], a[1], b[0], b[1])
		}
	}
}

// fillRings fills the even-odd interior of a ring set per scanline.
func fillRings(br *brailleBuf, rings [][][2]int) {
	for yMic := 0; yMic < br.h*4; yMic++ {
		var xs []int
		for _, ring := range rings {
			for i := 0; i < len(ring); i++ {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, a[0]+int(t*float64(b[0]-a[0])))
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			for x := max(0, x0); x <= x1; x++ {
				br.setPixel(x, yMic)
			}
		}
	}
}
