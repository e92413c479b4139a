package plot

import (
	"errors"

	"geoplot/internal/geom"
)

// fakePrimitive records enough state to verify registry behavior.
type fakePrimitive struct {
	kind   PrimitiveKind
	points int
	style  Style
}

func (f *fakePrimitive) Kind() PrimitiveKind { return f.kind }
func (f *fakePrimitive) PointCount() int     { return f.points }
func (f *fakePrimitive) Style() Style        { return f.style }
func (f *fakePrimitive) SetStyle(st Style)   { f.style = st }

// fakeBackend counts draw/attach/detach traffic and tracks which
// primitives are currently on the canvas.
type fakeBackend struct {
	drawn    []*fakePrimitive
	attached map[Primitive]bool
	attaches int
	detaches int
	failNext error // returned by the next Attach when set
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{attached: make(map[Primitive]bool)}
}

func (b *fakeBackend) DrawMarker(pt geom.Point, st Style) (Primitive, error) {
	p := &fakePrimitive{kind: Marker, points: 1, style: st}
	b.drawn = append(b.drawn, p)
	return p, nil
}

func (b *fakeBackend) DrawPath(pts []geom.Point, st Style, closed bool) (Primitive, error) {
	p := &fakePrimitive{kind: Path, points: len(pts), style: st}
	b.drawn = append(b.drawn, p)
	return p, nil
}

func (b *fakeBackend) DrawCompoundPath(spec geom.PathSpec, st Style) (Primitive, error) {
	p := &fakePrimitive{kind: CompoundPath, points: len(spec.Vertices), style: st}
	b.drawn = append(b.drawn, p)
	return p, nil
}

func (b *fakeBackend) Attach(p Primitive) error {
	if b.failNext != nil {
		err := b.failNext
		b.failNext = nil
		return err
	}
	if b.attached[p] {
		return errors.New("fake: double attach")
	}
	b.attached[p] = true
	b.attaches++
	return nil
}

func (b *fakeBackend) Detach(p Primitive) error {
	if !b.attached[p] {
		return errors.New("fake: detach of unattached primitive")
	}
	delete(b.attached, p)
	b.detaches++
	return nil
}

func (b *fakeBackend) SetBounds(geom.BBox)          {}
func (b *fakeBackend) SetEqualAspect(bool)          {}
func (b *fakeBackend) RasterizeToFile(string) error { return nil }

func (b *fakeBackend) onCanvas() int { return len(b.attached) }
