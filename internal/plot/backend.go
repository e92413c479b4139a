package plot

import (
	"errors"

	"geoplot/internal/geom"
)

// PrimitiveKind classifies the drawables a backend can produce.
type PrimitiveKind int

const (
	Marker PrimitiveKind = iota + 1
	Path
	CompoundPath
)

func (k PrimitiveKind) String() string {
	switch k {
	case Marker:
		return "marker"
	case Path:
		return "path"
	case CompoundPath:
		return "compound path"
	}
	return "unknown"
}

// Primitive is an opaque handle to a drawable object created by a
// Backend. A primitive belongs to exactly one layer once stored and is
// never shared across layers.
type Primitive interface {
	Kind() PrimitiveKind
	PointCount() int
	Style() Style
	SetStyle(Style)
}

// Backend materializes primitives on a shared rendering surface. Draw
// calls create detached primitives; Attach and Detach move them on and
// off the canvas. All calls are synchronous and any failure propagates
// immediately to the caller with no retry.
type Backend interface {
	DrawMarker(pt geom.Point, st Style) (Primitive, error)
	DrawPath(pts []geom.Point, st Style, closed bool) (Primitive, error)
	DrawCompoundPath(spec geom.PathSpec, st Style) (Primitive, error)

	Attach(p Primitive) error
	Detach(p Primitive) error

	SetBounds(b geom.BBox)
	SetEqualAspect(on bool)
	RasterizeToFile(path string) error
}

// ErrForeignPrimitive reports a primitive handed to a backend that did
// not create it.
var ErrForeignPrimitive = errors.New("plot: primitive from another backend")
