package geom

import "errors"

var (
	// ErrUnsupportedGeometry reports a geometry tag outside the recognized set.
	ErrUnsupportedGeometry = errors.New("geom: unsupported geometry kind")

	// ErrDegenerateRing reports a ring with too few points to orient.
	ErrDegenerateRing = errors.New("geom: degenerate ring")
)
