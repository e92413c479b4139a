package geom

import "slices"

// Clockwise reports whether ring is wound clockwise. The sign of the
// shoelace sum over consecutive vertex pairs (wrapping last to first)
// decides: positive means clockwise under this convention.
func Clockwise(ring []Point) bool {
	var total float64
	for i := range ring {
		j := (i + 1) % len(ring)
		total += (ring[j].X - ring[i].X) * (ring[j].Y + ring[i].Y)
	}
	return total > 0
}

// NormalizeRing returns a copy of ring wound in the requested direction
// and explicitly closed (first point repeated at the end). The input is
// never mutated. An empty ring cannot be oriented and fails with
// ErrDegenerateRing.
func NormalizeRing(ring []Point, clockwise bool) ([]Point, error) {
	if len(ring) == 0 {
		return nil, ErrDegenerateRing
	}
	out := make([]Point, len(ring), len(ring)+1)
	copy(out, ring)
	if Clockwise(out) != clockwise {
		slices.Reverse(out)
	}
	if out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out, nil
}
