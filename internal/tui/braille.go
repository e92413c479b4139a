package tui

// brailleBuf accumulates a 2x4 micro-pixel grid per terminal cell and
// renders it as braille runes.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit dot mask
}

// brailleDots maps (row, column) on the 2x4 microgrid to the dot bit in
// the braille pattern block (U+2800..U+28FF).
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2 wide, 4 tall per cell).
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= brailleDots[my%4][mx%2]
}

// line draws a micro-pixel segment with Bresenham's algorithm.
func (b *brailleBuf) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// marker sets a small cross so single points stay visible.
func (b *brailleBuf) marker(mx, my int) {
	b.setPixel(mx, my)
	b.setPixel(mx-1, my)
	b.setPixel(mx+1, my)
	b.setPixel(mx, my-1)
	b.setPixel(mx, my+1)
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := range b.m {
		row := make([]rune, b.w)
		for x, mask := range b.m[y] {
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
