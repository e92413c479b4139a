package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geoplot/internal/geom"
	"geoplot/internal/plot"
)

func TestBrailleSetPixelBits(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.setPixel(0, 0)
	if b.m[0][0] != 0x01 {
		t.Errorf("dot (0,0) mask = %#x, want 0x01", b.m[0][0])
	}
	b.setPixel(1, 3)
	if b.m[0][0] != 0x01|0x80 {
		t.Errorf("dot (1,3) mask = %#x, want 0x81", b.m[0][0])
	}
	// second cell across, second cell down
	b.setPixel(2, 4)
	if b.m[1][1] != 0x01 {
		t.Errorf("dot (2,4) mask = %#x, want 0x01 in cell (1,1)", b.m[1][1])
	}
	// out of range is ignored
	b.setPixel(-1, 0)
	b.setPixel(0, 99)
}

func TestBrailleToLines(t *testing.T) {
	b := newBrailleBuf(3, 1)
	b.setPixel(0, 0)
	lines := b.toLines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	runes := []rune(lines[0])
	if runes[0] != rune(0x2801) {
		t.Errorf("cell 0 = %U, want U+2801", runes[0])
	}
	if runes[1] != ' ' || runes[2] != ' ' {
		t.Error("untouched cells not blank")
	}
}

func TestBrailleLineHorizontal(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.line(0, 0, 7, 0)
	for x := range 4 {
		if b.m[0][x] == 0 {
			t.Errorf("cell %d untouched by horizontal line", x)
		}
	}
}

func TestProjectionCorners(t *testing.T) {
	pr := newProjection(geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, 10, 10, 1.0, 0, 0)
	// min corner lands bottom-left, max corner top-right (Y inverted)
	mx, my := pr.micro(geom.Point{X: 0, Y: 0})
	if mx != 0 || my != pr.hMic-1 {
		t.Errorf("min corner = (%d,%d), want (0,%d)", mx, my, pr.hMic-1)
	}
	mx, my = pr.micro(geom.Point{X: 10, Y: 10})
	if mx != pr.wMic-1 || my != 0 {
		t.Errorf("max corner = (%d,%d), want (%d,0)", mx, my, pr.wMic-1)
	}
}

func TestCompoundFillLeavesHole(t *testing.T) {
	spec, err := geom.BuildPath(
		[]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		[]geom.Point{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}},
	)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBackend()
	p, err := b.DrawCompoundPath(spec, plot.Style{Fill: "#2ca02c"})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Attach(p); err != nil {
		t.Fatal(err)
	}
	br := newBrailleBuf(20, 10)
	pr := newProjection(geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, 20, 10, 1.0, 0, 0)
	renderScene(b.scene, br, pr)

	// a micro-pixel between outer ring and hole is set
	mx, my := pr.micro(geom.Point{X: 5, Y: 1.5})
	if br.m[my/4][mx/2] == 0 {
		t.Error("ring interior not filled")
	}
	// the hole center stays clear
	mx, my = pr.micro(geom.Point{X: 5, Y: 5})
	if br.m[my/4][mx/2] != 0 {
		t.Error("hole center filled, want gap")
	}
}

func TestBackendSceneFollowsAttachDetach(t *testing.T) {
	b := NewBackend()
	p, err := b.DrawMarker(geom.Point{X: 1, Y: 2}, plot.Style{})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Attach(p); err != nil {
		t.Fatal(err)
	}
	if len(b.scene) != 1 {
		t.Fatalf("scene = %d, want 1", len(b.scene))
	}
	if err := b.Detach(p); err != nil {
		t.Fatal(err)
	}
	if len(b.scene) != 0 {
		t.Fatalf("scene = %d, want 0", len(b.scene))
	}
	if _, ok := b.viewBounds(); ok {
		t.Error("empty scene reported bounds")
	}
}

func TestRasterizeToFileWritesBraille(t *testing.T) {
	b := NewBackend()
	p, err := b.DrawPath([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, plot.Style{Color: "#1f77b4"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Attach(p); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "snapshot.txt")
	if err := b.RasterizeToFile(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsFunc(string(data), func(r rune) bool { return r >= 0x2800 && r <= 0x28ff }) {
		t.Error("snapshot contains no braille cells")
	}
}
