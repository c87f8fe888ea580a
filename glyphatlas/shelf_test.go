package glyphatlas

import "testing"

func TestReserveFirstGlyphLandsInsidePadding(t *testing.T) {
	p := newShelfPacker(512, 512)
	rect, ok := p.reserve(16, 16, 1)
	if !ok {
		t.Fatal("reserve failed on an empty 512x512 atlas")
	}
	want := Rect{X: 1, Y: 1, W: 16, H: 16}
	if rect != want {
		t.Fatalf("rect = %+v, want %+v", rect, want)
	}
}

func TestReserveFreshShelfAdoptsPaddedHeight(t *testing.T) {
	p := newShelfPacker(128, 128)
	if _, ok := p.reserve(16, 16, 1); !ok {
		t.Fatal("reserve failed")
	}
	if got := p.shelves[0].height; got != 18 {
		t.Fatalf("shelf height = %d, want 18", got)
	}
	if got := p.shelves[0].cursorX; got != 18 {
		t.Fatalf("shelf cursor = %d, want 18", got)
	}
}

func TestReservePacksAlongShelfThenOpensNewShelf(t *testing.T) {
	p := newShelfPacker(64, 64)

	// 16+2 padded: three fit on one 64-wide shelf, the fourth opens a
	// second shelf below.
	var rects []Rect
	for i := 0; i < 4; i++ {
		r, ok := p.reserve(16, 16, 1)
		if !ok {
			t.Fatalf("reserve %d failed", i)
		}
		rects = append(rects, r)
	}

	for i := 0; i < 3; i++ {
		if rects[i].Y != 1 {
			t.Errorf("rect %d y = %d, want 1 (first shelf)", i, rects[i].Y)
		}
	}
	if rects[3].Y != 19 {
		t.Errorf("rect 3 y = %d, want 19 (second shelf)", rects[3].Y)
	}
	if len(p.shelves) != 2 {
		t.Fatalf("shelf count = %d, want 2", len(p.shelves))
	}
}

func TestReserveRectsArePairwiseDisjoint(t *testing.T) {
	p := newShelfPacker(256, 256)
	sizes := []struct{ w, h uint32 }{
		{16, 16}, {32, 24}, {8, 30}, {60, 12}, {16, 16}, {40, 40}, {10, 10},
	}
	var rects []Rect
	for _, s := range sizes {
		r, ok := p.reserve(s.w, s.h, 1)
		if !ok {
			t.Fatalf("reserve %dx%d failed", s.w, s.h)
		}
		if r.X+r.W > 256 || r.Y+r.H > 256 {
			t.Fatalf("rect %+v escapes the atlas", r)
		}
		rects = append(rects, r)
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if overlaps(rects[i], rects[j]) {
				t.Fatalf("rects %+v and %+v overlap", rects[i], rects[j])
			}
		}
	}
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestReservePadIsolatesNeighbors(t *testing.T) {
	p := newShelfPacker(128, 128)
	r1, _ := p.reserve(16, 16, 1)
	r2, _ := p.reserve(16, 16, 1)
	if r2.X-(r1.X+r1.W) < 2 {
		t.Fatalf("neighbors separated by %d texels, want >= 2 (1 pad each)", r2.X-(r1.X+r1.W))
	}
}

func TestReserveTooLargeFails(t *testing.T) {
	p := newShelfPacker(64, 64)
	if _, ok := p.reserve(64, 16, 1); ok {
		t.Fatal("64-wide glyph plus padding cannot fit a 64-wide atlas")
	}
	if _, ok := p.reserve(16, 64, 1); ok {
		t.Fatal("64-tall glyph plus padding cannot fit a 64-tall atlas")
	}
}

func TestReserveFullAtlasFails(t *testing.T) {
	p := newShelfPacker(40, 40)
	// 18x18 padded: two shelves of height 18 fill rows 0..36; a third
	// does not fit in the remaining 4 rows.
	placed := 0
	for {
		if _, ok := p.reserve(16, 16, 1); !ok {
			break
		}
		placed++
	}
	if placed != 4 {
		t.Fatalf("placed %d glyphs, want 4 (2 shelves x 2 columns)", placed)
	}
}

func TestResetReseedsSingleFreshShelf(t *testing.T) {
	p := newShelfPacker(64, 64)
	p.reserve(16, 16, 1)
	p.reserve(16, 16, 1)

	p.reset(128, 128)
	if len(p.shelves) != 1 {
		t.Fatalf("shelf count after reset = %d, want 1", len(p.shelves))
	}
	if p.shelves[0] != (shelf{}) {
		t.Fatalf("reset shelf = %+v, want zero fresh shelf", p.shelves[0])
	}
	r, ok := p.reserve(100, 100, 1)
	if !ok || r.X != 1 || r.Y != 1 {
		t.Fatalf("first rect after reset = %+v ok=%v, want (1,1) true", r, ok)
	}
}

func TestReservePrefersTopmostFittingShelf(t *testing.T) {
	p := newShelfPacker(64, 128)
	p.reserve(30, 30, 1) // shelf 0: height 32, cursor 32
	p.reserve(30, 30, 1) // shelf 0 full (cursor 64)
	p.reserve(30, 30, 1) // shelf 1 at y=32

	// Shelf 0 has no room left (cursor 64), so shelf 1 at y=32 is the
	// topmost shelf with space for a small glyph.
	r, ok := p.reserve(8, 8, 1)
	if !ok {
		t.Fatal("reserve failed")
	}
	if r.Y != 33 {
		t.Fatalf("rect y = %d, want 33 (shelf at y=32 plus padding)", r.Y)
	}
}
