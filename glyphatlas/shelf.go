// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package glyphatlas

// Rect is a placed rectangle in atlas texel coordinates. X/Y point at
// the glyph's first texel, inside the padding border.
type Rect struct {
	X, Y, W, H uint32
}

// shelf is one horizontal strip of the atlas: everything packed into it
// shares the strip's height. A height of zero marks a fresh shelf whose
// height is fixed by the first rectangle placed into it.
type shelf struct {
	y       uint32
	height  uint32
	cursorX uint32
}

// shelfPacker places rectangles into horizontal strips, top to bottom.
// Shelves are only ever appended; reset starts over with a single fresh
// shelf at y=0.
type shelfPacker struct {
	width   uint32
	height  uint32
	shelves []shelf
}

func newShelfPacker(width, height uint32) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		shelves: []shelf{{}},
	}
}

func (p *shelfPacker) reset(width, height uint32) {
	p.width = width
	p.height = height
	p.shelves = p.shelves[:0]
	p.shelves = append(p.shelves, shelf{})
}

// bottom is the y coordinate just below the lowest shelf, where a new
// shelf would start.
func (p *shelfPacker) bottom() uint32 {
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height
}

// reserve finds room for a w×h rectangle surrounded by pad texels on
// every side. Among the shelves that fit it picks the topmost; a fresh
// shelf adopts the padded height on first placement. Returns the inner
// (unpadded) rectangle.
func (p *shelfPacker) reserve(w, h, pad uint32) (Rect, bool) {
	pw := w + 2*pad
	ph := h + 2*pad
	if pw > p.width || ph > p.height {
		return Rect{}, false
	}

	best := -1
	for i := range p.shelves {
		s := &p.shelves[i]
		if p.width-s.cursorX < pw {
			continue
		}
		if s.height != 0 && s.height < ph {
			continue
		}
		if s.height == 0 && s.y+ph > p.height {
			continue
		}
		if best < 0 || s.y < p.shelves[best].y {
			best = i
		}
	}

	if best >= 0 {
		s := &p.shelves[best]
		if s.height == 0 {
			s.height = ph
		}
		x := s.cursorX
		s.cursorX += pw
		return Rect{X: x + pad, Y: s.y + pad, W: w, H: h}, true
	}

	if y := p.bottom(); y+ph <= p.height {
		p.shelves = append(p.shelves, shelf{y: y, height: ph, cursorX: pw})
		return Rect{X: pad, Y: y + pad, W: w, H: h}, true
	}

	return Rect{}, false
}
