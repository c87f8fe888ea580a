package glyphatlas

import (
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func TestKeyHashStableAndDistinguishing(t *testing.T) {
	a := Key{FontID: 1, GlyphID: 65, PixelSize: 24}
	b := Key{FontID: 1, GlyphID: 65, PixelSize: 24}
	if a.hash() != b.hash() {
		t.Fatal("identical keys must hash identically")
	}
	for _, other := range []Key{
		{FontID: 2, GlyphID: 65, PixelSize: 24},
		{FontID: 1, GlyphID: 66, PixelSize: 24},
		{FontID: 1, GlyphID: 65, PixelSize: 25},
	} {
		if a.hash() == other.hash() {
			t.Fatalf("key %+v must not collide with %+v", other, a)
		}
	}
}

func TestSuggestGrowthDoublesAndCaps(t *testing.T) {
	got := SuggestGrowth(vk.Extent2D{Width: 512, Height: 512})
	if got.Width != 1024 || got.Height != 1024 {
		t.Fatalf("growth from 512 = %+v, want 1024x1024", got)
	}

	got = SuggestGrowth(vk.Extent2D{Width: 4096, Height: 2048})
	if got.Width != 4096 || got.Height != 4096 {
		t.Fatalf("growth from 4096x2048 = %+v, want capped 4096x4096", got)
	}
}

func TestPlacementInfoUVsNormalizedAndInRange(t *testing.T) {
	extent := vk.Extent2D{Width: 512, Height: 512}
	rect := Rect{X: 1, Y: 1, W: 16, H: 16}
	info := placementInfo(rect, Metrics{Width: 16, Height: 16, BearingX: 2, BearingY: 14, Advance: 18}, extent)

	if info.Rect != rect {
		t.Fatalf("info.Rect = %+v, want %+v", info.Rect, rect)
	}
	wantMin := [2]float32{1.0 / 512, 1.0 / 512}
	wantMax := [2]float32{17.0 / 512, 17.0 / 512}
	if info.UVMin != wantMin {
		t.Errorf("UVMin = %v, want %v", info.UVMin, wantMin)
	}
	if info.UVMax != wantMax {
		t.Errorf("UVMax = %v, want %v", info.UVMax, wantMax)
	}
	for _, uv := range []float32{info.UVMin[0], info.UVMin[1], info.UVMax[0], info.UVMax[1]} {
		if uv < 0 || uv > 1 {
			t.Fatalf("uv %v out of [0,1]", uv)
		}
	}
	if info.BearingX != 2 || info.BearingY != 14 || info.Advance != 18 {
		t.Fatalf("metrics not carried through: %+v", info)
	}
}
