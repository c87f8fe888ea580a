package resource

import (
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func TestLookupTransitionKnownPairs(t *testing.T) {
	cases := []struct {
		from, to vk.ImageLayout
	}{
		{vk.ImageLayoutUndefined, vk.ImageLayoutTransferDstOptimal},
		{vk.ImageLayoutUndefined, vk.ImageLayoutShaderReadOnlyOptimal},
		{vk.ImageLayoutUndefined, vk.ImageLayoutColorAttachmentOptimal},
		{vk.ImageLayoutUndefined, vk.ImageLayoutDepthStencilAttachmentOptimal},
		{vk.ImageLayoutTransferDstOptimal, vk.ImageLayoutShaderReadOnlyOptimal},
		{vk.ImageLayoutColorAttachmentOptimal, vk.ImageLayoutPresentSrcKHR},
	}
	for _, c := range cases {
		if _, ok := lookupTransition(c.from, c.to); !ok {
			t.Errorf("lookupTransition(%v, %v) = not found, want a spec", c.from, c.to)
		}
	}
}

func TestLookupTransitionUnknownPair(t *testing.T) {
	if _, ok := lookupTransition(vk.ImageLayoutShaderReadOnlyOptimal, vk.ImageLayoutTransferSrcOptimal); ok {
		t.Fatal("expected no transition spec for an unlisted pair")
	}
}
