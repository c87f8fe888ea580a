package pipeline

import (
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func TestColorTargetAttachmentStateNoBlend(t *testing.T) {
	s := ColorTarget{}.attachmentState()
	if s.BlendEnable != vk.False {
		t.Fatal("expected blend disabled by default")
	}
	if s.ColorWriteMask != uint32(vk.ColorComponentAllBits) {
		t.Fatalf("ColorWriteMask = %#x, want all components", s.ColorWriteMask)
	}
}

func TestColorTargetAttachmentStateWithBlend(t *testing.T) {
	target := ColorTarget{
		Blend:               true,
		SrcColorBlendFactor: vk.BlendFactorSrcAlpha,
		DstColorBlendFactor: vk.BlendFactorOneMinusSrcAlpha,
		ColorBlendOp:        vk.BlendOpAdd,
		SrcAlphaBlendFactor: vk.BlendFactorOne,
		DstAlphaBlendFactor: vk.BlendFactorZero,
		AlphaBlendOp:        vk.BlendOpAdd,
	}
	s := target.attachmentState()
	if s.BlendEnable != vk.True {
		t.Fatal("expected blend enabled")
	}
	if s.SrcColorBlendFactor != uint32(vk.BlendFactorSrcAlpha) {
		t.Fatalf("SrcColorBlendFactor = %d, want %d", s.SrcColorBlendFactor, vk.BlendFactorSrcAlpha)
	}
}
