package renderpass

import (
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func TestInferDependenciesExternalToFirstColorSubpass(t *testing.T) {
	b := NewBuilder()
	color := b.AddAttachment(Attachment{FinalLayout: vk.ImageLayoutColorAttachmentOptimal})
	b.AddSubpass(Subpass{ColorAttachments: []uint32{color}})

	deps := b.inferDependencies()
	found := false
	for _, d := range deps {
		if d.SrcSubpass == vk.SubpassExternal && d.DstSubpass == 0 {
			found = true
			if d.SrcStageMask != vk.PipelineStageColorAttachmentOutputBit ||
				d.DstStageMask != vk.PipelineStageColorAttachmentOutputBit {
				t.Errorf("stages = %#x/%#x, want color-attachment-output on both sides", d.SrcStageMask, d.DstStageMask)
			}
			if d.SrcAccessMask != 0 || d.DstAccessMask != vk.AccessColorAttachmentWriteBit {
				t.Errorf("access = %#x/%#x, want 0 -> COLOR_ATTACHMENT_WRITE", d.SrcAccessMask, d.DstAccessMask)
			}
		}
	}
	if !found {
		t.Fatal("expected an EXTERNAL -> 0 dependency for the first color subpass")
	}
}

func TestInferDependenciesExternalToFirstDepthSubpass(t *testing.T) {
	b := NewBuilder()
	depth := b.AddAttachment(Attachment{FinalLayout: vk.ImageLayoutDepthStencilAttachmentOptimal})
	b.AddSubpass(Subpass{DepthStencilAttachment: &depth})

	deps := b.inferDependencies()
	fragTests := vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit
	found := false
	for _, d := range deps {
		if d.SrcSubpass == vk.SubpassExternal && d.DstSubpass == 0 && d.DstStageMask == fragTests {
			found = true
			if d.DstAccessMask != vk.AccessDepthStencilAttachmentWriteBit {
				t.Errorf("dst access = %#x, want DEPTH_STENCIL_WRITE", d.DstAccessMask)
			}
		}
	}
	if !found {
		t.Fatal("expected an EXTERNAL -> 0 dependency spanning early+late fragment tests")
	}
}

func TestInferDependenciesInterSubpassInputAttachment(t *testing.T) {
	b := NewBuilder()
	color := b.AddAttachment(Attachment{FinalLayout: vk.ImageLayoutColorAttachmentOptimal})
	b.AddSubpass(Subpass{ColorAttachments: []uint32{color}})
	b.AddSubpass(Subpass{InputAttachments: []uint32{color}})

	deps := b.inferDependencies()
	found := false
	for _, d := range deps {
		if d.SrcSubpass == 0 && d.DstSubpass == 1 {
			found = true
			if d.DependencyFlags&vk.DependencyByRegionBit == 0 {
				t.Fatal("expected inter-subpass input-attachment dependency to be by-region")
			}
			if d.SrcAccessMask != vk.AccessColorAttachmentWriteBit || d.DstAccessMask != vk.AccessInputAttachmentReadBit {
				t.Errorf("access = %#x/%#x, want COLOR_WRITE -> INPUT_READ", d.SrcAccessMask, d.DstAccessMask)
			}
		}
	}
	if !found {
		t.Fatal("expected a 0 -> 1 dependency for the shared attachment")
	}
}

func TestInferDependenciesNoChainWithoutSharedAttachment(t *testing.T) {
	b := NewBuilder()
	a0 := b.AddAttachment(Attachment{FinalLayout: vk.ImageLayoutColorAttachmentOptimal})
	a1 := b.AddAttachment(Attachment{FinalLayout: vk.ImageLayoutColorAttachmentOptimal})
	b.AddSubpass(Subpass{ColorAttachments: []uint32{a0}})
	b.AddSubpass(Subpass{InputAttachments: []uint32{a1}})

	for _, d := range b.inferDependencies() {
		if d.SrcSubpass == 0 && d.DstSubpass == 1 {
			t.Fatal("no dependency expected when subpasses do not share an attachment")
		}
	}
}

func TestInferDependenciesLastSubpassToExternal(t *testing.T) {
	b := NewBuilder()
	color := b.AddAttachment(Attachment{FinalLayout: vk.ImageLayoutPresentSrcKHR})
	b.AddSubpass(Subpass{ColorAttachments: []uint32{color}})

	deps := b.inferDependencies()
	found := false
	for _, d := range deps {
		if d.SrcSubpass == 0 && d.DstSubpass == vk.SubpassExternal {
			found = true
			if d.DstStageMask != vk.PipelineStageBottomOfPipeBit {
				t.Errorf("dst stage = %#x, want BOTTOM_OF_PIPE", d.DstStageMask)
			}
			if d.SrcAccessMask != vk.AccessColorAttachmentWriteBit || d.DstAccessMask != 0 {
				t.Errorf("access = %#x/%#x, want COLOR_WRITE -> 0", d.SrcAccessMask, d.DstAccessMask)
			}
		}
	}
	if !found {
		t.Fatal("expected a trailing EXTERNAL dependency for the last color subpass")
	}
}

func TestInferDependenciesDepthOnlyPassHasNoColorDeps(t *testing.T) {
	b := NewBuilder()
	depth := b.AddAttachment(Attachment{FinalLayout: vk.ImageLayoutDepthStencilAttachmentOptimal})
	b.AddSubpass(Subpass{DepthStencilAttachment: &depth})

	for _, d := range b.inferDependencies() {
		if d.DstSubpass == vk.SubpassExternal {
			t.Fatal("a depth-only pass must not get the trailing color dependency")
		}
	}
}
