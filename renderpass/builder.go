// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package renderpass builds vk.RenderPass objects from an accumulated
// attachment/subpass description, inferring subpass dependencies
// automatically instead of requiring the caller to hand-write them.
package renderpass

import (
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

// Attachment describes one attachment slot before a pass is built.
type Attachment struct {
	Format         vk.Format
	Samples        uint32
	LoadOp         vk.AttachmentLoadOp
	StoreOp        vk.AttachmentStoreOp
	StencilLoadOp  vk.AttachmentLoadOp
	StencilStoreOp vk.AttachmentStoreOp
	InitialLayout  vk.ImageLayout
	FinalLayout    vk.ImageLayout
}

// Subpass distinguishes the attachment roles a subpass references,
// used to infer WAW/RAW dependencies between subpasses.
type Subpass struct {
	ColorAttachments      []uint32 // indices into Builder.attachments, with ColorAttachmentOptimal layout
	InputAttachments      []uint32 // indices read as input attachments
	DepthStencilAttachment *uint32
}

// Builder accumulates attachments and subpasses, then Build infers
// dependencies and creates the vk.RenderPass.
type Builder struct {
	attachments []Attachment
	subpasses   []Subpass
}

func NewBuilder() *Builder { return &Builder{} }

// AddAttachment appends an attachment, returning its index for use in
// AddSubpass's attachment-reference lists.
func (b *Builder) AddAttachment(a Attachment) uint32 {
	b.attachments = append(b.attachments, a)
	return uint32(len(b.attachments) - 1)
}

// AddSubpass appends a subpass, returning its index.
func (b *Builder) AddSubpass(s Subpass) uint32 {
	b.subpasses = append(b.subpasses, s)
	return uint32(len(b.subpasses) - 1)
}

// Build creates the vk.RenderPass. Dependencies are inferred per four
// rules:
//  1. EXTERNAL -> 0 when subpass 0 writes color attachments, bridging
//     whatever touched the image beforehand.
//  2. EXTERNAL -> 0 when subpass 0 tests or writes depth/stencil.
//  3. i -> i+1, by-region, when a color attachment of subpass i is read
//     as an input attachment by subpass i+1.
//  4. last -> EXTERNAL when the last subpass writes color attachments,
//     making the result visible to whatever consumes the image next
//     (present engine, sampling pass).
func (b *Builder) Build(dev *device.Device) (vk.RenderPass, error) {
	if len(b.subpasses) == 0 {
		return 0, zerr.New(zerr.CodeInvalidUsage, "renderpass.Build", nil)
	}

	descs := make([]vk.AttachmentDescription, len(b.attachments))
	for i, a := range b.attachments {
		descs[i] = vk.AttachmentDescription{
			Format:         a.Format,
			Samples:        a.Samples,
			LoadOp:         uint32(a.LoadOp),
			StoreOp:        uint32(a.StoreOp),
			StencilLoadOp:  uint32(a.StencilLoadOp),
			StencilStoreOp: uint32(a.StencilStoreOp),
			InitialLayout:  a.InitialLayout,
			FinalLayout:    a.FinalLayout,
		}
	}

	subpassDescs := make([]vk.SubpassDescription, len(b.subpasses))
	// Keep reference slices alive until CreateRenderPass returns.
	var colorRefs [][]vk.AttachmentReference
	var inputRefs [][]vk.AttachmentReference
	var depthRefs []*vk.AttachmentReference

	for i, s := range b.subpasses {
		colors := make([]vk.AttachmentReference, len(s.ColorAttachments))
		for j, idx := range s.ColorAttachments {
			colors[j] = vk.AttachmentReference{Attachment: idx, Layout: vk.ImageLayoutColorAttachmentOptimal}
		}
		colorRefs = append(colorRefs, colors)

		inputs := make([]vk.AttachmentReference, len(s.InputAttachments))
		for j, idx := range s.InputAttachments {
			inputs[j] = vk.AttachmentReference{Attachment: idx, Layout: vk.ImageLayoutShaderReadOnlyOptimal}
		}
		inputRefs = append(inputRefs, inputs)

		desc := vk.SubpassDescription{PipelineBindPoint: vk.PipelineBindPointGraphics}
		if len(colors) > 0 {
			desc.ColorAttachmentCount = uint32(len(colors))
			desc.PColorAttachments = &colorRefs[i][0]
		}
		if len(inputs) > 0 {
			desc.InputAttachmentCount = uint32(len(inputs))
			desc.PInputAttachments = &inputRefs[i][0]
		}
		if s.DepthStencilAttachment != nil {
			ref := vk.AttachmentReference{Attachment: *s.DepthStencilAttachment, Layout: vk.ImageLayoutDepthStencilAttachmentOptimal}
			depthRefs = append(depthRefs, &ref)
			desc.PDepthStencilAttachment = depthRefs[len(depthRefs)-1]
		} else {
			depthRefs = append(depthRefs, nil)
		}
		subpassDescs[i] = desc
	}

	deps := b.inferDependencies()

	info := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(descs)),
		SubpassCount:    uint32(len(subpassDescs)),
	}
	if len(descs) > 0 {
		info.PAttachments = &descs[0]
	}
	if len(subpassDescs) > 0 {
		info.PSubpasses = &subpassDescs[0]
	}
	if len(deps) > 0 {
		info.DependencyCount = uint32(len(deps))
		info.PDependencies = &deps[0]
	}

	var handle vk.RenderPass
	result := dev.Commands().CreateRenderPass(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return 0, zerr.Classify("renderpass.Build", result)
	}
	return handle, nil
}

// inferDependencies applies the four dependency rules over the
// accumulated subpasses and attachments.
func (b *Builder) inferDependencies() []vk.SubpassDependency {
	var deps []vk.SubpassDependency

	// Rules 1 & 2: EXTERNAL -> 0 for color and depth/stencil work in the
	// first subpass.
	first := b.subpasses[0]
	if len(first.ColorAttachments) > 0 {
		deps = append(deps, vk.SubpassDependency{
			SrcSubpass: vk.SubpassExternal, DstSubpass: 0,
			SrcStageMask: vk.PipelineStageColorAttachmentOutputBit, DstStageMask: vk.PipelineStageColorAttachmentOutputBit,
			SrcAccessMask: 0, DstAccessMask: vk.AccessColorAttachmentWriteBit,
		})
	}
	if first.DepthStencilAttachment != nil {
		fragTests := vk.PipelineStageEarlyFragmentTestsBit | vk.PipelineStageLateFragmentTestsBit
		deps = append(deps, vk.SubpassDependency{
			SrcSubpass: vk.SubpassExternal, DstSubpass: 0,
			SrcStageMask: fragTests, DstStageMask: fragTests,
			SrcAccessMask: 0, DstAccessMask: vk.AccessDepthStencilAttachmentWriteBit,
		})
	}

	// Rule 3: adjacent subpasses chained through an input attachment.
	for i := 0; i+1 < len(b.subpasses); i++ {
		if !sharesColorAsInput(b.subpasses[i], b.subpasses[i+1]) {
			continue
		}
		deps = append(deps, vk.SubpassDependency{
			SrcSubpass: uint32(i), DstSubpass: uint32(i + 1),
			SrcStageMask: vk.PipelineStageColorAttachmentOutputBit, DstStageMask: vk.PipelineStageFragmentShaderBit,
			SrcAccessMask: vk.AccessColorAttachmentWriteBit, DstAccessMask: vk.AccessInputAttachmentReadBit,
			DependencyFlags: vk.DependencyByRegionBit,
		})
	}

	// Rule 4: last -> EXTERNAL for color output.
	last := len(b.subpasses) - 1
	if len(b.subpasses[last].ColorAttachments) > 0 {
		deps = append(deps, vk.SubpassDependency{
			SrcSubpass: uint32(last), DstSubpass: vk.SubpassExternal,
			SrcStageMask: vk.PipelineStageColorAttachmentOutputBit, DstStageMask: vk.PipelineStageBottomOfPipeBit,
			SrcAccessMask: vk.AccessColorAttachmentWriteBit, DstAccessMask: 0,
		})
	}

	return deps
}

func sharesColorAsInput(producer, consumer Subpass) bool {
	for _, c := range producer.ColorAttachments {
		for _, in := range consumer.InputAttachments {
			if c == in {
				return true
			}
		}
	}
	return false
}
