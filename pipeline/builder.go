// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

// ShaderStage pairs a vk.ShaderModule with its entry point and stage.
type ShaderStage struct {
	Module     vk.ShaderModule
	Stage      vk.ShaderStageFlags
	EntryPoint string
}

// VertexBinding describes one vertex buffer binding and its attributes.
type VertexBinding struct {
	Binding    uint32
	Stride     uint32
	PerInstance bool
	Attributes []VertexAttribute
}

type VertexAttribute struct {
	Location uint32
	Format   vk.Format
	Offset   uint32
}

// ColorTarget describes one color attachment's blend state.
type ColorTarget struct {
	Blend bool

	SrcColorBlendFactor, DstColorBlendFactor vk.BlendFactor
	ColorBlendOp                             vk.BlendOp
	SrcAlphaBlendFactor, DstAlphaBlendFactor vk.BlendFactor
	AlphaBlendOp                             vk.BlendOp
}

func (t ColorTarget) attachmentState() vk.PipelineColorBlendAttachmentState {
	s := vk.PipelineColorBlendAttachmentState{ColorWriteMask: uint32(vk.ColorComponentAllBits)}
	if t.Blend {
		s.BlendEnable = vk.True
		s.SrcColorBlendFactor = uint32(t.SrcColorBlendFactor)
		s.DstColorBlendFactor = uint32(t.DstColorBlendFactor)
		s.ColorBlendOp = uint32(t.ColorBlendOp)
		s.SrcAlphaBlendFactor = uint32(t.SrcAlphaBlendFactor)
		s.DstAlphaBlendFactor = uint32(t.DstAlphaBlendFactor)
		s.AlphaBlendOp = uint32(t.AlphaBlendOp)
	}
	return s
}

// DepthState configures the depth-stencil stage. A zero value disables
// depth testing entirely.
type DepthState struct {
	TestEnable  bool
	WriteEnable bool
	CompareOp   vk.CompareOp
}

// GraphicsDescriptor accumulates everything a graphics pipeline needs.
// Build turns it into a single vk.Pipeline.
type GraphicsDescriptor struct {
	Stages   []ShaderStage
	Vertex   []VertexBinding
	Topology vk.PrimitiveTopology
	CullMode vk.CullModeFlags
	FrontFace vk.FrontFace
	Depth    DepthState
	Targets  []ColorTarget
	Layout   vk.PipelineLayout
	RenderPass vk.RenderPass
	Subpass  uint32
}

// Build creates one graphics pipeline from desc, registering it
// against cache (and marking the cache dirty so the next Persist call
// writes it out).
func Build(dev *device.Device, cache *Cache, desc GraphicsDescriptor) (vk.Pipeline, error) {
	if len(desc.Stages) == 0 {
		return 0, zerr.New(zerr.CodeInvalidUsage, "pipeline.Build", nil)
	}

	entryBytes := make([][]byte, len(desc.Stages))
	stages := make([]vk.PipelineShaderStageCreateInfo, len(desc.Stages))
	for i, s := range desc.Stages {
		entry := s.EntryPoint
		if entry == "" {
			entry = "main"
		}
		entryBytes[i] = append([]byte(entry), 0)
		stages[i] = vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  s.Stage,
			Module: s.Module,
			PName:  &entryBytes[i][0],
		}
	}

	var bindings []vk.VertexInputBindingDescription
	var attribs []vk.VertexInputAttributeDescription
	for _, vb := range desc.Vertex {
		rate := uint32(0)
		if vb.PerInstance {
			rate = 1
		}
		bindings = append(bindings, vk.VertexInputBindingDescription{Binding: vb.Binding, Stride: vb.Stride, InputRate: rate})
		for _, a := range vb.Attributes {
			attribs = append(attribs, vk.VertexInputAttributeDescription{Location: a.Location, Binding: vb.Binding, Format: a.Format, Offset: a.Offset})
		}
	}
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(bindings)),
		VertexAttributeDescriptionCount: uint32(len(attribs)),
	}
	if len(bindings) > 0 {
		vertexInput.PVertexBindingDescriptions = &bindings[0]
	}
	if len(attribs) > 0 {
		vertexInput.PVertexAttributeDescriptions = &attribs[0]
	}

	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: uint32(desc.Topology),
	}

	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}

	rasterization := vk.PipelineRasterizationStateCreateInfo{
		SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
		PolygonMode: uint32(vk.PolygonModeFill),
		CullMode:    uint32(desc.CullMode),
		FrontFace:   uint32(desc.FrontFace),
		LineWidth:   1.0,
	}

	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: 1,
		MinSampleShading:     1.0,
	}

	var depthStencil *vk.PipelineDepthStencilStateCreateInfo
	if desc.Depth.TestEnable {
		depthStencil = &vk.PipelineDepthStencilStateCreateInfo{
			SType:            vk.StructureTypePipelineDepthStencilStateCreateInfo,
			DepthTestEnable:  vk.True,
			DepthWriteEnable: boolToVk(desc.Depth.WriteEnable),
			DepthCompareOp:   uint32(desc.Depth.CompareOp),
		}
	}

	attachments := make([]vk.PipelineColorBlendAttachmentState, len(desc.Targets))
	for i, t := range desc.Targets {
		attachments[i] = t.attachmentState()
	}
	colorBlend := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		AttachmentCount: uint32(len(attachments)),
	}
	if len(attachments) > 0 {
		colorBlend.PAttachments = &attachments[0]
	}

	dynamicStates := []uint32{uint32(vk.DynamicStateViewport), uint32(vk.DynamicStateScissor)}
	dynamicState := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: uint32(len(dynamicStates)),
		PDynamicStates:    &dynamicStates[0],
	}

	info := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             &stages[0],
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterization,
		PMultisampleState:   &multisample,
		PDepthStencilState:  depthStencil,
		PColorBlendState:    &colorBlend,
		PDynamicState:       &dynamicState,
		Layout:              desc.Layout,
		RenderPass:          desc.RenderPass,
		Subpass:             desc.Subpass,
		BasePipelineIndex:   -1,
	}

	var handle vk.Pipeline
	result := dev.Commands().CreateGraphicsPipelines(dev.Handle(), cache.Handle(), 1, &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return 0, zerr.Classify("pipeline.Build", result)
	}
	cache.MarkDirty()
	return handle, nil
}

// CreateLayout builds a vk.PipelineLayout from a set of descriptor-set
// layouts and push-constant ranges.
func CreateLayout(dev *device.Device, setLayouts []vk.DescriptorSetLayout, pushConstants []vk.PushConstantRange) (vk.PipelineLayout, error) {
	info := vk.PipelineLayoutCreateInfo{SType: vk.StructureTypePipelineLayoutCreateInfo}
	if len(setLayouts) > 0 {
		info.SetLayoutCount = uint32(len(setLayouts))
		info.PSetLayouts = &setLayouts[0]
	}
	if len(pushConstants) > 0 {
		info.PushConstantRangeCount = uint32(len(pushConstants))
		info.PPushConstantRanges = &pushConstants[0]
	}
	var handle vk.PipelineLayout
	result := dev.Commands().CreatePipelineLayout(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return 0, zerr.Classify("pipeline.CreateLayout", result)
	}
	return handle, nil
}

func boolToVk(b bool) vk.Bool32 {
	if b {
		return vk.True
	}
	return vk.False
}
