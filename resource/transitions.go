// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package resource

import "github.com/ghostkellz/zeus-vk/vk"

// barrierSpec is the stage/access pair a layout transition issues, plus
// the default aspect mask for the image being transitioned.
type barrierSpec struct {
	srcStage  vk.PipelineStageFlags
	dstStage  vk.PipelineStageFlags
	srcAccess vk.AccessFlags
	dstAccess vk.AccessFlags
	aspect    vk.ImageAspectFlags
}

type transitionKey struct {
	from vk.ImageLayout
	to   vk.ImageLayout
}

// transitionTable holds the known layout transitions keyed by
// (from, to). Unlisted pairs are FeatureNotPresent unless the caller
// supplies explicit overrides.
var transitionTable = map[transitionKey]barrierSpec{
	{vk.ImageLayoutUndefined, vk.ImageLayoutTransferDstOptimal}: {
		srcStage: vk.PipelineStageTopOfPipeBit, dstStage: vk.PipelineStageTransferBit,
		srcAccess: 0, dstAccess: vk.AccessTransferWriteBit,
		aspect: vk.ImageAspectColorBit,
	},
	{vk.ImageLayoutUndefined, vk.ImageLayoutShaderReadOnlyOptimal}: {
		srcStage: vk.PipelineStageTopOfPipeBit, dstStage: vk.PipelineStageFragmentShaderBit,
		srcAccess: 0, dstAccess: vk.AccessShaderReadBit,
		aspect: vk.ImageAspectColorBit,
	},
	{vk.ImageLayoutUndefined, vk.ImageLayoutColorAttachmentOptimal}: {
		srcStage: vk.PipelineStageTopOfPipeBit, dstStage: vk.PipelineStageColorAttachmentOutputBit,
		srcAccess: 0, dstAccess: vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit,
		aspect: vk.ImageAspectColorBit,
	},
	{vk.ImageLayoutUndefined, vk.ImageLayoutDepthStencilAttachmentOptimal}: {
		srcStage: vk.PipelineStageTopOfPipeBit, dstStage: vk.PipelineStageEarlyFragmentTestsBit,
		srcAccess: 0, dstAccess: vk.AccessDepthStencilAttachmentReadBit | vk.AccessDepthStencilAttachmentWriteBit,
		aspect: vk.ImageAspectDepthBit,
	},
	{vk.ImageLayoutTransferDstOptimal, vk.ImageLayoutShaderReadOnlyOptimal}: {
		srcStage: vk.PipelineStageTransferBit, dstStage: vk.PipelineStageFragmentShaderBit,
		srcAccess: vk.AccessTransferWriteBit, dstAccess: vk.AccessShaderReadBit,
		aspect: vk.ImageAspectColorBit,
	},
	{vk.ImageLayoutColorAttachmentOptimal, vk.ImageLayoutPresentSrcKHR}: {
		srcStage: vk.PipelineStageColorAttachmentOutputBit, dstStage: vk.PipelineStageBottomOfPipeBit,
		srcAccess: vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit, dstAccess: 0,
		aspect: vk.ImageAspectColorBit,
	},
}

// TransitionOverride lets a caller supply explicit stage/access values
// for a pair the table doesn't list, instead of failing.
type TransitionOverride struct {
	SrcStage  vk.PipelineStageFlags
	DstStage  vk.PipelineStageFlags
	SrcAccess vk.AccessFlags
	DstAccess vk.AccessFlags
}

func lookupTransition(from, to vk.ImageLayout) (barrierSpec, bool) {
	spec, ok := transitionTable[transitionKey{from, to}]
	return spec, ok
}
