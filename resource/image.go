// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/memory"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

// Image is a vk.Image bound to allocator-managed device memory, with
// an optional default view and layout-transition tracking.
type Image struct {
	dev   *device.Device
	alloc *memory.Allocator

	handle vk.Image
	view   vk.ImageView
	region *memory.AllocationHandle

	extent      vk.Extent3D
	format      vk.Format
	mipLevels   uint32
	arrayLayers uint32
	aspectMask  vk.ImageAspectFlags

	currentLayout vk.ImageLayout
}

// ImageDescriptor describes an image to create.
type ImageDescriptor struct {
	Extent      vk.Extent3D
	Format      vk.Format
	MipLevels   uint32
	ArrayLayers uint32
	Usage       vk.ImageUsageFlags
	AspectMask  vk.ImageAspectFlags
	Memory      memory.Usage
	CreateView  bool
}

// CreateImage allocates a vk.Image per desc and binds it to a fresh
// allocation from alloc. If desc.CreateView, it also builds a default
// 2D view covering the whole subresource range.
func CreateImage(dev *device.Device, alloc *memory.Allocator, desc ImageDescriptor) (*Image, error) {
	mipLevels := desc.MipLevels
	if mipLevels == 0 {
		mipLevels = 1
	}
	arrayLayers := desc.ArrayLayers
	if arrayLayers == 0 {
		arrayLayers = 1
	}
	aspect := desc.AspectMask
	if aspect == 0 {
		aspect = vk.ImageAspectColorBit
	}

	info := vk.ImageCreateInfo{
		SType:       vk.StructureTypeImageCreateInfo,
		ImageType:   1, // VK_IMAGE_TYPE_2D
		Format:      desc.Format,
		Extent:      desc.Extent,
		MipLevels:   mipLevels,
		ArrayLayers: arrayLayers,
		Samples:     1, // VK_SAMPLE_COUNT_1_BIT
		Tiling:      1, // VK_IMAGE_TILING_OPTIMAL
		Usage:       desc.Usage,
		SharingMode: vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var handle vk.Image
	result := dev.Commands().CreateImage(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return nil, zerr.Classify("resource.CreateImage", result)
	}

	var reqs vk.MemoryRequirements
	dev.Commands().GetImageMemoryRequirements(dev.Handle(), handle, &reqs)

	region, err := alloc.Allocate(memory.Request{Requirements: reqs, Usage: desc.Memory})
	if err != nil {
		dev.Commands().DestroyImage(dev.Handle(), handle, dev.AllocationCallback())
		return nil, err
	}

	if result := dev.Commands().BindImageMemory(dev.Handle(), handle, region.Memory(), region.Offset()); result != vk.Success {
		region.Free()
		dev.Commands().DestroyImage(dev.Handle(), handle, dev.AllocationCallback())
		return nil, zerr.Classify("resource.BindImageMemory", result)
	}

	img := &Image{
		dev: dev, alloc: alloc,
		handle: handle, region: region,
		extent: desc.Extent, format: desc.Format,
		mipLevels: mipLevels, arrayLayers: arrayLayers, aspectMask: aspect,
		currentLayout: vk.ImageLayoutUndefined,
	}

	if desc.CreateView {
		if err := img.CreateView(); err != nil {
			img.Destroy()
			return nil, err
		}
	}
	return img, nil
}

func (i *Image) Handle() vk.Image          { return i.handle }
func (i *Image) View() vk.ImageView        { return i.view }
func (i *Image) Extent() vk.Extent3D       { return i.extent }
func (i *Image) Format() vk.Format         { return i.format }
func (i *Image) CurrentLayout() vk.ImageLayout { return i.currentLayout }

// CreateView builds (or rebuilds) this image's default full-range
// view. Destroys any prior view first.
func (i *Image) CreateView() error {
	if i.view != 0 {
		i.dev.Commands().DestroyImageView(i.dev.Handle(), i.view, i.dev.AllocationCallback())
		i.view = 0
	}
	info := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    i.handle,
		ViewType: 1, // VK_IMAGE_VIEW_TYPE_2D
		Format:   i.format,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     i.aspectMask,
			BaseMipLevel:   0,
			LevelCount:     i.mipLevels,
			BaseArrayLayer: 0,
			LayerCount:     i.arrayLayers,
		},
	}
	var view vk.ImageView
	result := i.dev.Commands().CreateImageView(i.dev.Handle(), &info, i.dev.AllocationCallback(), &view)
	if result != vk.Success {
		return zerr.Classify("resource.Image.CreateView", result)
	}
	i.view = view
	return nil
}

// EnsureLayout records a pipeline barrier transitioning the image from
// its current layout to to, following the transition table verbatim.
// Unlisted (from, to) pairs fail with CodeFeatureNotPresent unless
// override supplies explicit stage/access values.
func (i *Image) EnsureLayout(cmd vk.CommandBuffer, to vk.ImageLayout, override *TransitionOverride) error {
	if i.currentLayout == to {
		return nil
	}

	var spec barrierSpec
	if override != nil {
		spec = barrierSpec{
			srcStage: override.SrcStage, dstStage: override.DstStage,
			srcAccess: override.SrcAccess, dstAccess: override.DstAccess,
			aspect: i.aspectMask,
		}
	} else {
		found, ok := lookupTransition(i.currentLayout, to)
		if !ok {
			return zerr.New(zerr.CodeFeatureNotPresent, "resource.Image.EnsureLayout", nil)
		}
		spec = found
	}

	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       spec.srcAccess,
		DstAccessMask:       spec.dstAccess,
		OldLayout:           i.currentLayout,
		NewLayout:           to,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               i.handle,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     i.aspectMask,
			BaseMipLevel:   0,
			LevelCount:     i.mipLevels,
			BaseArrayLayer: 0,
			LayerCount:     i.arrayLayers,
		},
	}

	i.dev.Commands().CmdPipelineBarrier(cmd, spec.srcStage, spec.dstStage, 0,
		0, nil, 0, nil, 1, &barrier)

	i.currentLayout = to
	return nil
}

// CopyFromBuffer records a buffer-to-image copy of the whole extent at
// mip 0, layer 0. The image must already be in TRANSFER_DST_OPTIMAL.
func (i *Image) CopyFromBuffer(cmd vk.CommandBuffer, src *Buffer) error {
	if i.currentLayout != vk.ImageLayoutTransferDstOptimal {
		return zerr.New(zerr.CodeInvalidUsage, "resource.Image.CopyFromBuffer", nil)
	}
	region := vk.BufferImageCopy{
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask:     i.aspectMask,
			MipLevel:       0,
			BaseArrayLayer: 0,
			LayerCount:     i.arrayLayers,
		},
		ImageExtent: i.extent,
	}
	i.dev.Commands().CmdCopyBufferToImage(cmd, src.handle, i.handle, i.currentLayout, 1, &region)
	return nil
}

// Destroy destroys the view (if any), the vk.Image, and releases its
// memory back to the allocator.
func (i *Image) Destroy() {
	if i.view != 0 {
		i.dev.Commands().DestroyImageView(i.dev.Handle(), i.view, i.dev.AllocationCallback())
	}
	i.dev.Commands().DestroyImage(i.dev.Handle(), i.handle, i.dev.AllocationCallback())
	i.region.Free()
}
