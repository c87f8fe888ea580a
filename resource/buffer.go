// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package resource wraps vk.Buffer/vk.Image in allocator-backed handles
// that own their memory and know how to move data into it.
package resource

import (
	"fmt"
	"unsafe"

	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/memory"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

// Buffer is a vk.Buffer bound to allocator-managed device memory.
type Buffer struct {
	dev   *device.Device
	alloc *memory.Allocator

	handle vk.Buffer
	region *memory.AllocationHandle
	size   uint64
	usage  vk.BufferUsageFlags
}

// BufferDescriptor describes a buffer to create.
type BufferDescriptor struct {
	Size  uint64
	Usage vk.BufferUsageFlags
	Memory memory.Usage
}

// CreateBuffer allocates a vk.Buffer of desc.Size and binds it to a
// fresh allocation from alloc sized for desc.Memory's usage class.
func CreateBuffer(dev *device.Device, alloc *memory.Allocator, desc BufferDescriptor) (*Buffer, error) {
	info := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       desc.Usage,
		SharingMode: vk.SharingModeExclusive,
	}
	var handle vk.Buffer
	result := dev.Commands().CreateBuffer(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return nil, zerr.Classify("resource.CreateBuffer", result)
	}

	var reqs vk.MemoryRequirements
	dev.Commands().GetBufferMemoryRequirements(dev.Handle(), handle, &reqs)

	region, err := alloc.Allocate(memory.Request{Requirements: reqs, Usage: desc.Memory})
	if err != nil {
		dev.Commands().DestroyBuffer(dev.Handle(), handle, dev.AllocationCallback())
		return nil, err
	}

	if result := dev.Commands().BindBufferMemory(dev.Handle(), handle, region.Memory(), region.Offset()); result != vk.Success {
		region.Free()
		dev.Commands().DestroyBuffer(dev.Handle(), handle, dev.AllocationCallback())
		return nil, zerr.Classify("resource.BindBufferMemory", result)
	}

	return &Buffer{dev: dev, alloc: alloc, handle: handle, region: region, size: desc.Size, usage: desc.Usage}, nil
}

func (b *Buffer) Handle() vk.Buffer { return b.handle }
func (b *Buffer) Size() uint64      { return b.size }

// Write copies data into the buffer's memory at offset, mapping on
// demand and flushing afterward if the backing memory type is not
// host-coherent.
func (b *Buffer) Write(data []byte, offset uint64) error {
	if len(data) == 0 {
		return nil
	}
	if offset+uint64(len(data)) > b.size {
		return zerr.New(zerr.CodeInvalidUsage, "resource.Buffer.Write", nil)
	}

	ptr, err := b.region.Map()
	if err != nil {
		return err
	}

	dst := unsafe.Slice((*byte)(unsafe.Add(ptr, offset)), len(data))
	copy(dst, data)

	if !b.region.IsHostCoherent() {
		rng := vk.MappedMemoryRange{
			SType:  vk.StructureTypeMappedMemoryRange,
			Memory: b.region.Memory(),
			Offset: b.region.Offset() + vk.DeviceSize(offset),
			Size:   vk.DeviceSize(len(data)),
		}
		if result := b.dev.Commands().FlushMappedMemoryRanges(b.dev.Handle(), 1, &rng); result != vk.Success {
			return zerr.Classify("resource.Buffer.Write.flush", result)
		}
	}
	return nil
}

// Destroy destroys the vk.Buffer and releases its memory back to the
// allocator. Safe to call once; a second call is a caller bug.
func (b *Buffer) Destroy() {
	b.dev.Commands().DestroyBuffer(b.dev.Handle(), b.handle, b.dev.AllocationCallback())
	b.region.Free()
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer{size=%d, usage=%#x}", b.size, b.usage)
}
