// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package descriptor implements a growable descriptor-pool allocator
// and a content-addressed cache over the descriptor sets it hands out.
package descriptor

import (
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("descriptor")

// Counts tracks the descriptor count per type a set layout requires.
type Counts struct {
	Samplers             uint32
	SampledImages         uint32
	StorageImages         uint32
	UniformBuffers        uint32
	StorageBuffers        uint32
	UniformTexelBuffer    uint32
	StorageTexelBuffer    uint32
	InputAttachments      uint32
	CombinedImageSamplers uint32
}

func (c Counts) total() uint32 {
	return c.Samplers + c.SampledImages + c.StorageImages + c.UniformBuffers +
		c.StorageBuffers + c.UniformTexelBuffer + c.StorageTexelBuffer +
		c.InputAttachments + c.CombinedImageSamplers
}

type pool struct {
	handle        vk.DescriptorPool
	maxSets       uint32
	allocatedSets uint32
}

// Allocator grows a chain of descriptor pools on demand, single-
// threaded by this module's concurrency contract.
type Allocator struct {
	dev   *device.Device
	pools []*pool

	initialPoolSize uint32
	maxPoolSize     uint32
	growthFactor    uint32

	totalAllocated uint32
	totalFreed     uint32
}

// Config tunes pool growth. Zero value falls back to defaults.
type Config struct {
	InitialPoolSize uint32
	MaxPoolSize     uint32
	GrowthFactor    uint32
}

// DefaultConfig starts with 64 sets in the first pool, doubling up to
// 4096.
func DefaultConfig() Config {
	return Config{InitialPoolSize: 64, MaxPoolSize: 4096, GrowthFactor: 2}
}

func NewAllocator(dev *device.Device, config Config) *Allocator {
	if config.InitialPoolSize == 0 {
		config.InitialPoolSize = 64
	}
	if config.MaxPoolSize == 0 {
		config.MaxPoolSize = 4096
	}
	if config.GrowthFactor == 0 {
		config.GrowthFactor = 2
	}
	return &Allocator{
		dev:             dev,
		initialPoolSize: config.InitialPoolSize,
		maxPoolSize:     config.MaxPoolSize,
		growthFactor:    config.GrowthFactor,
	}
}

// Allocate hands back one descriptor set of layout, growing a new pool
// if every existing one is full.
func (a *Allocator) Allocate(layout vk.DescriptorSetLayout, counts Counts) (vk.DescriptorSet, error) {
	for _, p := range a.pools {
		if p.allocatedSets >= p.maxSets {
			continue
		}
		set, err := a.allocateFromPool(p, layout)
		if err == nil {
			p.allocatedSets++
			a.totalAllocated++
			return set, nil
		}
	}

	p, err := a.createPool(counts)
	if err != nil {
		return 0, err
	}
	a.pools = append(a.pools, p)

	set, err := a.allocateFromPool(p, layout)
	if err != nil {
		return 0, err
	}
	p.allocatedSets++
	a.totalAllocated++
	return set, nil
}

func (a *Allocator) allocateFromPool(p *pool, layout vk.DescriptorSetLayout) (vk.DescriptorSet, error) {
	info := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     p.handle,
		DescriptorSetCount: 1,
		PSetLayouts:        &layout,
	}
	var set vk.DescriptorSet
	result := a.dev.Commands().AllocateDescriptorSets(a.dev.Handle(), &info, &set)
	if result != vk.Success {
		return 0, zerr.Classify("descriptor.allocateFromPool", result)
	}
	return set, nil
}

func (a *Allocator) createPool(counts Counts) (*pool, error) {
	size := a.initialPoolSize
	for range a.pools {
		size *= a.growthFactor
		if size > a.maxPoolSize {
			size = a.maxPoolSize
			break
		}
	}

	var sizes []vk.DescriptorPoolSize
	if counts.total() == 0 {
		sizes = []vk.DescriptorPoolSize{
			{Type: vk.DescriptorTypeCombinedImageSampler, DescriptorCount: size},
			{Type: vk.DescriptorTypeUniformBuffer, DescriptorCount: size},
			{Type: vk.DescriptorTypeStorageBuffer, DescriptorCount: size / 2},
		}
	} else {
		add := func(t vk.DescriptorType, n uint32) {
			if n > 0 {
				sizes = append(sizes, vk.DescriptorPoolSize{Type: t, DescriptorCount: n * size})
			}
		}
		add(vk.DescriptorTypeSampler, counts.Samplers)
		add(vk.DescriptorTypeSampledImage, counts.SampledImages)
		add(vk.DescriptorTypeStorageImage, counts.StorageImages)
		add(vk.DescriptorTypeUniformBuffer, counts.UniformBuffers)
		add(vk.DescriptorTypeStorageBuffer, counts.StorageBuffers)
		add(vk.DescriptorTypeUniformTexelBuffer, counts.UniformTexelBuffer)
		add(vk.DescriptorTypeStorageTexelBuffer, counts.StorageTexelBuffer)
		add(vk.DescriptorTypeInputAttachment, counts.InputAttachments)
		add(vk.DescriptorTypeCombinedImageSampler, counts.CombinedImageSamplers)
	}

	info := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vk.DescriptorPoolCreateFreeDescriptorSetBit,
		MaxSets:       size,
		PoolSizeCount: uint32(len(sizes)),
		PPoolSizes:    &sizes[0],
	}
	var handle vk.DescriptorPool
	result := a.dev.Commands().CreateDescriptorPool(a.dev.Handle(), &info, a.dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return nil, zerr.Classify("descriptor.createPool", result)
	}
	logger.Debug("grew descriptor pool", "max_sets", size)
	return &pool{handle: handle, maxSets: size}, nil
}

// ResetPools bulk-resets every pool, reclaiming all sets at once. Any
// Cache layered on these pools must be Cleared alongside — its entries
// point at sets this call invalidates.
func (a *Allocator) ResetPools() error {
	for _, p := range a.pools {
		result := a.dev.Commands().ResetDescriptorPool(a.dev.Handle(), p.handle, 0)
		if result != vk.Success {
			return zerr.Classify("descriptor.ResetPools", result)
		}
		a.totalFreed += p.allocatedSets
		p.allocatedSets = 0
	}
	return nil
}

// Destroy destroys every pool this allocator owns.
func (a *Allocator) Destroy() {
	for _, p := range a.pools {
		a.dev.Commands().DestroyDescriptorPool(a.dev.Handle(), p.handle, a.dev.AllocationCallback())
	}
	a.pools = nil
}

// Stats reports pool count and lifetime allocation/free counters.
func (a *Allocator) Stats() (pools int, allocated, freed uint32) {
	return len(a.pools), a.totalAllocated, a.totalFreed
}
