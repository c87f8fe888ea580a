// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package descriptor

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

// Binding describes one binding's worth of resource state to write
// into a descriptor set, and to hash for cache-key purposes.
type Binding struct {
	Binding     uint32
	Type        vk.DescriptorType
	Buffer      vk.Buffer
	Offset      vk.DeviceSize
	Range       vk.DeviceSize
	ImageView   vk.ImageView
	Sampler     vk.Sampler
	ImageLayout vk.ImageLayout
}

// Key is the cache key for a fully described descriptor set: the
// layout plus every binding's resource identity.
type Key struct {
	Layout   vk.DescriptorSetLayout
	Bindings []Binding
}

// hash produces a stable 64-bit content hash over the layout and every
// binding's identity, using xxhash for speed (this runs once per
// drawcall-shape change, not per frame, but the table can still be
// large on a busy renderer).
func (k Key) hash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeU64(uint64(k.Layout))
	for _, b := range k.Bindings {
		writeU64(uint64(b.Binding))
		writeU64(uint64(b.Type))
		writeU64(uint64(b.Buffer))
		writeU64(uint64(b.Offset))
		writeU64(uint64(b.Range))
		writeU64(uint64(b.ImageView))
		writeU64(uint64(b.Sampler))
		writeU64(uint64(b.ImageLayout))
	}
	return h.Sum64()
}

func (b Binding) validate() error {
	hasView := b.ImageView != 0
	hasSampler := b.Sampler != 0
	switch b.Type {
	case vk.DescriptorTypeCombinedImageSampler:
		if hasView != hasSampler {
			return zerr.New(zerr.CodeInvalidUsage, "descriptor.Binding.validate", nil)
		}
	case vk.DescriptorTypeSampler:
		if !hasSampler {
			return zerr.New(zerr.CodeInvalidUsage, "descriptor.Binding.validate", nil)
		}
	case vk.DescriptorTypeSampledImage, vk.DescriptorTypeStorageImage, vk.DescriptorTypeInputAttachment:
		if !hasView {
			return zerr.New(zerr.CodeInvalidUsage, "descriptor.Binding.validate", nil)
		}
	case vk.DescriptorTypeUniformBuffer, vk.DescriptorTypeStorageBuffer:
		if b.Buffer == 0 {
			return zerr.New(zerr.CodeInvalidUsage, "descriptor.Binding.validate", nil)
		}
	}
	return nil
}

// Cache content-addresses descriptor sets by the resources bound into
// them: two draws that reference identical (layout, buffer, range,
// view, sampler, layout) tuples share one VkDescriptorSet instead of
// each allocating and writing their own.
type Cache struct {
	dev   *device.Device
	alloc *Allocator
	sets  map[uint64]vk.DescriptorSet

	hits   uint64
	misses uint64
}

func NewCache(dev *device.Device, alloc *Allocator) *Cache {
	return &Cache{dev: dev, alloc: alloc, sets: make(map[uint64]vk.DescriptorSet)}
}

// Get returns the descriptor set for key, allocating and writing it on
// first use and reusing it on every subsequent call with the same key.
func (c *Cache) Get(key Key, counts Counts) (vk.DescriptorSet, error) {
	for _, b := range key.Bindings {
		if err := b.validate(); err != nil {
			return 0, err
		}
	}

	h := key.hash()
	if set, ok := c.sets[h]; ok {
		c.hits++
		return set, nil
	}
	c.misses++

	set, err := c.alloc.Allocate(key.Layout, counts)
	if err != nil {
		return 0, err
	}

	writes := make([]vk.WriteDescriptorSet, 0, len(key.Bindings))
	bufferInfos := make([]vk.DescriptorBufferInfo, 0, len(key.Bindings))
	imageInfos := make([]vk.DescriptorImageInfo, 0, len(key.Bindings))

	for _, b := range key.Bindings {
		w := vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          set,
			DstBinding:      b.Binding,
			DescriptorCount: 1,
			DescriptorType:  b.Type,
		}
		if b.Buffer != 0 {
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{Buffer: b.Buffer, Offset: b.Offset, Range: b.Range})
			w.PBufferInfo = &bufferInfos[len(bufferInfos)-1]
		}
		if b.ImageView != 0 {
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{ImageView: b.ImageView, Sampler: b.Sampler, ImageLayout: b.ImageLayout})
			w.PImageInfo = &imageInfos[len(imageInfos)-1]
		}
		writes = append(writes, w)
	}

	if len(writes) > 0 {
		c.dev.Commands().UpdateDescriptorSets(c.dev.Handle(), uint32(len(writes)), &writes[0], 0, nil)
	}

	c.sets[h] = set
	return set, nil
}

// Stats reports cache hit/miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

// Clear drops every cached set without freeing the underlying
// VkDescriptorSet objects — callers reset the whole cache when pools
// are recycled wholesale (e.g. frame-in-flight cycling) rather than
// reclaiming sets individually.
func (c *Cache) Clear() {
	c.sets = make(map[uint64]vk.DescriptorSet)
	c.hits = 0
	c.misses = 0
}
