// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"unsafe"

	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("memory")

// Config tunes the allocator's pooling behavior. New replaces a zero
// BlockSize or DedicatedThreshold with the default, and the zero
// Strategy is BestFit, so the zero value behaves like DefaultConfig.
type Config struct {
	BlockSize          uint64
	DedicatedThreshold uint64
	Strategy           Strategy
}

// DefaultConfig returns the standard tuning: 256 MiB blocks, a
// 16 MiB dedicated-allocation threshold, best-fit sub-allocation.
func DefaultConfig() Config {
	return Config{
		BlockSize:          DefaultBlockSize,
		DedicatedThreshold: DedicatedThreshold,
		Strategy:           BestFit,
	}
}

// Request is the input to Allocator.Allocate.
type Request struct {
	Requirements vk.MemoryRequirements
	Usage        Usage
	Flags        Flags
}

// pool holds every block backing one memory-type index.
type pool struct {
	memoryTypeIndex uint32
	strategy        Strategy
	blocks          []*block
}

// Allocator is the top-level GPU memory allocator: one pool per memory
// type, a dedicated-allocation fallback for large requests, and
// running statistics. Not safe for concurrent use — per this module's
// concurrency model, one allocator belongs to one owning thread.
type Allocator struct {
	dev      *device.Device
	memProps vk.PhysicalDeviceMemoryProperties
	hasReBAR bool
	config   Config
	pools    map[uint32]*pool

	totalAllocations   uint64
	totalAllocatedBytes uint64
	peakAllocatedBytes  uint64
}

// New builds an Allocator bound to dev, using memProps for type
// selection and hasReBAR to pick the CPU-to-GPU memory-type filter.
func New(dev *device.Device, memProps vk.PhysicalDeviceMemoryProperties, hasReBAR bool, config Config) *Allocator {
	if config.BlockSize == 0 {
		config.BlockSize = DefaultBlockSize
	}
	if config.DedicatedThreshold == 0 {
		config.DedicatedThreshold = DedicatedThreshold
	}
	return &Allocator{
		dev:      dev,
		memProps: memProps,
		hasReBAR: hasReBAR,
		config:   config,
		pools:    make(map[uint32]*pool),
	}
}

// AllocationHandle is the user-facing handle to a region of device
// memory, whether pool-backed or dedicated.
type AllocationHandle struct {
	a *Allocator

	memory vk.DeviceMemory
	offset vk.DeviceSize
	size   uint64

	dedicated bool
	pool      *pool
	blk       *block
	c         *chunk

	mappedPtr unsafe.Pointer

	propertyFlags vk.MemoryPropertyFlags
}

func (h *AllocationHandle) Memory() vk.DeviceMemory           { return h.memory }
func (h *AllocationHandle) Offset() vk.DeviceSize             { return h.offset }
func (h *AllocationHandle) Size() uint64                      { return h.size }
func (h *AllocationHandle) IsDedicated() bool                 { return h.dedicated }
func (h *AllocationHandle) PropertyFlags() vk.MemoryPropertyFlags { return h.propertyFlags }

// IsHostCoherent reports whether writes to this allocation's mapped
// range are automatically visible to the device without an explicit
// flush.
func (h *AllocationHandle) IsHostCoherent() bool {
	return h.propertyFlags&vk.MemoryPropertyFlags(vk.MemoryPropertyHostCoherentBit) != 0
}

// Allocate satisfies req from the pool matching its memory type (or a
// dedicated VkDeviceMemory if the request qualifies for it).
func (a *Allocator) Allocate(req Request) (*AllocationHandle, error) {
	filter := UsageToFilter(req.Usage, a.hasReBAR)
	typeIndex, ok := FindMemoryTypeIndex(a.memProps, req.Requirements.MemoryTypeBits, filter)
	if !ok {
		return nil, zerr.New(zerr.CodeFeatureNotPresent, "memory.Allocate", nil)
	}

	size := uint64(req.Requirements.Size)
	if size >= a.config.DedicatedThreshold || req.Flags.Dedicated {
		return a.allocateDedicated(typeIndex, size)
	}
	return a.allocateFromPool(typeIndex, size, uint64(req.Requirements.Alignment))
}

func (a *Allocator) allocateDedicated(typeIndex uint32, size uint64) (*AllocationHandle, error) {
	var mem vk.DeviceMemory
	info := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vk.DeviceSize(size),
		MemoryTypeIndex: typeIndex,
	}
	result := a.dev.Commands().AllocateMemory(a.dev.Handle(), &info, a.dev.AllocationCallback(), &mem)
	if result != vk.Success {
		return nil, zerr.Classify("memory.allocateDedicated", result)
	}

	a.totalAllocations++
	a.totalAllocatedBytes += size
	if a.totalAllocatedBytes > a.peakAllocatedBytes {
		a.peakAllocatedBytes = a.totalAllocatedBytes
	}

	return &AllocationHandle{a: a, memory: mem, offset: 0, size: size, dedicated: true, propertyFlags: a.memProps.MemoryTypes[typeIndex].PropertyFlags}, nil
}

func (a *Allocator) allocateFromPool(typeIndex uint32, size, alignment uint64) (*AllocationHandle, error) {
	p, ok := a.pools[typeIndex]
	if !ok {
		p = &pool{memoryTypeIndex: typeIndex, strategy: a.config.Strategy}
		a.pools[typeIndex] = p
	}

	for _, b := range p.blocks {
		if cand, found := b.findCandidate(size, alignment, p.strategy); found {
			allocated := b.claim(cand, size)
			return a.finishPoolAllocation(p, b, allocated)
		}
	}

	blockSize := a.config.BlockSize
	if size > blockSize {
		blockSize = size
	}
	b, err := a.growPool(typeIndex, blockSize)
	if err != nil {
		return nil, err
	}
	p.blocks = append(p.blocks, b)

	cand, found := b.findCandidate(size, alignment, p.strategy)
	if !found {
		return nil, zerr.New(zerr.CodeAllocatorOutOfSpace, "memory.allocateFromPool", nil)
	}
	allocated := b.claim(cand, size)
	return a.finishPoolAllocation(p, b, allocated)
}

func (a *Allocator) growPool(typeIndex uint32, size uint64) (*block, error) {
	var mem vk.DeviceMemory
	info := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vk.DeviceSize(size),
		MemoryTypeIndex: typeIndex,
	}
	result := a.dev.Commands().AllocateMemory(a.dev.Handle(), &info, a.dev.AllocationCallback(), &mem)
	if result != vk.Success {
		return nil, zerr.Classify("memory.growPool", result)
	}
	logger.Debug("grew pool", "type_index", typeIndex, "size", size)
	return newBlock(typeIndex, size, uint64(mem)), nil
}

func (a *Allocator) finishPoolAllocation(p *pool, b *block, c *chunk) (*AllocationHandle, error) {
	a.totalAllocations++
	a.totalAllocatedBytes += c.size
	if a.totalAllocatedBytes > a.peakAllocatedBytes {
		a.peakAllocatedBytes = a.totalAllocatedBytes
	}
	return &AllocationHandle{
		a:             a,
		memory:        vk.DeviceMemory(b.memory),
		offset:        vk.DeviceSize(c.offset),
		size:          c.size,
		pool:          p,
		blk:           b,
		c:             c,
		propertyFlags: a.memProps.MemoryTypes[p.memoryTypeIndex].PropertyFlags,
	}, nil
}

// Map returns a host pointer into this allocation, offset from the
// start of the underlying VkDeviceMemory object. Mapping is per-block
// for pooled allocations (mapped once, lazily, and reused by every
// sub-allocation in that block) and per-object for dedicated ones.
func (h *AllocationHandle) Map() (unsafe.Pointer, error) {
	if h.mappedPtr != nil {
		return h.mappedPtr, nil
	}
	if h.dedicated {
		var ptr unsafe.Pointer
		result := h.a.dev.Commands().MapMemory(h.a.dev.Handle(), h.memory, 0, vk.DeviceSize(h.size), 0, &ptr)
		if result != vk.Success {
			return nil, zerr.Classify("memory.Map", result)
		}
		h.mappedPtr = ptr
		return ptr, nil
	}

	if h.blk.mapped == 0 {
		var ptr unsafe.Pointer
		result := h.a.dev.Commands().MapMemory(h.a.dev.Handle(), vk.DeviceMemory(h.blk.memory), 0, vk.DeviceSize(h.blk.size), 0, &ptr)
		if result != vk.Success {
			return nil, zerr.Classify("memory.Map", result)
		}
		h.blk.mapped = uintptr(ptr)
	}
	h.mappedPtr = unsafe.Add(unsafe.Pointer(h.blk.mapped), h.offset)
	return h.mappedPtr, nil
}

// Flush makes host writes in [offset, offset+size) of this allocation
// visible to the device. A no-op on host-coherent memory and for
// zero-length ranges.
func (h *AllocationHandle) Flush(offset, size uint64) error {
	if size == 0 || h.IsHostCoherent() {
		return nil
	}
	rng := vk.MappedMemoryRange{
		SType:  vk.StructureTypeMappedMemoryRange,
		Memory: h.memory,
		Offset: h.offset + vk.DeviceSize(offset),
		Size:   vk.DeviceSize(size),
	}
	if result := h.a.dev.Commands().FlushMappedMemoryRanges(h.a.dev.Handle(), 1, &rng); result != vk.Success {
		return zerr.Classify("memory.Flush", result)
	}
	return nil
}

// Invalidate makes device writes in [offset, offset+size) visible to
// subsequent host reads through the mapped pointer. A no-op on
// host-coherent memory and for zero-length ranges.
func (h *AllocationHandle) Invalidate(offset, size uint64) error {
	if size == 0 || h.IsHostCoherent() {
		return nil
	}
	rng := vk.MappedMemoryRange{
		SType:  vk.StructureTypeMappedMemoryRange,
		Memory: h.memory,
		Offset: h.offset + vk.DeviceSize(offset),
		Size:   vk.DeviceSize(size),
	}
	if result := h.a.dev.Commands().InvalidateMappedMemoryRanges(h.a.dev.Handle(), 1, &rng); result != vk.Success {
		return zerr.Classify("memory.Invalidate", result)
	}
	return nil
}

// Free returns this allocation to its pool (coalescing with free
// neighbors) or frees its dedicated VkDeviceMemory outright.
func (h *AllocationHandle) Free() {
	h.a.totalAllocatedBytes -= h.size

	if h.dedicated {
		h.a.dev.Commands().FreeMemory(h.a.dev.Handle(), h.memory, h.a.dev.AllocationCallback())
		return
	}
	h.blk.release(h.c)
}

// Stats summarizes the allocator's current pooling and usage state.
type Stats struct {
	TotalAllocations    uint64
	TotalAllocatedBytes uint64
	PeakAllocatedBytes  uint64
	PoolAllocatedBytes  uint64
	AverageFragmentation float64
}

// Stats reports current allocation and fragmentation counters.
func (a *Allocator) Stats() Stats {
	var poolBytes uint64
	var fragSum float64
	var blockCount int
	for _, p := range a.pools {
		for _, b := range p.blocks {
			poolBytes += b.used
			blockCount++
			free := b.size - b.used
			if free == 0 {
				continue
			}
			largest := b.largestFreeChunk()
			fragSum += 1 - float64(largest)/float64(free)
		}
	}
	var avgFrag float64
	if blockCount > 0 {
		avgFrag = fragSum / float64(blockCount)
	}
	return Stats{
		TotalAllocations:     a.totalAllocations,
		TotalAllocatedBytes:  a.totalAllocatedBytes,
		PeakAllocatedBytes:   a.peakAllocatedBytes,
		PoolAllocatedBytes:   poolBytes,
		AverageFragmentation: avgFrag,
	}
}
