// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package memory implements the pool + block + sub-allocation GPU
// memory allocator: usage-to-memory-type selection, a dedicated-
// allocation threshold for large requests, and best/first/worst-fit
// sub-allocation within device-memory blocks.
package memory

import (
	"math/bits"

	"github.com/ghostkellz/zeus-vk/vk"
)

// Usage describes the intended access pattern for an allocation, which
// in turn drives which memory type it lands in.
type Usage int

const (
	// UsageGPUOnly wants DEVICE_LOCAL memory never touched by the host.
	UsageGPUOnly Usage = iota
	// UsageCPUToGPU wants host-writable memory the GPU reads — on a
	// ReBAR-capable device this can be DEVICE_LOCAL|HOST_VISIBLE;
	// otherwise it falls back to plain HOST_VISIBLE.
	UsageCPUToGPU
	// UsageGPUToCPU wants memory the GPU writes and the host reads
	// back, preferring HOST_CACHED for fast CPU reads.
	UsageGPUToCPU
	// UsageCPUOnly wants host-visible, host-coherent memory regardless
	// of GPU access speed (staging buffers, uniform scratch).
	UsageCPUOnly
	// UsageGPULazilyAllocated wants transient attachment memory that
	// may never back physical storage (tile-based GPUs).
	UsageGPULazilyAllocated
)

// Flags carries allocation-site overrides on top of Usage.
type Flags struct {
	// Dedicated forces a standalone VkDeviceMemory object regardless
	// of size.
	Dedicated bool
}

// Strategy selects which free sub-allocation chunk satisfies a request
// when more than one candidate fits.
type Strategy int

const (
	BestFit Strategy = iota
	FirstFit
	WorstFit
)

// TypeFilter expresses a memory-type search as required, preferred and
// excluded property-flag bitsets.
type TypeFilter struct {
	Required  vk.MemoryPropertyFlags
	Preferred vk.MemoryPropertyFlags
	Excluded  vk.MemoryPropertyFlags
}

// UsageToFilter maps an access pattern to a type filter. hasReBAR only
// affects UsageCPUToGPU: with Resizable BAR, CPU-to-GPU memory can be
// DEVICE_LOCAL as well as HOST_VISIBLE; without it, DEVICE_LOCAL is not
// required.
func UsageToFilter(usage Usage, hasReBAR bool) TypeFilter {
	switch usage {
	case UsageGPUOnly:
		return TypeFilter{
			Required: vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
			Excluded: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit),
		}
	case UsageCPUToGPU:
		if hasReBAR {
			return TypeFilter{
				Required:  vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit | vk.MemoryPropertyHostVisibleBit),
				Preferred: vk.MemoryPropertyFlags(vk.MemoryPropertyHostCoherentBit),
			}
		}
		return TypeFilter{
			Required:  vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit),
			Preferred: vk.MemoryPropertyFlags(vk.MemoryPropertyHostCoherentBit),
		}
	case UsageGPUToCPU:
		return TypeFilter{
			Required:  vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit),
			Preferred: vk.MemoryPropertyFlags(vk.MemoryPropertyHostCachedBit | vk.MemoryPropertyHostCoherentBit),
		}
	case UsageCPUOnly:
		return TypeFilter{
			Required: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit),
		}
	case UsageGPULazilyAllocated:
		return TypeFilter{
			Preferred: vk.MemoryPropertyFlags(vk.MemoryPropertyLazilyAllocatedBit),
		}
	default:
		return TypeFilter{}
	}
}

// FindMemoryTypeIndex returns the index maximizing popcount(flags &
// Preferred) among every type admitted by typeBits, Required and
// Excluded. Ties keep the first (lowest-index) admissible type, since
// Vulkan itself returns memory types ordered by performance.
func FindMemoryTypeIndex(props vk.PhysicalDeviceMemoryProperties, typeBits uint32, filter TypeFilter) (uint32, bool) {
	best := -1
	bestScore := -1
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		flags := props.MemoryTypes[i].PropertyFlags
		if flags&filter.Required != filter.Required {
			continue
		}
		if filter.Excluded != 0 && flags&filter.Excluded != 0 {
			continue
		}
		score := bits.OnesCount32(uint32(flags & filter.Preferred))
		if score > bestScore {
			bestScore = score
			best = int(i)
		}
	}
	if best < 0 {
		return 0, false
	}
	return uint32(best), true
}
