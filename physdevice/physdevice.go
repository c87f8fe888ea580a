// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package physdevice implements physical-device enumeration, scoring
// and queue-family assignment: turning a list of adapters the driver
// exposes into the single best candidate this renderer should open a
// logical device against.
package physdevice

import (
	"math/bits"

	"github.com/ghostkellz/zeus-vk/instance"
	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("physdevice")

// FeatureRequirements names the PhysicalDeviceFeatures bits the
// selector can require. A true field must be supported by the
// candidate or it is rejected; a false/zero field is not checked.
type FeatureRequirements struct {
	GeometryShader     bool
	TessellationShader bool
	SampleRateShading  bool
	DualSrcBlend       bool
	LogicOp            bool
	MultiDrawIndirect  bool
	IndependentBlend   bool
}

func (f FeatureRequirements) satisfiedBy(got vk.PhysicalDeviceFeatures) bool {
	checks := []struct{ want bool; has uint32 }{
		{f.GeometryShader, got.GeometryShader},
		{f.TessellationShader, got.TessellationShader},
		{f.SampleRateShading, got.SampleRateShading},
		{f.DualSrcBlend, got.DualSrcBlend},
		{f.LogicOp, got.LogicOp},
		{f.MultiDrawIndirect, got.MultiDrawIndirect},
		{f.IndependentBlend, got.IndependentBlend},
	}
	for _, c := range checks {
		if c.want && c.has == 0 {
			return false
		}
	}
	return true
}

// QueueNeeds describes which queue roles the caller requires and which
// it would prefer to see on a dedicated (non-graphics) family.
type QueueNeeds struct {
	RequireGraphics bool
	// Surface, when non-zero, requests a present-capable family be
	// located. A zero surface skips the present-support query
	// entirely rather than calling it with a null-handle surface.
	Surface                  vk.SurfaceKHR
	RequireTransfer          bool
	DedicatedTransferWanted  bool
	RequireCompute           bool
	DedicatedComputeWanted   bool
}

// Requirements is the full input to SelectBest.
type Requirements struct {
	RequiredExtensions []string
	OptionalExtensions []string
	RequiredFeatures   FeatureRequirements
	Queues             QueueNeeds
	PreferDiscrete     bool
}

// QueueFamilies holds the resolved family index for each queue role
// SelectBest was asked to assign. A nil pointer means no usable family
// offers that role (or, for Present, no surface was given); roles are
// filled whenever a capable family exists, whether requested or not.
type QueueFamilies struct {
	Graphics *uint32
	Present  *uint32
	Transfer *uint32
	Compute  *uint32
}

// Selection is the winning candidate SelectBest returns.
type Selection struct {
	PhysicalDevice      vk.PhysicalDevice
	Properties          vk.PhysicalDeviceProperties
	Features            vk.PhysicalDeviceFeatures
	MemoryProperties    vk.PhysicalDeviceMemoryProperties
	Queues              QueueFamilies
	EnabledOptionalExts []string
	Score               int
	HasReBAR            bool
}

// SelectBest enumerates every physical device on the instance,
// evaluates each against req, and returns the highest-scoring
// candidate. Returns zerr.CodeNoSuitableDevice if none qualify.
func SelectBest(inst *instance.Instance, req Requirements) (Selection, error) {
	devices, err := inst.EnumeratePhysicalDevices()
	if err != nil {
		return Selection{}, err
	}

	var best Selection
	haveBest := false
	for _, pd := range devices {
		sel, ok := evaluateDevice(inst, pd, req)
		if !ok {
			continue
		}
		if !haveBest || sel.Score > best.Score {
			best = sel
			haveBest = true
		}
	}

	if !haveBest {
		return Selection{}, zerr.New(zerr.CodeNoSuitableDevice, "physdevice.SelectBest", nil)
	}

	logger.Info("selected physical device",
		"name", best.Properties.Name(),
		"score", best.Score,
		"rebar", best.HasReBAR)
	return best, nil
}

func evaluateDevice(inst *instance.Instance, pd vk.PhysicalDevice, req Requirements) (Selection, bool) {
	available, err := inst.EnumerateDeviceExtensionProperties(pd)
	if err != nil {
		return Selection{}, false
	}
	availSet := make(map[string]bool, len(available))
	for _, name := range available {
		availSet[name] = true
	}
	for _, required := range req.RequiredExtensions {
		if !availSet[required] {
			return Selection{}, false
		}
	}
	var enabledOptional []string
	for _, opt := range req.OptionalExtensions {
		if availSet[opt] {
			enabledOptional = append(enabledOptional, opt)
		}
	}

	queues, ok := resolveQueueFamilies(inst, pd, req.Queues)
	if !ok {
		return Selection{}, false
	}

	features := inst.GetPhysicalDeviceFeatures(pd)
	if !req.RequiredFeatures.satisfiedBy(features) {
		return Selection{}, false
	}

	props := inst.GetPhysicalDeviceProperties(pd)
	memProps := inst.GetPhysicalDeviceMemoryProperties(pd)

	score := scoreDevice(props, req.PreferDiscrete, len(enabledOptional), queues)

	return Selection{
		PhysicalDevice:      pd,
		Properties:          props,
		Features:            features,
		MemoryProperties:    memProps,
		Queues:              queues,
		EnabledOptionalExts: enabledOptional,
		Score:               score,
		HasReBAR:            DetectReBAR(memProps),
	}, true
}

// resolveQueueFamilies implements the single-pass assignment algorithm:
// graphics is the first GRAPHICS family; present is the first family
// whose surface-support query succeeds (skipped outright when no
// surface was given; the query is never issued with a null surface);
// transfer prefers a fully-dedicated family over a compute-paired one
// over a graphics-paired one; compute prefers a non-graphics family
// when dedication is requested.
func resolveQueueFamilies(inst *instance.Instance, pd vk.PhysicalDevice, needs QueueNeeds) (QueueFamilies, bool) {
	families := inst.GetQueueFamilyProperties(pd)
	if len(families) == 0 {
		return QueueFamilies{}, false
	}

	var out QueueFamilies
	var firstNonEmpty *uint32
	const (
		tierGraphicsPaired = 0
		tierComputePaired  = 1
		tierDedicated      = 2
	)
	bestTransferTier := -1
	bestComputeIsNonGraphics := false

	for idx := range families {
		i := uint32(idx)
		flags := families[idx].QueueFlags
		if families[idx].QueueCount == 0 {
			continue
		}
		if firstNonEmpty == nil {
			v := i
			firstNonEmpty = &v
		}

		hasGraphics := flags&vk.QueueGraphicsBit != 0
		hasCompute := flags&vk.QueueComputeBit != 0
		hasTransfer := flags&vk.QueueTransferBit != 0

		if out.Graphics == nil && hasGraphics {
			v := i
			out.Graphics = &v
		}

		if needs.Surface != vk.NullHandle && out.Present == nil {
			supported, err := inst.GetPhysicalDeviceSurfaceSupport(pd, i, needs.Surface)
			if err == nil && supported {
				v := i
				out.Present = &v
			}
		}

		if hasTransfer {
			tier := tierGraphicsPaired
			if !hasGraphics && !hasCompute {
				tier = tierDedicated
			} else if !hasGraphics && hasCompute {
				tier = tierComputePaired
			}
			if tier > bestTransferTier {
				bestTransferTier = tier
				v := i
				out.Transfer = &v
			}
		}

		if hasCompute {
			nonGraphics := !hasGraphics
			if out.Compute == nil || (needs.DedicatedComputeWanted && nonGraphics && !bestComputeIsNonGraphics) {
				v := i
				out.Compute = &v
				bestComputeIsNonGraphics = nonGraphics
			}
		}
	}

	if out.Graphics == nil && !needs.RequireGraphics {
		if firstNonEmpty == nil {
			return QueueFamilies{}, false
		}
		out.Graphics = firstNonEmpty
	}
	if needs.RequireGraphics && out.Graphics == nil {
		return QueueFamilies{}, false
	}
	if needs.Surface != vk.NullHandle && out.Present == nil {
		return QueueFamilies{}, false
	}
	if needs.RequireTransfer && out.Transfer == nil {
		return QueueFamilies{}, false
	}
	if needs.RequireCompute && out.Compute == nil {
		return QueueFamilies{}, false
	}
	return out, true
}

// scoreDevice composes the candidate score monotonically:
// device-type base score, +10 per satisfied optional
// extension, +100 for a distinct transfer family, +60 for a distinct
// compute family, plus a wrapping add of maxImageDimension2D.
func scoreDevice(props vk.PhysicalDeviceProperties, preferDiscrete bool, optionalExtCount int, queues QueueFamilies) int {
	var score int
	switch props.DeviceType {
	case vk.PhysicalDeviceTypeDiscreteGpu:
		score = 1000
	case vk.PhysicalDeviceTypeIntegratedGpu:
		if preferDiscrete {
			score = 500
		} else {
			score = 800
		}
	case vk.PhysicalDeviceTypeVirtualGpu:
		score = 300
	case vk.PhysicalDeviceTypeCpu:
		score = 100
	}

	score += 10 * optionalExtCount

	if queues.Transfer != nil && queues.Graphics != nil && *queues.Transfer != *queues.Graphics {
		score += 100
	}
	if queues.Compute != nil && queues.Graphics != nil && *queues.Compute != *queues.Graphics {
		score += 60
	}

	// maxImageDimension2D is added with wraparound, matching the
	// spec's "wrapping add" note — int on every platform this module
	// targets is at least 64 bits, so int32 overflow cannot occur in
	// practice, but the cast keeps the arithmetic explicit.
	score += int(int32(props.Limits.MaxImageDimension2D))
	return score
}

// reBARHeapThreshold is the legacy PCIe BAR aperture size; a
// device-local heap strictly larger than this hosting a
// DEVICE_LOCAL|HOST_VISIBLE memory type indicates Resizable BAR.
const reBARHeapThreshold = 256 << 20

// DetectReBAR reports whether any device-local heap larger than 256 MiB
// hosts a memory type with both DEVICE_LOCAL and HOST_VISIBLE set.
func DetectReBAR(props vk.PhysicalDeviceMemoryProperties) bool {
	for t := uint32(0); t < props.MemoryTypeCount; t++ {
		mt := props.MemoryTypes[t]
		const want = vk.MemoryPropertyDeviceLocalBit | vk.MemoryPropertyHostVisibleBit
		if vk.MemoryPropertyFlags(want)&vk.MemoryPropertyFlags(mt.PropertyFlags) != vk.MemoryPropertyFlags(want) {
			continue
		}
		heap := props.MemoryHeaps[mt.HeapIndex]
		if heap.Flags&vk.MemoryHeapDeviceLocalBit == 0 {
			continue
		}
		if uint64(heap.Size) > reBARHeapThreshold {
			return true
		}
	}
	return false
}

// popcount returns the number of set bits in v. It is unexported; the
// memory package does its own count.
func popcount(v uint32) int { return bits.OnesCount32(v) }

var vendorNames = map[uint32]string{
	0x1002: "AMD",
	0x10DE: "NVIDIA",
	0x8086: "Intel",
	0x13B5: "ARM",
	0x5143: "Qualcomm",
	0x106B: "Apple",
}

// VendorName renders a PCI vendor ID for diagnostic logging only; it is
// never branched on by any allocator, swapchain or pipeline decision.
func VendorName(vendorID uint32) string {
	if name, ok := vendorNames[vendorID]; ok {
		return name
	}
	return "unknown"
}
