package physdevice

import (
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func memPropsForReBAR(heapSize uint64) vk.PhysicalDeviceMemoryProperties {
	props := vk.PhysicalDeviceMemoryProperties{
		MemoryTypeCount: 2,
		MemoryHeapCount: 1,
	}
	props.MemoryHeaps[0] = vk.MemoryHeap{Size: vk.DeviceSize(heapSize), Flags: vk.MemoryHeapDeviceLocalBit}
	props.MemoryTypes[0] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
		HeapIndex:     0,
	}
	props.MemoryTypes[1] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit | vk.MemoryPropertyHostVisibleBit),
		HeapIndex:     0,
	}
	return props
}

func TestDetectReBARWithQualifyingHeap(t *testing.T) {
	if !DetectReBAR(memPropsForReBAR(12 << 30)) {
		t.Fatal("12 GiB device-local heap with a DEVICE_LOCAL|HOST_VISIBLE type must detect ReBAR")
	}
}

func TestDetectReBARRejectsLegacyAperture(t *testing.T) {
	// Exactly 256 MiB is the legacy BAR size; the heap must be strictly
	// larger to qualify.
	if DetectReBAR(memPropsForReBAR(256 << 20)) {
		t.Fatal("a 256 MiB heap is the legacy aperture, not ReBAR")
	}
	if !DetectReBAR(memPropsForReBAR(256<<20 + 1)) {
		t.Fatal("any heap strictly larger than 256 MiB qualifies")
	}
}

func TestDetectReBARRequiresHostVisibleDeviceLocalType(t *testing.T) {
	props := memPropsForReBAR(12 << 30)
	props.MemoryTypes[1].PropertyFlags = vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit)
	if DetectReBAR(props) {
		t.Fatal("no DEVICE_LOCAL|HOST_VISIBLE type means no ReBAR")
	}
}

func TestDetectReBARRequiresDeviceLocalHeap(t *testing.T) {
	props := memPropsForReBAR(12 << 30)
	props.MemoryHeaps[0].Flags = 0
	if DetectReBAR(props) {
		t.Fatal("a non-device-local heap must not qualify")
	}
}

func propsOfType(deviceType vk.PhysicalDeviceType, maxDim uint32) vk.PhysicalDeviceProperties {
	var p vk.PhysicalDeviceProperties
	p.DeviceType = deviceType
	p.Limits.MaxImageDimension2D = maxDim
	return p
}

func TestScoreDeviceTypeOrdering(t *testing.T) {
	q := QueueFamilies{}
	discrete := scoreDevice(propsOfType(vk.PhysicalDeviceTypeDiscreteGpu, 0), true, 0, q)
	integrated := scoreDevice(propsOfType(vk.PhysicalDeviceTypeIntegratedGpu, 0), true, 0, q)
	virtual := scoreDevice(propsOfType(vk.PhysicalDeviceTypeVirtualGpu, 0), true, 0, q)
	cpu := scoreDevice(propsOfType(vk.PhysicalDeviceTypeCpu, 0), true, 0, q)

	if !(discrete > integrated && integrated > virtual && virtual > cpu) {
		t.Fatalf("type ordering broken: discrete=%d integrated=%d virtual=%d cpu=%d",
			discrete, integrated, virtual, cpu)
	}
}

func TestScoreDeviceIntegratedPreference(t *testing.T) {
	preferred := scoreDevice(propsOfType(vk.PhysicalDeviceTypeIntegratedGpu, 0), false, 0, QueueFamilies{})
	demoted := scoreDevice(propsOfType(vk.PhysicalDeviceTypeIntegratedGpu, 0), true, 0, QueueFamilies{})
	if preferred != 800 || demoted != 500 {
		t.Fatalf("integrated scores = %d/%d, want 800 when not preferring discrete, 500 when preferring", preferred, demoted)
	}
}

func TestScoreDeviceOptionalExtensionsAndDedicatedQueues(t *testing.T) {
	g, tr, c := uint32(0), uint32(1), uint32(2)
	q := QueueFamilies{Graphics: &g, Transfer: &tr, Compute: &c}
	base := scoreDevice(propsOfType(vk.PhysicalDeviceTypeDiscreteGpu, 0), true, 0, QueueFamilies{Graphics: &g})
	full := scoreDevice(propsOfType(vk.PhysicalDeviceTypeDiscreteGpu, 0), true, 3, q)

	// +10 per optional extension, +100 dedicated transfer, +60 dedicated compute.
	if full-base != 3*10+100+60 {
		t.Fatalf("score delta = %d, want %d", full-base, 3*10+100+60)
	}
}

func TestScoreDeviceSharedFamiliesEarnNoBonus(t *testing.T) {
	g := uint32(0)
	shared := QueueFamilies{Graphics: &g, Transfer: &g, Compute: &g}
	base := scoreDevice(propsOfType(vk.PhysicalDeviceTypeDiscreteGpu, 0), true, 0, QueueFamilies{Graphics: &g})
	got := scoreDevice(propsOfType(vk.PhysicalDeviceTypeDiscreteGpu, 0), true, 0, shared)
	if got != base {
		t.Fatalf("shared-family score = %d, want %d (no dedication bonus)", got, base)
	}
}

func TestScoreDeviceAddsMaxImageDimension(t *testing.T) {
	small := scoreDevice(propsOfType(vk.PhysicalDeviceTypeDiscreteGpu, 4096), true, 0, QueueFamilies{})
	large := scoreDevice(propsOfType(vk.PhysicalDeviceTypeDiscreteGpu, 16384), true, 0, QueueFamilies{})
	if large-small != 16384-4096 {
		t.Fatalf("dimension contribution = %d, want %d", large-small, 16384-4096)
	}
}

func TestVendorName(t *testing.T) {
	if VendorName(0x10DE) != "NVIDIA" {
		t.Fatal("0x10DE should render as NVIDIA")
	}
	if VendorName(0xFFFF) != "unknown" {
		t.Fatal("unmapped vendor IDs render as unknown")
	}
}
