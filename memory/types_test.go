package memory

import (
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func props3Types() vk.PhysicalDeviceMemoryProperties {
	var p vk.PhysicalDeviceMemoryProperties
	p.MemoryTypeCount = 3
	p.MemoryTypes[0] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit)}
	p.MemoryTypes[1] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)}
	p.MemoryTypes[2] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCachedBit)}
	return p
}

func TestMemoryTypeSelectionPrefersCoherent(t *testing.T) {
	props := props3Types()
	filter := TypeFilter{
		Required:  vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit),
		Preferred: vk.MemoryPropertyFlags(vk.MemoryPropertyHostCoherentBit),
	}
	idx, ok := FindMemoryTypeIndex(props, 0b111, filter)
	if !ok || idx != 1 {
		t.Fatalf("FindMemoryTypeIndex = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestFindMemoryTypeIndexRespectsTypeBits(t *testing.T) {
	props := props3Types()
	filter := TypeFilter{Required: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit)}
	// Exclude type 1 from the candidate mask; type 2 must win instead.
	idx, ok := FindMemoryTypeIndex(props, 0b101, filter)
	if !ok || idx != 2 {
		t.Fatalf("FindMemoryTypeIndex = (%d, %v), want (2, true)", idx, ok)
	}
}

func TestFindMemoryTypeIndexExcluded(t *testing.T) {
	props := props3Types()
	filter := TypeFilter{
		Required: vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit),
		Excluded: vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit),
	}
	idx, ok := FindMemoryTypeIndex(props, 0b111, filter)
	if !ok || idx != 0 {
		t.Fatalf("FindMemoryTypeIndex = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestFindMemoryTypeIndexNoneAdmissible(t *testing.T) {
	props := props3Types()
	filter := TypeFilter{Required: vk.MemoryPropertyFlags(vk.MemoryPropertyLazilyAllocatedBit)}
	if _, ok := FindMemoryTypeIndex(props, 0b111, filter); ok {
		t.Fatalf("expected no admissible memory type")
	}
}

func TestUsageToFilterCPUToGPUReBAR(t *testing.T) {
	f := UsageToFilter(UsageCPUToGPU, true)
	want := vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit | vk.MemoryPropertyHostVisibleBit)
	if f.Required != want {
		t.Fatalf("Required = %v, want %v", f.Required, want)
	}
}

func TestUsageToFilterCPUToGPUNoReBAR(t *testing.T) {
	f := UsageToFilter(UsageCPUToGPU, false)
	want := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit)
	if f.Required != want {
		t.Fatalf("Required = %v, want %v", f.Required, want)
	}
}

func TestUsageToFilterGPUOnlyExcludesHostVisible(t *testing.T) {
	f := UsageToFilter(UsageGPUOnly, false)
	if f.Excluded&vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit) == 0 {
		t.Fatalf("expected HOST_VISIBLE excluded for gpu_only")
	}
}
