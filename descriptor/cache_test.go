package descriptor

import (
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func TestKeyHashStableAndDistinguishing(t *testing.T) {
	k1 := Key{Layout: 1, Bindings: []Binding{{Binding: 0, Type: vk.DescriptorTypeUniformBuffer, Buffer: 10, Range: 256}}}
	k2 := Key{Layout: 1, Bindings: []Binding{{Binding: 0, Type: vk.DescriptorTypeUniformBuffer, Buffer: 10, Range: 256}}}
	if k1.hash() != k2.hash() {
		t.Fatal("identical keys must hash identically")
	}

	k3 := Key{Layout: 1, Bindings: []Binding{{Binding: 0, Type: vk.DescriptorTypeUniformBuffer, Buffer: 11, Range: 256}}}
	if k1.hash() == k3.hash() {
		t.Fatal("distinct buffers must not collide")
	}
}

func TestBindingValidateCombinedImageSamplerRequiresBoth(t *testing.T) {
	b := Binding{Type: vk.DescriptorTypeCombinedImageSampler, ImageView: 5}
	if err := b.validate(); err == nil {
		t.Fatal("expected validation error when sampler is missing")
	}
	b.Sampler = 7
	if err := b.validate(); err != nil {
		t.Fatalf("expected valid combined image sampler, got %v", err)
	}
}

func TestBindingValidateUniformBufferRequiresBuffer(t *testing.T) {
	b := Binding{Type: vk.DescriptorTypeUniformBuffer}
	if err := b.validate(); err == nil {
		t.Fatal("expected validation error for missing buffer")
	}
}
