// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package vk is a pure-Go, cgo-free binding to the subset of the Vulkan
// 1.2 core and WSI/debug-utils/display-timing extension API that the
// rest of this module needs. Every entry point is resolved dynamically
// through github.com/go-webgpu/goffi rather than linked at compile
// time, so this package never touches the Vulkan SDK headers.
package vk

// Handles are non-dispatchable or dispatchable Vulkan objects. All of
// them fit in 64 bits on every platform Vulkan runs on, so they are
// represented uniformly as uint64 regardless of the underlying handle
// kind — this matches how goffi marshals handle arguments (as u64
// scalars) and keeps NullHandle == 0 meaningful for every type.
type (
	Instance               uint64
	PhysicalDevice         uint64
	Device                 uint64
	Queue                  uint64
	CommandPool            uint64
	CommandBuffer          uint64
	DeviceMemory           uint64
	Buffer                 uint64
	BufferView             uint64
	Image                  uint64
	ImageView              uint64
	ShaderModule           uint64
	Pipeline               uint64
	PipelineLayout         uint64
	PipelineCache          uint64
	Sampler                uint64
	DescriptorSetLayout    uint64
	DescriptorPool         uint64
	DescriptorSet          uint64
	Fence                  uint64
	Semaphore              uint64
	Event                  uint64
	QueryPool              uint64
	RenderPass             uint64
	Framebuffer            uint64
	SurfaceKHR             uint64
	SwapchainKHR           uint64
	DebugUtilsMessengerEXT uint64
)

// NullHandle is the zero value shared by every handle type above.
const NullHandle = 0
