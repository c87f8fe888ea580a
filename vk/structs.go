// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// DeviceSize mirrors VkDeviceSize (always 64-bit, even on 32-bit hosts).
type DeviceSize uint64

// Bool32 mirrors VkBool32 — Vulkan booleans are four-byte ints, never
// a single byte, so callers must use True/False rather than Go bool.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// ApplicationInfo mirrors VkApplicationInfo. Strings are passed as
// pointers to NUL-terminated byte slices the caller keeps alive for
// the duration of the call.
type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	ApiVersion         uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     *(*byte)
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames *(*byte)
}

// DebugUtilsMessengerCallbackDataEXT mirrors the struct handed to the
// debug-utils callback trampoline.
type DebugUtilsMessengerCallbackDataEXT struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	PMessageIDName  *byte
	MessageIDNumber int32
	PMessage        *byte
	QueueLabelCount uint32
	PQueueLabels    unsafe.Pointer
	CmdBufLabelCount uint32
	PCmdBufLabels   unsafe.Pointer
	ObjectCount     uint32
	PObjects        unsafe.Pointer
}

// DebugUtilsMessengerCreateInfoEXT mirrors VkDebugUtilsMessengerCreateInfoEXT.
type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
	PfnUserCallback unsafe.Pointer
	PUserData       unsafe.Pointer
}

// QueueFamilyProperties mirrors VkQueueFamilyProperties.
type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity [3]uint32
}

// PhysicalDeviceLimits mirrors VkPhysicalDeviceLimits. Only the fields
// the selector's scoring function reads are named; the rest of the
// (driver-defined, rarely consumed) struct is kept as a correctly
// sized and aligned tail so the real vkGetPhysicalDeviceProperties
// call has somewhere safe to write the remaining ~50 limit fields.
type PhysicalDeviceLimits struct {
	MaxImageDimension1D uint32
	MaxImageDimension2D uint32
	rest                [496]byte
}

// PhysicalDeviceSparseProperties mirrors VkPhysicalDeviceSparseProperties,
// kept opaque — nothing in this module inspects sparse-residency support.
type PhysicalDeviceSparseProperties struct {
	rest [20]byte
}

// PhysicalDeviceProperties mirrors VkPhysicalDeviceProperties.
type PhysicalDeviceProperties struct {
	ApiVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [256]byte
	PipelineCacheUUID [16]byte
	_                 [4]byte // pad Limits to 8-byte alignment, as the real struct does
	Limits            PhysicalDeviceLimits
	SparseProperties  PhysicalDeviceSparseProperties
}

// Name returns the NUL-terminated device name as a Go string.
func (p *PhysicalDeviceProperties) Name() string {
	n := 0
	for n < len(p.DeviceName) && p.DeviceName[n] != 0 {
		n++
	}
	return string(p.DeviceName[:n])
}

// PhysicalDeviceFeatures mirrors VkPhysicalDeviceFeatures. Only the
// handful of feature bits the selector's requirements check are named;
// remaining bool32 fields fill out the struct's real 55-field size.
type PhysicalDeviceFeatures struct {
	RobustBufferAccess uint32
	FullDrawIndexUint32 uint32
	ImageCubeArray     uint32
	IndependentBlend   uint32
	GeometryShader     uint32
	TessellationShader uint32
	SampleRateShading  uint32
	DualSrcBlend       uint32
	LogicOp            uint32
	MultiDrawIndirect  uint32
	rest               [180]byte
}

// MemoryType mirrors VkMemoryType.
type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

// MemoryHeap mirrors VkMemoryHeap.
type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
	_     [4]byte
}

// PhysicalDeviceMemoryProperties mirrors VkPhysicalDeviceMemoryProperties.
const MaxMemoryTypes = 32
const MaxMemoryHeaps = 16

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [MaxMemoryTypes]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [MaxMemoryHeaps]MemoryHeap
}

// DeviceQueueCreateInfo mirrors VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

// DeviceCreateInfo mirrors VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     *(*byte)
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames *(*byte)
	PEnabledFeatures        *PhysicalDeviceFeatures
}

// MemoryRequirements mirrors VkMemoryRequirements.
type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
	_              [4]byte
}

// MemoryAllocateInfo mirrors VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
	_               [4]byte
}

// MappedMemoryRange mirrors VkMappedMemoryRange.
type MappedMemoryRange struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Memory DeviceMemory
	Offset DeviceSize
	Size   DeviceSize
}

// BufferCreateInfo mirrors VkBufferCreateInfo.
type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
}

// Extent2D / Extent3D / Offset2D / Offset3D / Rect2D mirror their
// Vulkan counterparts.
type (
	Extent2D struct{ Width, Height uint32 }
	Extent3D struct{ Width, Height, Depth uint32 }
	Offset2D struct{ X, Y int32 }
	Offset3D struct{ X, Y, Z int32 }
	Rect2D   struct {
		Offset Offset2D
		Extent Extent2D
	}
)

// ImageCreateInfo mirrors VkImageCreateInfo.
type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	ImageType             uint32
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               uint32
	Tiling                uint32
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	InitialLayout         ImageLayout
}

// ImageSubresourceRange mirrors VkImageSubresourceRange.
type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ComponentMapping mirrors VkComponentMapping (identity swizzle by
// default: all fields zero).
type ComponentMapping struct{ R, G, B, A uint32 }

// ImageViewCreateInfo mirrors VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	Image            Image
	ViewType         uint32
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

// FenceCreateInfo mirrors VkFenceCreateInfo. FenceCreateSignaledBit == 1.
type FenceCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

const FenceCreateSignaledBit uint32 = 0x00000001

// SemaphoreCreateInfo mirrors VkSemaphoreCreateInfo.
type SemaphoreCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

// SemaphoreTypeCreateInfo mirrors VkSemaphoreTypeCreateInfo, chained
// onto SemaphoreCreateInfo.PNext to request a timeline semaphore.
type SemaphoreTypeCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SemaphoreType SemaphoreType
	InitialValue  uint64
}

// SemaphoreWaitInfo mirrors VkSemaphoreWaitInfo.
type SemaphoreWaitInfo struct {
	SType          StructureType
	PNext          unsafe.Pointer
	Flags          uint32
	SemaphoreCount uint32
	PSemaphores    *Semaphore
	PValues        *uint64
}

// SemaphoreSignalInfo mirrors VkSemaphoreSignalInfo.
type SemaphoreSignalInfo struct {
	SType     StructureType
	PNext     unsafe.Pointer
	Semaphore Semaphore
	Value     uint64
}

// CommandPoolCreateInfo mirrors VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo mirrors VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

// CommandBufferBeginInfo mirrors VkCommandBufferBeginInfo.
type CommandBufferBeginInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandBufferUsageFlags
	PInheritanceInfo unsafe.Pointer
}

// SubmitInfo mirrors VkSubmitInfo.
type SubmitInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	WaitSemaphoreCount   uint32
	PWaitSemaphores      *Semaphore
	PWaitDstStageMask    *PipelineStageFlags
	CommandBufferCount   uint32
	PCommandBuffers      *CommandBuffer
	SignalSemaphoreCount uint32
	PSignalSemaphores    *Semaphore
}

// TimelineSemaphoreSubmitInfo mirrors VkTimelineSemaphoreSubmitInfo,
// chained onto SubmitInfo.PNext to carry timeline signal/wait values.
type TimelineSemaphoreSubmitInfo struct {
	SType                     StructureType
	PNext                     unsafe.Pointer
	WaitSemaphoreValueCount   uint32
	PWaitSemaphoreValues      *uint64
	SignalSemaphoreValueCount uint32
	PSignalSemaphoreValues    *uint64
}

// SurfaceCapabilitiesKHR mirrors VkSurfaceCapabilitiesKHR.
type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

// SurfaceFormatKHR mirrors VkSurfaceFormatKHR.
type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

// SwapchainCreateInfoKHR mirrors VkSwapchainCreateInfoKHR.
type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          SwapchainKHR
}

// PresentTimeGOOGLE / PresentTimesInfoGOOGLE mirror the display-timing
// extension structures used at present time.
type PresentTimeGOOGLE struct {
	PresentID          uint32
	DesiredPresentTime uint64
}

type PresentTimesInfoGOOGLE struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SwapchainCount uint32
	PTimes        *PresentTimeGOOGLE
}

// PastPresentationTimingGOOGLE mirrors VkPastPresentationTimingGOOGLE.
type PastPresentationTimingGOOGLE struct {
	PresentID            uint32
	DesiredPresentTime    uint64
	ActualPresentTime     uint64
	EarliestPresentTime   uint64
	PresentMargin         uint64
}

// RefreshCycleDurationGOOGLE mirrors VkRefreshCycleDurationGOOGLE.
type RefreshCycleDurationGOOGLE struct {
	RefreshDuration uint64
}

// PresentInfoKHR mirrors VkPresentInfoKHR.
type PresentInfoKHR struct {
	SType              StructureType
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    *Semaphore
	SwapchainCount     uint32
	PSwapchains        *SwapchainKHR
	PImageIndices      *uint32
	PResults           *Result
}

// DescriptorPoolSize mirrors VkDescriptorPoolSize.
type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

// DescriptorPoolCreateInfo mirrors VkDescriptorPoolCreateInfo.
type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    *DescriptorPoolSize
}

// DescriptorSetLayoutBinding mirrors VkDescriptorSetLayoutBinding.
type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers *Sampler
}

// DescriptorSetLayoutCreateInfo mirrors VkDescriptorSetLayoutCreateInfo.
type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Flags        uint32
	BindingCount uint32
	PBindings    *DescriptorSetLayoutBinding
}

// DescriptorSetAllocateInfo mirrors VkDescriptorSetAllocateInfo.
type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        *DescriptorSetLayout
}

// DescriptorBufferInfo mirrors VkDescriptorBufferInfo.
type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

// DescriptorImageInfo mirrors VkDescriptorImageInfo.
type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

// WriteDescriptorSet mirrors VkWriteDescriptorSet.
type WriteDescriptorSet struct {
	SType            StructureType
	PNext            unsafe.Pointer
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	PImageInfo       *DescriptorImageInfo
	PBufferInfo      *DescriptorBufferInfo
	PTexelBufferView unsafe.Pointer
}

// CopyDescriptorSet mirrors VkCopyDescriptorSet (unused by the content
// cache today, kept so UpdateDescriptorSets can accept a non-nil copy
// count of zero without callers fabricating a pointer).
type CopyDescriptorSet struct {
	SType           StructureType
	PNext           unsafe.Pointer
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

// AttachmentDescription mirrors VkAttachmentDescription.
type AttachmentDescription struct {
	Flags          uint32
	Format         Format
	Samples        uint32
	LoadOp         uint32
	StoreOp        uint32
	StencilLoadOp  uint32
	StencilStoreOp uint32
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

// AttachmentReference mirrors VkAttachmentReference.
type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

// SubpassDescription mirrors VkSubpassDescription.
type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	PInputAttachments       *AttachmentReference
	ColorAttachmentCount    uint32
	PColorAttachments       *AttachmentReference
	PResolveAttachments     *AttachmentReference
	PDepthStencilAttachment *AttachmentReference
	PreserveAttachmentCount uint32
	PPreserveAttachments    *uint32
}

// SubpassDependency mirrors VkSubpassDependency. SubpassExternal is the
// sentinel subpass index used for EXTERNAL dependencies.
const SubpassExternal uint32 = 0xFFFFFFFF

type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

// RenderPassCreateInfo mirrors VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	AttachmentCount uint32
	PAttachments    *AttachmentDescription
	SubpassCount    uint32
	PSubpasses      *SubpassDescription
	DependencyCount uint32
	PDependencies   *SubpassDependency
}

// FramebufferCreateInfo mirrors VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	RenderPass      RenderPass
	AttachmentCount uint32
	PAttachments    *ImageView
	Width           uint32
	Height          uint32
	Layers          uint32
}

// ClearColorValue / ClearValue mirror their Vulkan unions; this module
// only ever clears color attachments so the union is modeled as a
// float32x4.
type ClearColorValue struct{ Float32 [4]float32 }
type ClearValue struct{ Color ClearColorValue }

// RenderPassBeginInfo mirrors VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	PClearValues    *ClearValue
}

// ImageMemoryBarrier mirrors VkImageMemoryBarrier.
type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

const QueueFamilyIgnored uint32 = 0xFFFFFFFF

// BufferImageCopy mirrors VkBufferImageCopy.
type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength    uint32
	BufferImageHeight  uint32
	ImageSubresource   ImageSubresourceLayers
	ImageOffset        Offset3D
	ImageExtent        Extent3D
}

// ImageSubresourceLayers mirrors VkImageSubresourceLayers.
type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// PipelineCacheCreateInfo mirrors VkPipelineCacheCreateInfo.
type PipelineCacheCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	InitialDataSize uintptr
	PInitialData    unsafe.Pointer
}

// ShaderModuleCreateInfo mirrors VkShaderModuleCreateInfo.
type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    unsafe.Pointer
	Flags    uint32
	CodeSize uintptr
	PCode    unsafe.Pointer
}

// PipelineShaderStageCreateInfo mirrors VkPipelineShaderStageCreateInfo.
type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	Stage               ShaderStageFlags
	Module              ShaderModule
	PName               *byte
	PSpecializationInfo unsafe.Pointer
}

// VertexInputBindingDescription / VertexInputAttributeDescription mirror
// their Vulkan counterparts.
type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate uint32
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

// PipelineVertexInputStateCreateInfo mirrors VkPipelineVertexInputStateCreateInfo.
type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           unsafe.Pointer
	Flags                           uint32
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      *VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    *VertexInputAttributeDescription
}

// PipelineInputAssemblyStateCreateInfo mirrors VkPipelineInputAssemblyStateCreateInfo.
type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	Topology               uint32
	PrimitiveRestartEnable Bool32
}

// Viewport mirrors VkViewport.
type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

// PipelineViewportStateCreateInfo mirrors VkPipelineViewportStateCreateInfo.
type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         uint32
	ViewportCount uint32
	PViewports    *Viewport
	ScissorCount  uint32
	PScissors     *Rect2D
}

// PipelineRasterizationStateCreateInfo mirrors VkPipelineRasterizationStateCreateInfo.
type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             uint32
	CullMode                uint32
	FrontFace               uint32
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

// PipelineMultisampleStateCreateInfo mirrors VkPipelineMultisampleStateCreateInfo.
type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	RasterizationSamples  uint32
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	PSampleMask           *uint32
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

// PipelineColorBlendAttachmentState mirrors VkPipelineColorBlendAttachmentState.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor uint32
	DstColorBlendFactor uint32
	ColorBlendOp        uint32
	SrcAlphaBlendFactor uint32
	DstAlphaBlendFactor uint32
	AlphaBlendOp        uint32
	ColorWriteMask      uint32
}

// PipelineColorBlendStateCreateInfo mirrors VkPipelineColorBlendStateCreateInfo.
type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	LogicOpEnable   Bool32
	LogicOp         uint32
	AttachmentCount uint32
	PAttachments    *PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

// PipelineDepthStencilStateCreateInfo mirrors VkPipelineDepthStencilStateCreateInfo.
type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        uint32
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// StencilOpState mirrors VkStencilOpState.
type StencilOpState struct {
	FailOp      uint32
	PassOp      uint32
	DepthFailOp uint32
	CompareOp   uint32
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineDynamicStateCreateInfo mirrors VkPipelineDynamicStateCreateInfo.
type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             unsafe.Pointer
	Flags             uint32
	DynamicStateCount uint32
	PDynamicStates    *uint32
}

// PushConstantRange mirrors VkPushConstantRange.
type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

// PipelineLayoutCreateInfo mirrors VkPipelineLayoutCreateInfo.
type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	SetLayoutCount         uint32
	PSetLayouts            *DescriptorSetLayout
	PushConstantRangeCount uint32
	PPushConstantRanges    *PushConstantRange
}

// GraphicsPipelineCreateInfo mirrors VkGraphicsPipelineCreateInfo.
type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	StageCount          uint32
	PStages             *PipelineShaderStageCreateInfo
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PTessellationState  unsafe.Pointer
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}
