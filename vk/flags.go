// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package vk

// StructureType tags every pNext-chainable Vulkan struct.
type StructureType uint32

const (
	StructureTypeApplicationInfo                   StructureType = 0
	StructureTypeInstanceCreateInfo                 StructureType = 1
	StructureTypeDeviceQueueCreateInfo              StructureType = 2
	StructureTypeDeviceCreateInfo                   StructureType = 3
	StructureTypeSubmitInfo                         StructureType = 4
	StructureTypeMemoryAllocateInfo                 StructureType = 5
	StructureTypeMappedMemoryRange                  StructureType = 6
	StructureTypeFenceCreateInfo                    StructureType = 8
	StructureTypeSemaphoreCreateInfo                StructureType = 9
	StructureTypeEventCreateInfo                    StructureType = 10
	StructureTypeQueryPoolCreateInfo                StructureType = 11
	StructureTypeBufferCreateInfo                   StructureType = 12
	StructureTypeBufferViewCreateInfo                StructureType = 13
	StructureTypeImageCreateInfo                    StructureType = 14
	StructureTypeImageViewCreateInfo                StructureType = 15
	StructureTypeShaderModuleCreateInfo             StructureType = 16
	StructureTypePipelineCacheCreateInfo            StructureType = 17
	StructureTypePipelineShaderStageCreateInfo      StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo StructureType = 20
	StructureTypePipelineViewportStateCreateInfo    StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo  StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo     StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo         StructureType = 28
	StructureTypePipelineLayoutCreateInfo           StructureType = 30
	StructureTypeDescriptorSetLayoutCreateInfo      StructureType = 32
	StructureTypeDescriptorPoolCreateInfo           StructureType = 33
	StructureTypeDescriptorSetAllocateInfo          StructureType = 34
	StructureTypeWriteDescriptorSet                 StructureType = 35
	StructureTypeCopyDescriptorSet                  StructureType = 36
	StructureTypeFramebufferCreateInfo              StructureType = 37
	StructureTypeRenderPassCreateInfo               StructureType = 38
	StructureTypeCommandPoolCreateInfo              StructureType = 39
	StructureTypeCommandBufferAllocateInfo          StructureType = 40
	StructureTypeCommandBufferInheritanceInfo       StructureType = 41
	StructureTypeCommandBufferBeginInfo             StructureType = 42
	StructureTypeRenderPassBeginInfo                StructureType = 43
	StructureTypeImageMemoryBarrier                 StructureType = 45
	StructureTypeMemoryBarrier                      StructureType = 46
	StructureTypePhysicalDeviceFeatures2            StructureType = 1000059000
	StructureTypePhysicalDeviceProperties2          StructureType = 1000059001
	StructureTypeSwapchainCreateInfoKHR             StructureType = 1000001000
	StructureTypePresentInfoKHR                     StructureType = 1000001001
	StructureTypeDebugUtilsMessengerCreateInfoEXT   StructureType = 1000128004
	StructureTypeDebugUtilsMessengerCallbackDataEXT StructureType = 1000128003
	StructureTypeSemaphoreTypeCreateInfo            StructureType = 1000207002
	StructureTypeTimelineSemaphoreSubmitInfo        StructureType = 1000207003
	StructureTypeSemaphoreWaitInfo                  StructureType = 1000207004
	StructureTypeSemaphoreSignalInfo                StructureType = 1000207005
	StructureTypePresentTimesInfoGOOGLE             StructureType = 1000092000
)

// Format mirrors a slice of VkFormat relevant to swapchains and the
// glyph atlas.
type Format uint32

const (
	FormatUndefined        Format = 0
	FormatR8Unorm          Format = 9
	FormatB8G8R8A8Unorm    Format = 44
	FormatB8G8R8A8Srgb     Format = 50
	FormatR8G8B8A8Unorm    Format = 37
	FormatD32Sfloat        Format = 126
	FormatD24UnormS8Uint   Format = 129
)

// ColorSpaceKHR enumerates swapchain color spaces.
type ColorSpaceKHR uint32

const ColorSpaceSrgbNonlinear ColorSpaceKHR = 0

// PresentModeKHR enumerates swapchain present modes.
type PresentModeKHR uint32

const (
	PresentModeImmediate   PresentModeKHR = 0
	PresentModeMailbox     PresentModeKHR = 1
	PresentModeFifo        PresentModeKHR = 2
	PresentModeFifoRelaxed PresentModeKHR = 3
)

// SharingMode selects exclusive vs. concurrent queue-family access.
type SharingMode uint32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// ImageLayout enumerates the subset of layouts the transition table uses.
type ImageLayout uint32

const (
	ImageLayoutUndefined                    ImageLayout = 0
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPresentSrcKHR                 ImageLayout = 1000001002
)

// PipelineStageFlagBits and AccessFlagBits cover the barrier stages the
// transition table and the glyph-atlas upload pipeline reference.
type (
	PipelineStageFlags uint32
	AccessFlags        uint32
)

const (
	PipelineStageTopOfPipeBit              PipelineStageFlags = 0x00000001
	PipelineStageTransferBit               PipelineStageFlags = 0x00001000
	PipelineStageFragmentShaderBit         PipelineStageFlags = 0x00000080
	PipelineStageColorAttachmentOutputBit  PipelineStageFlags = 0x00000400
	PipelineStageEarlyFragmentTestsBit     PipelineStageFlags = 0x00000100
	PipelineStageLateFragmentTestsBit      PipelineStageFlags = 0x00000200
	PipelineStageBottomOfPipeBit           PipelineStageFlags = 0x00002000
	PipelineStageAllCommandsBit            PipelineStageFlags = 0x00010000
)

const (
	AccessTransferWriteBit              AccessFlags = 0x00001000
	AccessTransferReadBit               AccessFlags = 0x00000800
	AccessShaderReadBit                 AccessFlags = 0x00000020
	AccessColorAttachmentReadBit        AccessFlags = 0x00000080
	AccessColorAttachmentWriteBit       AccessFlags = 0x00000100
	AccessDepthStencilAttachmentReadBit AccessFlags = 0x00000200
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x00000400
	AccessInputAttachmentReadBit        AccessFlags = 0x00000010
)

// ImageAspectFlags selects the aspect(s) addressed by a subresource range.
type ImageAspectFlags uint32

const (
	ImageAspectColorBit   ImageAspectFlags = 0x00000001
	ImageAspectDepthBit   ImageAspectFlags = 0x00000002
	ImageAspectStencilBit ImageAspectFlags = 0x00000004
)

// ImageUsageFlags, BufferUsageFlags.
type (
	ImageUsageFlags  uint32
	BufferUsageFlags uint32
)

const (
	ImageUsageTransferSrcBit           ImageUsageFlags = 0x00000001
	ImageUsageTransferDstBit           ImageUsageFlags = 0x00000002
	ImageUsageSampledBit               ImageUsageFlags = 0x00000004
	ImageUsageStorageBit               ImageUsageFlags = 0x00000008
	ImageUsageColorAttachmentBit       ImageUsageFlags = 0x00000010
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x00000020
)

const (
	BufferUsageTransferSrcBit   BufferUsageFlags = 0x00000001
	BufferUsageTransferDstBit   BufferUsageFlags = 0x00000002
	BufferUsageUniformBufferBit BufferUsageFlags = 0x00000010
	BufferUsageStorageBufferBit BufferUsageFlags = 0x00000020
)

// MemoryPropertyFlags and MemoryHeapFlags describe VkMemoryType/VkMemoryHeap.
type (
	MemoryPropertyFlagBits uint32
	MemoryPropertyFlags    uint32
	MemoryHeapFlags        uint32
)

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlagBits = 0x00000001
	MemoryPropertyHostVisibleBit     MemoryPropertyFlagBits = 0x00000002
	MemoryPropertyHostCoherentBit    MemoryPropertyFlagBits = 0x00000004
	MemoryPropertyHostCachedBit      MemoryPropertyFlagBits = 0x00000008
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlagBits = 0x00000010
)

const MemoryHeapDeviceLocalBit MemoryHeapFlags = 0x00000001

// QueueFlags mirrors VkQueueFlagBits.
type QueueFlags uint32

const (
	QueueGraphicsBit QueueFlags = 0x00000001
	QueueComputeBit  QueueFlags = 0x00000002
	QueueTransferBit QueueFlags = 0x00000004
)

// PhysicalDeviceType mirrors VkPhysicalDeviceType.
type PhysicalDeviceType uint32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGpu PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGpu   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGpu    PhysicalDeviceType = 3
	PhysicalDeviceTypeCpu           PhysicalDeviceType = 4
)

// DescriptorType mirrors VkDescriptorType.
type DescriptorType uint32

const (
	DescriptorTypeSampler               DescriptorType = 0
	DescriptorTypeCombinedImageSampler  DescriptorType = 1
	DescriptorTypeSampledImage          DescriptorType = 2
	DescriptorTypeStorageImage          DescriptorType = 3
	DescriptorTypeUniformTexelBuffer    DescriptorType = 4
	DescriptorTypeStorageTexelBuffer    DescriptorType = 5
	DescriptorTypeUniformBuffer         DescriptorType = 6
	DescriptorTypeStorageBuffer         DescriptorType = 7
	DescriptorTypeInputAttachment       DescriptorType = 10
)

// DescriptorPoolCreateFlags mirrors VkDescriptorPoolCreateFlagBits.
type DescriptorPoolCreateFlags uint32

const DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 0x00000001

// ShaderStageFlags mirrors VkShaderStageFlagBits.
type ShaderStageFlags uint32

const (
	ShaderStageVertexBit   ShaderStageFlags = 0x00000001
	ShaderStageFragmentBit ShaderStageFlags = 0x00000010
	ShaderStageComputeBit  ShaderStageFlags = 0x00000020
)

// CommandPoolCreateFlags mirrors VkCommandPoolCreateFlagBits.
type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x00000002
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x00000001
)

// CommandBufferLevel mirrors VkCommandBufferLevel.
type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

// CommandBufferUsageFlags mirrors VkCommandBufferUsageFlagBits.
type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit CommandBufferUsageFlags = 0x00000001
)

// PipelineBindPoint mirrors VkPipelineBindPoint.
type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

// IndexType mirrors VkIndexType.
type IndexType uint32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

// SemaphoreType mirrors VkSemaphoreType.
type SemaphoreType uint32

const (
	SemaphoreTypeBinary    SemaphoreType = 0
	SemaphoreTypeTimeline  SemaphoreType = 1
)

// DependencyFlags mirrors VkDependencyFlagBits.
type DependencyFlags uint32

const DependencyByRegionBit DependencyFlags = 0x00000001

// AttachmentLoadOp mirrors VkAttachmentLoadOp. AttachmentDescription
// carries these as plain uint32 fields, so callers cast: AttachmentDescription{LoadOp: uint32(AttachmentLoadOpClear)}.
type AttachmentLoadOp uint32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

// AttachmentStoreOp mirrors VkAttachmentStoreOp.
type AttachmentStoreOp uint32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

// PrimitiveTopology mirrors VkPrimitiveTopology. Carried as a plain
// uint32 in PipelineInputAssemblyStateCreateInfo.Topology.
type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
)

// PolygonMode mirrors VkPolygonMode.
type PolygonMode uint32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

// CullModeFlags mirrors VkCullModeFlagBits.
type CullModeFlags uint32

const (
	CullModeNone         CullModeFlags = 0
	CullModeFrontBit     CullModeFlags = 0x00000001
	CullModeBackBit      CullModeFlags = 0x00000002
	CullModeFrontAndBack CullModeFlags = 0x00000003
)

// FrontFace mirrors VkFrontFace.
type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

// CompareOp mirrors VkCompareOp.
type CompareOp uint32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

// DynamicState mirrors VkDynamicState. Carried as plain uint32 values
// in PipelineDynamicStateCreateInfo.PDynamicStates.
type DynamicState uint32

const (
	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1
)

// BlendFactor mirrors VkBlendFactor.
type BlendFactor uint32

const (
	BlendFactorZero             BlendFactor = 0
	BlendFactorOne              BlendFactor = 1
	BlendFactorSrcColor         BlendFactor = 2
	BlendFactorOneMinusSrcColor BlendFactor = 3
	BlendFactorDstColor         BlendFactor = 4
	BlendFactorOneMinusDstColor BlendFactor = 5
	BlendFactorSrcAlpha         BlendFactor = 6
	BlendFactorOneMinusSrcAlpha BlendFactor = 7
	BlendFactorDstAlpha         BlendFactor = 8
	BlendFactorOneMinusDstAlpha BlendFactor = 9
)

// BlendOp mirrors VkBlendOp.
type BlendOp uint32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

// ColorComponentFlags mirrors VkColorComponentFlagBits.
type ColorComponentFlags uint32

const (
	ColorComponentRBit ColorComponentFlags = 0x00000001
	ColorComponentGBit ColorComponentFlags = 0x00000002
	ColorComponentBBit ColorComponentFlags = 0x00000004
	ColorComponentABit ColorComponentFlags = 0x00000008
)

const ColorComponentAllBits = ColorComponentRBit | ColorComponentGBit | ColorComponentBBit | ColorComponentABit

// CompositeAlphaFlagsKHR mirrors VkCompositeAlphaFlagBitsKHR.
type CompositeAlphaFlagsKHR uint32

const CompositeAlphaOpaqueBitKHR CompositeAlphaFlagsKHR = 0x00000001

// SurfaceTransformFlagsKHR mirrors VkSurfaceTransformFlagBitsKHR.
type SurfaceTransformFlagsKHR uint32

const SurfaceTransformIdentityBitKHR SurfaceTransformFlagsKHR = 0x00000001

// DebugUtilsMessageSeverityFlagsEXT / TypeFlagsEXT select which debug
// messages reach the registered callback.
type (
	DebugUtilsMessageSeverityFlagsEXT uint32
	DebugUtilsMessageTypeFlagsEXT     uint32
)

const (
	DebugUtilsMessageSeverityVerboseBitEXT DebugUtilsMessageSeverityFlagsEXT = 0x00000001
	DebugUtilsMessageSeverityInfoBitEXT    DebugUtilsMessageSeverityFlagsEXT = 0x00000010
	DebugUtilsMessageSeverityWarningBitEXT DebugUtilsMessageSeverityFlagsEXT = 0x00000100
	DebugUtilsMessageSeverityErrorBitEXT   DebugUtilsMessageSeverityFlagsEXT = 0x00001000
)

const (
	DebugUtilsMessageTypeGeneralBitEXT     DebugUtilsMessageTypeFlagsEXT = 0x00000001
	DebugUtilsMessageTypeValidationBitEXT  DebugUtilsMessageTypeFlagsEXT = 0x00000002
	DebugUtilsMessageTypePerformanceBitEXT DebugUtilsMessageTypeFlagsEXT = 0x00000004
)
