// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

import "github.com/go-webgpu/goffi/ffi"

// Commands is the resolved dispatch table: one function pointer per
// Vulkan entry point this module calls, loaded in three tiers (global,
// instance, device) the way the Vulkan loader itself expects. A zero
// field means the symbol was never resolved (extension absent, or the
// tier it belongs to hasn't been loaded yet); every typed wrapper below
// treats a nil pointer as "unsupported" rather than crashing.
type Commands struct {
	// global
	createInstance                      unsafe.Pointer
	enumerateInstanceVersion            unsafe.Pointer
	enumerateInstanceLayerProperties    unsafe.Pointer
	enumerateInstanceExtensionProperties unsafe.Pointer

	// instance
	destroyInstance                        unsafe.Pointer
	enumeratePhysicalDevices                unsafe.Pointer
	getPhysicalDeviceProperties              unsafe.Pointer
	getPhysicalDeviceFeatures                unsafe.Pointer
	getPhysicalDeviceMemoryProperties         unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties    unsafe.Pointer
	enumerateDeviceExtensionProperties        unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR        unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR   unsafe.Pointer
	getPhysicalDeviceSurfaceFormatsKHR        unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR   unsafe.Pointer
	createDevice                              unsafe.Pointer
	createDebugUtilsMessengerEXT              unsafe.Pointer
	destroyDebugUtilsMessengerEXT             unsafe.Pointer

	// device
	destroyDevice                   unsafe.Pointer
	getDeviceQueue                  unsafe.Pointer
	queueSubmit                     unsafe.Pointer
	queueWaitIdle                   unsafe.Pointer
	deviceWaitIdle                  unsafe.Pointer
	queuePresentKHR                 unsafe.Pointer
	allocateMemory                  unsafe.Pointer
	freeMemory                      unsafe.Pointer
	mapMemory                       unsafe.Pointer
	unmapMemory                     unsafe.Pointer
	flushMappedMemoryRanges         unsafe.Pointer
	invalidateMappedMemoryRanges    unsafe.Pointer
	getBufferMemoryRequirements     unsafe.Pointer
	bindBufferMemory                unsafe.Pointer
	getImageMemoryRequirements      unsafe.Pointer
	bindImageMemory                 unsafe.Pointer
	createBuffer                    unsafe.Pointer
	destroyBuffer                   unsafe.Pointer
	createImage                     unsafe.Pointer
	destroyImage                    unsafe.Pointer
	createImageView                 unsafe.Pointer
	destroyImageView                unsafe.Pointer
	createShaderModule              unsafe.Pointer
	destroyShaderModule             unsafe.Pointer
	createPipelineCache             unsafe.Pointer
	destroyPipelineCache            unsafe.Pointer
	getPipelineCacheData            unsafe.Pointer
	createPipelineLayout            unsafe.Pointer
	destroyPipelineLayout           unsafe.Pointer
	createGraphicsPipelines         unsafe.Pointer
	destroyPipeline                 unsafe.Pointer
	createDescriptorSetLayout       unsafe.Pointer
	destroyDescriptorSetLayout      unsafe.Pointer
	createDescriptorPool            unsafe.Pointer
	destroyDescriptorPool           unsafe.Pointer
	resetDescriptorPool             unsafe.Pointer
	allocateDescriptorSets          unsafe.Pointer
	freeDescriptorSets              unsafe.Pointer
	updateDescriptorSets            unsafe.Pointer
	createRenderPass                unsafe.Pointer
	destroyRenderPass               unsafe.Pointer
	createFramebuffer               unsafe.Pointer
	destroyFramebuffer              unsafe.Pointer
	createCommandPool               unsafe.Pointer
	destroyCommandPool              unsafe.Pointer
	resetCommandPool                unsafe.Pointer
	allocateCommandBuffers          unsafe.Pointer
	freeCommandBuffers              unsafe.Pointer
	beginCommandBuffer              unsafe.Pointer
	endCommandBuffer                unsafe.Pointer
	resetCommandBuffer              unsafe.Pointer
	cmdPipelineBarrier              unsafe.Pointer
	cmdCopyBufferToImage            unsafe.Pointer
	cmdBeginRenderPass              unsafe.Pointer
	cmdEndRenderPass                unsafe.Pointer
	cmdBindPipeline                 unsafe.Pointer
	cmdBindDescriptorSets           unsafe.Pointer
	cmdBindVertexBuffers            unsafe.Pointer
	cmdBindIndexBuffer              unsafe.Pointer
	cmdDraw                         unsafe.Pointer
	cmdDrawIndexed                  unsafe.Pointer
	cmdDispatch                     unsafe.Pointer
	createFence                     unsafe.Pointer
	destroyFence                    unsafe.Pointer
	resetFences                     unsafe.Pointer
	getFenceStatus                  unsafe.Pointer
	waitForFences                   unsafe.Pointer
	createSemaphore                 unsafe.Pointer
	destroySemaphore                unsafe.Pointer
	getSemaphoreCounterValue        unsafe.Pointer
	waitSemaphores                  unsafe.Pointer
	signalSemaphore                 unsafe.Pointer
	createSwapchainKHR               unsafe.Pointer
	destroySwapchainKHR              unsafe.Pointer
	getSwapchainImagesKHR            unsafe.Pointer
	acquireNextImageKHR              unsafe.Pointer
	getRefreshCycleDurationGOOGLE    unsafe.Pointer
	getPastPresentationTimingGOOGLE  unsafe.Pointer
}

// NewCommands returns an empty dispatch table; callers populate it tier
// by tier via LoadGlobal, LoadInstance and LoadDevice.
func NewCommands() *Commands {
	return &Commands{}
}

// LoadGlobal resolves the handful of entry points that exist before any
// VkInstance does.
func (c *Commands) LoadGlobal(lib *Library) error {
	c.createInstance = lib.GetInstanceProcAddr(0, "vkCreateInstance")
	c.enumerateInstanceVersion = lib.GetInstanceProcAddr(0, "vkEnumerateInstanceVersion")
	c.enumerateInstanceLayerProperties = lib.GetInstanceProcAddr(0, "vkEnumerateInstanceLayerProperties")
	c.enumerateInstanceExtensionProperties = lib.GetInstanceProcAddr(0, "vkEnumerateInstanceExtensionProperties")
	if c.createInstance == nil {
		return ErrMissingSymbol
	}
	return nil
}

// LoadInstance resolves every instance-level and physical-device query
// function, plus debug-utils (an instance extension resolved the same
// way as core instance functions).
func (c *Commands) LoadInstance(lib *Library, instance Instance) error {
	get := func(name string) unsafe.Pointer { return lib.GetInstanceProcAddr(instance, name) }

	c.destroyInstance = get("vkDestroyInstance")
	c.enumeratePhysicalDevices = get("vkEnumeratePhysicalDevices")
	c.getPhysicalDeviceProperties = get("vkGetPhysicalDeviceProperties")
	c.getPhysicalDeviceFeatures = get("vkGetPhysicalDeviceFeatures")
	c.getPhysicalDeviceMemoryProperties = get("vkGetPhysicalDeviceMemoryProperties")
	c.getPhysicalDeviceQueueFamilyProperties = get("vkGetPhysicalDeviceQueueFamilyProperties")
	c.enumerateDeviceExtensionProperties = get("vkEnumerateDeviceExtensionProperties")
	c.getPhysicalDeviceSurfaceSupportKHR = get("vkGetPhysicalDeviceSurfaceSupportKHR")
	c.getPhysicalDeviceSurfaceCapabilitiesKHR = get("vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	c.getPhysicalDeviceSurfaceFormatsKHR = get("vkGetPhysicalDeviceSurfaceFormatsKHR")
	c.getPhysicalDeviceSurfacePresentModesKHR = get("vkGetPhysicalDeviceSurfacePresentModesKHR")
	c.createDevice = get("vkCreateDevice")
	c.createDebugUtilsMessengerEXT = get("vkCreateDebugUtilsMessengerEXT")
	c.destroyDebugUtilsMessengerEXT = get("vkDestroyDebugUtilsMessengerEXT")

	if c.destroyInstance == nil || c.enumeratePhysicalDevices == nil || c.createDevice == nil {
		return ErrMissingSymbol
	}
	return nil
}

// LoadDevice resolves every device-level function, including the
// display-timing GOOGLE extension (left nil, and guarded by
// HasDisplayTiming, when the driver doesn't expose it).
func (c *Commands) LoadDevice(lib *Library, device Device) error {
	get := func(name string) unsafe.Pointer { return lib.GetDeviceProcAddr(device, name) }

	c.destroyDevice = get("vkDestroyDevice")
	c.getDeviceQueue = get("vkGetDeviceQueue")
	c.queueSubmit = get("vkQueueSubmit")
	c.queueWaitIdle = get("vkQueueWaitIdle")
	c.deviceWaitIdle = get("vkDeviceWaitIdle")
	c.queuePresentKHR = get("vkQueuePresentKHR")
	c.allocateMemory = get("vkAllocateMemory")
	c.freeMemory = get("vkFreeMemory")
	c.mapMemory = get("vkMapMemory")
	c.unmapMemory = get("vkUnmapMemory")
	c.flushMappedMemoryRanges = get("vkFlushMappedMemoryRanges")
	c.invalidateMappedMemoryRanges = get("vkInvalidateMappedMemoryRanges")
	c.getBufferMemoryRequirements = get("vkGetBufferMemoryRequirements")
	c.bindBufferMemory = get("vkBindBufferMemory")
	c.getImageMemoryRequirements = get("vkGetImageMemoryRequirements")
	c.bindImageMemory = get("vkBindImageMemory")
	c.createBuffer = get("vkCreateBuffer")
	c.destroyBuffer = get("vkDestroyBuffer")
	c.createImage = get("vkCreateImage")
	c.destroyImage = get("vkDestroyImage")
	c.createImageView = get("vkCreateImageView")
	c.destroyImageView = get("vkDestroyImageView")
	c.createShaderModule = get("vkCreateShaderModule")
	c.destroyShaderModule = get("vkDestroyShaderModule")
	c.createPipelineCache = get("vkCreatePipelineCache")
	c.destroyPipelineCache = get("vkDestroyPipelineCache")
	c.getPipelineCacheData = get("vkGetPipelineCacheData")
	c.createPipelineLayout = get("vkCreatePipelineLayout")
	c.destroyPipelineLayout = get("vkDestroyPipelineLayout")
	c.createGraphicsPipelines = get("vkCreateGraphicsPipelines")
	c.destroyPipeline = get("vkDestroyPipeline")
	c.createDescriptorSetLayout = get("vkCreateDescriptorSetLayout")
	c.destroyDescriptorSetLayout = get("vkDestroyDescriptorSetLayout")
	c.createDescriptorPool = get("vkCreateDescriptorPool")
	c.destroyDescriptorPool = get("vkDestroyDescriptorPool")
	c.resetDescriptorPool = get("vkResetDescriptorPool")
	c.allocateDescriptorSets = get("vkAllocateDescriptorSets")
	c.freeDescriptorSets = get("vkFreeDescriptorSets")
	c.updateDescriptorSets = get("vkUpdateDescriptorSets")
	c.createRenderPass = get("vkCreateRenderPass")
	c.destroyRenderPass = get("vkDestroyRenderPass")
	c.createFramebuffer = get("vkCreateFramebuffer")
	c.destroyFramebuffer = get("vkDestroyFramebuffer")
	c.createCommandPool = get("vkCreateCommandPool")
	c.destroyCommandPool = get("vkDestroyCommandPool")
	c.resetCommandPool = get("vkResetCommandPool")
	c.allocateCommandBuffers = get("vkAllocateCommandBuffers")
	c.freeCommandBuffers = get("vkFreeCommandBuffers")
	c.beginCommandBuffer = get("vkBeginCommandBuffer")
	c.endCommandBuffer = get("vkEndCommandBuffer")
	c.resetCommandBuffer = get("vkResetCommandBuffer")
	c.cmdPipelineBarrier = get("vkCmdPipelineBarrier")
	c.cmdCopyBufferToImage = get("vkCmdCopyBufferToImage")
	c.cmdBeginRenderPass = get("vkCmdBeginRenderPass")
	c.cmdEndRenderPass = get("vkCmdEndRenderPass")
	c.cmdBindPipeline = get("vkCmdBindPipeline")
	c.cmdBindDescriptorSets = get("vkCmdBindDescriptorSets")
	c.cmdBindVertexBuffers = get("vkCmdBindVertexBuffers")
	c.cmdBindIndexBuffer = get("vkCmdBindIndexBuffer")
	c.cmdDraw = get("vkCmdDraw")
	c.cmdDrawIndexed = get("vkCmdDrawIndexed")
	c.cmdDispatch = get("vkCmdDispatch")
	c.createFence = get("vkCreateFence")
	c.destroyFence = get("vkDestroyFence")
	c.resetFences = get("vkResetFences")
	c.getFenceStatus = get("vkGetFenceStatus")
	c.waitForFences = get("vkWaitForFences")
	c.createSemaphore = get("vkCreateSemaphore")
	c.destroySemaphore = get("vkDestroySemaphore")
	c.getSemaphoreCounterValue = get("vkGetSemaphoreCounterValue")
	c.waitSemaphores = get("vkWaitSemaphores")
	c.signalSemaphore = get("vkSignalSemaphore")
	c.createSwapchainKHR = get("vkCreateSwapchainKHR")
	c.destroySwapchainKHR = get("vkDestroySwapchainKHR")
	c.getSwapchainImagesKHR = get("vkGetSwapchainImagesKHR")
	c.acquireNextImageKHR = get("vkAcquireNextImageKHR")
	c.getRefreshCycleDurationGOOGLE = get("vkGetRefreshCycleDurationGOOGLE")
	c.getPastPresentationTimingGOOGLE = get("vkGetPastPresentationTimingGOOGLE")

	if c.destroyDevice == nil || c.getDeviceQueue == nil || c.queueSubmit == nil {
		return ErrMissingSymbol
	}
	return nil
}

// HasTimelineSemaphore reports whether the Vulkan 1.2 core timeline
// semaphore entry points resolved.
func (c *Commands) HasTimelineSemaphore() bool {
	return c.getSemaphoreCounterValue != nil && c.waitSemaphores != nil && c.signalSemaphore != nil
}

// HasDisplayTiming reports whether VK_GOOGLE_display_timing is present
// on this device.
func (c *Commands) HasDisplayTiming() bool {
	return c.getRefreshCycleDurationGOOGLE != nil && c.getPastPresentationTimingGOOGLE != nil
}

// HasDebugUtils reports whether VK_EXT_debug_utils resolved on the
// instance.
func (c *Commands) HasDebugUtils() bool {
	return c.createDebugUtilsMessengerEXT != nil && c.destroyDebugUtilsMessengerEXT != nil
}

// --- global ---

func (c *Commands) CreateInstance(pCreateInfo *InstanceCreateInfo, pAllocator unsafe.Pointer, pInstance *Instance) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pInstance)}
	if err := ffi.CallFunction(&sigResultPtrPtrPtr, c.createInstance, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) EnumerateInstanceVersion(pApiVersion *uint32) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&pApiVersion)}
	if err := ffi.CallFunction(&sigResultPtr, c.enumerateInstanceVersion, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- instance / physical device ---

func (c *Commands) DestroyInstance(instance Instance, pAllocator unsafe.Pointer) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandlePtr, c.destroyInstance, nil, args[:])
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance, pCount *uint32, pDevices *PhysicalDevice) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&pCount), unsafe.Pointer(&pDevices)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtr, c.enumeratePhysicalDevices, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceProperties(pd PhysicalDevice, pProperties *PhysicalDeviceProperties) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&pProperties)}
	_ = ffi.CallFunction(&sigVoidHandlePtr, c.getPhysicalDeviceProperties, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceFeatures(pd PhysicalDevice, pFeatures *PhysicalDeviceFeatures) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&pFeatures)}
	_ = ffi.CallFunction(&sigVoidHandlePtr, c.getPhysicalDeviceFeatures, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceMemoryProperties(pd PhysicalDevice, pProperties *PhysicalDeviceMemoryProperties) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&pProperties)}
	_ = ffi.CallFunction(&sigVoidHandlePtr, c.getPhysicalDeviceMemoryProperties, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(pd PhysicalDevice, pCount *uint32, pProperties *QueueFamilyProperties) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&pCount), unsafe.Pointer(&pProperties)}
	_ = ffi.CallFunction(&sigVoidHandlePtrPtr, c.getPhysicalDeviceQueueFamilyProperties, nil, args[:])
}

func (c *Commands) EnumerateDeviceExtensionProperties(pd PhysicalDevice, pLayerName unsafe.Pointer, pCount *uint32, pProperties unsafe.Pointer) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&pLayerName), unsafe.Pointer(&pCount), unsafe.Pointer(&pProperties)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.enumerateDeviceExtensionProperties, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceSurfaceSupportKHR(pd PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR, pSupported *Bool32) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&queueFamilyIndex), unsafe.Pointer(&surface), unsafe.Pointer(&pSupported)}
	if err := ffi.CallFunction(&sigResultHandleU32HandlePtr, c.getPhysicalDeviceSurfaceSupportKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(pd PhysicalDevice, surface SurfaceKHR, pCaps *SurfaceCapabilitiesKHR) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&pCaps)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtr, c.getPhysicalDeviceSurfaceCapabilitiesKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceSurfaceFormatsKHR(pd PhysicalDevice, surface SurfaceKHR, pCount *uint32, pFormats *SurfaceFormatKHR) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&pCount), unsafe.Pointer(&pFormats)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfaceFormatsKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceSurfacePresentModesKHR(pd PhysicalDevice, surface SurfaceKHR, pCount *uint32, pModes *PresentModeKHR) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&surface), unsafe.Pointer(&pCount), unsafe.Pointer(&pModes)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfacePresentModesKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) CreateDevice(pd PhysicalDevice, pCreateInfo *DeviceCreateInfo, pAllocator unsafe.Pointer, pDevice *Device) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&pd), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pDevice)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createDevice, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, pCreateInfo *DebugUtilsMessengerCreateInfoEXT, pAllocator unsafe.Pointer, pMessenger *DebugUtilsMessengerEXT) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pMessenger)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createDebugUtilsMessengerEXT, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&messenger), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyDebugUtilsMessengerEXT, nil, args[:])
}

// --- device / queue ---

func (c *Commands) DestroyDevice(device Device, pAllocator unsafe.Pointer) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandlePtr, c.destroyDevice, nil, args[:])
}

func (c *Commands) GetDeviceQueue(device Device, queueFamilyIndex, queueIndex uint32, pQueue *Queue) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&queueFamilyIndex), unsafe.Pointer(&queueIndex), unsafe.Pointer(&pQueue)}
	_ = ffi.CallFunction(&sigVoidHandleU32U32Ptr, c.getDeviceQueue, nil, args[:])
}

func (c *Commands) QueueSubmit(queue Queue, submitCount uint32, pSubmits *SubmitInfo, fence Fence) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&submitCount), unsafe.Pointer(&pSubmits), unsafe.Pointer(&fence)}
	if err := ffi.CallFunction(&sigResultHandleU32PtrHandle, c.queueSubmit, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorDeviceLost
	}
	return Result(result)
}

func (c *Commands) QueueWaitIdle(queue Queue) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&queue)}
	if err := ffi.CallFunction(&sigResultHandle, c.queueWaitIdle, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorDeviceLost
	}
	return Result(result)
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&device)}
	if err := ffi.CallFunction(&sigResultHandle, c.deviceWaitIdle, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorDeviceLost
	}
	return Result(result)
}

func (c *Commands) QueuePresentKHR(queue Queue, pPresentInfo *PresentInfoKHR) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&pPresentInfo)}
	if err := ffi.CallFunction(&sigResultHandlePtr, c.queuePresentKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorDeviceLost
	}
	return Result(result)
}

// --- memory ---

func (c *Commands) AllocateMemory(device Device, pAllocateInfo *MemoryAllocateInfo, pAllocator unsafe.Pointer, pMemory *DeviceMemory) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pAllocateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pMemory)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.allocateMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorOutOfDeviceMemory
	}
	return Result(result)
}

func (c *Commands) FreeMemory(device Device, memory DeviceMemory, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.freeMemory, nil, args[:])
}

func (c *Commands) MapMemory(device Device, memory DeviceMemory, offset, size DeviceSize, flags uint32, ppData *unsafe.Pointer) Result {
	var result int32
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&flags), unsafe.Pointer(&ppData)}
	if err := ffi.CallFunction(&sigResultMapMemory, c.mapMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorMemoryMapFailed
	}
	return Result(result)
}

func (c *Commands) UnmapMemory(device Device, memory DeviceMemory) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory)}
	_ = ffi.CallFunction(&sigVoidHandleHandle, c.unmapMemory, nil, args[:])
}

func (c *Commands) FlushMappedMemoryRanges(device Device, count uint32, pRanges *MappedMemoryRange) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&pRanges)}
	if err := ffi.CallFunction(&sigResultHandleU32Ptr, c.flushMappedMemoryRanges, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorOutOfDeviceMemory
	}
	return Result(result)
}

func (c *Commands) InvalidateMappedMemoryRanges(device Device, count uint32, pRanges *MappedMemoryRange) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&pRanges)}
	if err := ffi.CallFunction(&sigResultHandleU32Ptr, c.invalidateMappedMemoryRanges, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorOutOfDeviceMemory
	}
	return Result(result)
}

func (c *Commands) GetBufferMemoryRequirements(device Device, buffer Buffer, pRequirements *MemoryRequirements) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&pRequirements)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.getBufferMemoryRequirements, nil, args[:])
}

func (c *Commands) BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset DeviceSize) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	if err := ffi.CallFunction(&sigResultHandle4, c.bindBufferMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorOutOfDeviceMemory
	}
	return Result(result)
}

func (c *Commands) GetImageMemoryRequirements(device Device, image Image, pRequirements *MemoryRequirements) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&pRequirements)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.getImageMemoryRequirements, nil, args[:])
}

func (c *Commands) BindImageMemory(device Device, image Image, memory DeviceMemory, offset DeviceSize) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	if err := ffi.CallFunction(&sigResultHandle4, c.bindImageMemory, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorOutOfDeviceMemory
	}
	return Result(result)
}

// --- buffers / images ---

func (c *Commands) CreateBuffer(device Device, pCreateInfo *BufferCreateInfo, pAllocator unsafe.Pointer, pBuffer *Buffer) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pBuffer)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyBuffer(device Device, buffer Buffer, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyBuffer, nil, args[:])
}

func (c *Commands) CreateImage(device Device, pCreateInfo *ImageCreateInfo, pAllocator unsafe.Pointer, pImage *Image) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pImage)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createImage, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyImage(device Device, image Image, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyImage, nil, args[:])
}

func (c *Commands) CreateImageView(device Device, pCreateInfo *ImageViewCreateInfo, pAllocator unsafe.Pointer, pView *ImageView) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pView)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createImageView, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyImageView(device Device, view ImageView, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&view), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyImageView, nil, args[:])
}

// --- shaders / pipelines ---

func (c *Commands) CreateShaderModule(device Device, pCreateInfo *ShaderModuleCreateInfo, pAllocator unsafe.Pointer, pModule *ShaderModule) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pModule)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createShaderModule, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyShaderModule(device Device, module ShaderModule, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&module), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyShaderModule, nil, args[:])
}

func (c *Commands) CreatePipelineCache(device Device, pCreateInfo *PipelineCacheCreateInfo, pAllocator unsafe.Pointer, pCache *PipelineCache) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pCache)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createPipelineCache, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyPipelineCache(device Device, cache PipelineCache, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyPipelineCache, nil, args[:])
}

func (c *Commands) GetPipelineCacheData(device Device, cache PipelineCache, pDataSize *uintptr, pData unsafe.Pointer) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&pDataSize), unsafe.Pointer(&pData)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtrPtr, c.getPipelineCacheData, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) CreatePipelineLayout(device Device, pCreateInfo *PipelineLayoutCreateInfo, pAllocator unsafe.Pointer, pLayout *PipelineLayout) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pLayout)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createPipelineLayout, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyPipelineLayout, nil, args[:])
}

func (c *Commands) CreateGraphicsPipelines(device Device, cache PipelineCache, count uint32, pCreateInfos *GraphicsPipelineCreateInfo, pAllocator unsafe.Pointer, pPipelines *Pipeline) Result {
	var result int32
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count), unsafe.Pointer(&pCreateInfos), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pPipelines)}
	if err := ffi.CallFunction(&sigResultCreatePipelines, c.createGraphicsPipelines, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyPipeline(device Device, pipeline Pipeline, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pipeline), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyPipeline, nil, args[:])
}

// --- descriptors ---

func (c *Commands) CreateDescriptorSetLayout(device Device, pCreateInfo *DescriptorSetLayoutCreateInfo, pAllocator unsafe.Pointer, pLayout *DescriptorSetLayout) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pLayout)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createDescriptorSetLayout, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyDescriptorSetLayout, nil, args[:])
}

func (c *Commands) CreateDescriptorPool(device Device, pCreateInfo *DescriptorPoolCreateInfo, pAllocator unsafe.Pointer, pPool *DescriptorPool) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pPool)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createDescriptorPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyDescriptorPool, nil, args[:])
}

func (c *Commands) ResetDescriptorPool(device Device, pool DescriptorPool, flags uint32) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	if err := ffi.CallFunction(&sigResultHandleHandleU32, c.resetDescriptorPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) AllocateDescriptorSets(device Device, pAllocateInfo *DescriptorSetAllocateInfo, pSets *DescriptorSet) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pAllocateInfo), unsafe.Pointer(&pSets)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtr, c.allocateDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorFragmentedPool
	}
	return Result(result)
}

func (c *Commands) FreeDescriptorSets(device Device, pool DescriptorPool, count uint32, pSets *DescriptorSet) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&pSets)}
	if err := ffi.CallFunction(&sigResultHandleHandleU32Ptr, c.freeDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, pWrites *WriteDescriptorSet, copyCount uint32, pCopies *CopyDescriptorSet) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&writeCount), unsafe.Pointer(&pWrites), unsafe.Pointer(&copyCount), unsafe.Pointer(&pCopies)}
	_ = ffi.CallFunction(&sigVoidDeviceUpdateDescriptorSets, c.updateDescriptorSets, nil, args[:])
}

// --- render pass / framebuffer ---

func (c *Commands) CreateRenderPass(device Device, pCreateInfo *RenderPassCreateInfo, pAllocator unsafe.Pointer, pRenderPass *RenderPass) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pRenderPass)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createRenderPass, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&renderPass), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyRenderPass, nil, args[:])
}

func (c *Commands) CreateFramebuffer(device Device, pCreateInfo *FramebufferCreateInfo, pAllocator unsafe.Pointer, pFramebuffer *Framebuffer) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pFramebuffer)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createFramebuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&framebuffer), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyFramebuffer, nil, args[:])
}

// --- command pool / buffer ---

func (c *Commands) CreateCommandPool(device Device, pCreateInfo *CommandPoolCreateInfo, pAllocator unsafe.Pointer, pPool *CommandPool) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pPool)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createCommandPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyCommandPool(device Device, pool CommandPool, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyCommandPool, nil, args[:])
}

func (c *Commands) ResetCommandPool(device Device, pool CommandPool, flags uint32) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	if err := ffi.CallFunction(&sigResultHandleHandleU32, c.resetCommandPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) AllocateCommandBuffers(device Device, pAllocateInfo *CommandBufferAllocateInfo, pBuffers *CommandBuffer) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pAllocateInfo), unsafe.Pointer(&pBuffers)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtr, c.allocateCommandBuffers, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, count uint32, pBuffers *CommandBuffer) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&pBuffers)}
	_ = ffi.CallFunction(&sigVoidHandleHandleU32Ptr, c.freeCommandBuffers, nil, args[:])
}

func (c *Commands) BeginCommandBuffer(cmd CommandBuffer, pBeginInfo *CommandBufferBeginInfo) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&pBeginInfo)}
	if err := ffi.CallFunction(&sigResultHandlePtr, c.beginCommandBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) EndCommandBuffer(cmd CommandBuffer) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&cmd)}
	if err := ffi.CallFunction(&sigResultHandle, c.endCommandBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) ResetCommandBuffer(cmd CommandBuffer, flags uint32) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&flags)}
	if err := ffi.CallFunction(&sigResultHandleU32, c.resetCommandBuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// --- cmd* recording ---

func (c *Commands) CmdPipelineBarrier(cmd CommandBuffer, srcStage, dstStage PipelineStageFlags, depFlags uint32,
	memBarrierCount uint32, pMemBarriers unsafe.Pointer,
	bufBarrierCount uint32, pBufBarriers unsafe.Pointer,
	imgBarrierCount uint32, pImgBarriers *ImageMemoryBarrier) {
	args := [10]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&srcStage), unsafe.Pointer(&dstStage), unsafe.Pointer(&depFlags),
		unsafe.Pointer(&memBarrierCount), unsafe.Pointer(&pMemBarriers),
		unsafe.Pointer(&bufBarrierCount), unsafe.Pointer(&pBufBarriers),
		unsafe.Pointer(&imgBarrierCount), unsafe.Pointer(&pImgBarriers),
	}
	_ = ffi.CallFunction(&sigVoidCmdPipelineBarrier, c.cmdPipelineBarrier, nil, args[:])
}

func (c *Commands) CmdCopyBufferToImage(cmd CommandBuffer, srcBuffer Buffer, dstImage Image, dstImageLayout ImageLayout, regionCount uint32, pRegions *BufferImageCopy) {
	args := [6]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&srcBuffer), unsafe.Pointer(&dstImage), unsafe.Pointer(&dstImageLayout), unsafe.Pointer(&regionCount), unsafe.Pointer(&pRegions)}
	_ = ffi.CallFunction(&sigVoidCmdCopyBufferToImage, c.cmdCopyBufferToImage, nil, args[:])
}

func (c *Commands) CmdBeginRenderPass(cmd CommandBuffer, pRenderPassBegin *RenderPassBeginInfo, contents uint32) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&pRenderPassBegin), unsafe.Pointer(&contents)}
	_ = ffi.CallFunction(&sigVoidHandlePtrU32, c.cmdBeginRenderPass, nil, args[:])
}

func (c *Commands) CmdEndRenderPass(cmd CommandBuffer) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&cmd)}
	_ = ffi.CallFunction(&sigVoidHandle, c.cmdEndRenderPass, nil, args[:])
}

func (c *Commands) CmdBindPipeline(cmd CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&bindPoint), unsafe.Pointer(&pipeline)}
	_ = ffi.CallFunction(&sigVoidHandleU32Handle, c.cmdBindPipeline, nil, args[:])
}

func (c *Commands) CmdBindDescriptorSets(cmd CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout,
	firstSet, setCount uint32, pSets *DescriptorSet, dynOffsetCount uint32, pDynOffsets *uint32) {
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&bindPoint), unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet), unsafe.Pointer(&setCount), unsafe.Pointer(&pSets),
		unsafe.Pointer(&dynOffsetCount), unsafe.Pointer(&pDynOffsets),
	}
	_ = ffi.CallFunction(&sigVoidCmdBindDescriptorSets, c.cmdBindDescriptorSets, nil, args[:])
}

func (c *Commands) CmdBindVertexBuffers(cmd CommandBuffer, firstBinding, bindingCount uint32, pBuffers *Buffer, pOffsets *DeviceSize) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&firstBinding), unsafe.Pointer(&bindingCount), unsafe.Pointer(&pBuffers), unsafe.Pointer(&pOffsets)}
	_ = ffi.CallFunction(&sigVoidHandleU32U32PtrPtr, c.cmdBindVertexBuffers, nil, args[:])
}

func (c *Commands) CmdBindIndexBuffer(cmd CommandBuffer, buffer Buffer, offset DeviceSize, indexType uint32) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&indexType)}
	_ = ffi.CallFunction(&sigVoidHandleHandleU64U32, c.cmdBindIndexBuffer, nil, args[:])
}

func (c *Commands) CmdDraw(cmd CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&vertexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstVertex), unsafe.Pointer(&firstInstance)}
	_ = ffi.CallFunction(&sigVoidHandleU32x4, c.cmdDraw, nil, args[:])
}

func (c *Commands) CmdDrawIndexed(cmd CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	args := [6]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&indexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstIndex), unsafe.Pointer(&vertexOffset), unsafe.Pointer(&firstInstance)}
	_ = ffi.CallFunction(&sigVoidHandleU32x3I32U32, c.cmdDrawIndexed, nil, args[:])
}

func (c *Commands) CmdDispatch(cmd CommandBuffer, x, y, z uint32) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&cmd), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z)}
	_ = ffi.CallFunction(&sigVoidHandleU32x3, c.cmdDispatch, nil, args[:])
}

// --- fences / semaphores ---

func (c *Commands) CreateFence(device Device, pCreateInfo *FenceCreateInfo, pAllocator unsafe.Pointer, pFence *Fence) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pFence)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createFence, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroyFence(device Device, fence Fence, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroyFence, nil, args[:])
}

func (c *Commands) ResetFences(device Device, count uint32, pFences *Fence) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&pFences)}
	if err := ffi.CallFunction(&sigResultHandleU32Ptr, c.resetFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence)}
	if err := ffi.CallFunction(&sigResultHandleHandle, c.getFenceStatus, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorDeviceLost
	}
	return Result(result)
}

func (c *Commands) WaitForFences(device Device, count uint32, pFences *Fence, waitAll Bool32, timeout uint64) Result {
	var result int32
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&pFences), unsafe.Pointer(&waitAll), unsafe.Pointer(&timeout)}
	if err := ffi.CallFunction(&sigResultWaitForFences, c.waitForFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorDeviceLost
	}
	return Result(result)
}

func (c *Commands) CreateSemaphore(device Device, pCreateInfo *SemaphoreCreateInfo, pAllocator unsafe.Pointer, pSemaphore *Semaphore) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pSemaphore)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createSemaphore, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroySemaphore(device Device, semaphore Semaphore, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroySemaphore, nil, args[:])
}

func (c *Commands) GetSemaphoreCounterValue(device Device, semaphore Semaphore, pValue *uint64) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&semaphore), unsafe.Pointer(&pValue)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtr, c.getSemaphoreCounterValue, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorFeatureNotPresent
	}
	return Result(result)
}

func (c *Commands) WaitSemaphores(device Device, pWaitInfo *SemaphoreWaitInfo, timeout uint64) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pWaitInfo), unsafe.Pointer(&timeout)}
	if err := ffi.CallFunction(&sigResultHandlePtrU64, c.waitSemaphores, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorFeatureNotPresent
	}
	return Result(result)
}

func (c *Commands) SignalSemaphore(device Device, pSignalInfo *SemaphoreSignalInfo) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pSignalInfo)}
	if err := ffi.CallFunction(&sigResultHandlePtr, c.signalSemaphore, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorFeatureNotPresent
	}
	return Result(result)
}

// --- swapchain / display timing ---

func (c *Commands) CreateSwapchainKHR(device Device, pCreateInfo *SwapchainCreateInfoKHR, pAllocator unsafe.Pointer, pSwapchain *SwapchainKHR) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pCreateInfo), unsafe.Pointer(&pAllocator), unsafe.Pointer(&pSwapchain)}
	if err := ffi.CallFunction(&sigResultHandlePtrPtrPtr, c.createSwapchainKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) DestroySwapchainKHR(device Device, swapchain SwapchainKHR, pAllocator unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&pAllocator)}
	_ = ffi.CallFunction(&sigVoidHandleHandlePtr, c.destroySwapchainKHR, nil, args[:])
}

func (c *Commands) GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR, pCount *uint32, pImages *Image) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&pCount), unsafe.Pointer(&pImages)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtrPtr, c.getSwapchainImagesKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

func (c *Commands) AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, pImageIndex *uint32) Result {
	var result int32
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&timeout), unsafe.Pointer(&semaphore), unsafe.Pointer(&fence), unsafe.Pointer(&pImageIndex)}
	if err := ffi.CallFunction(&sigResultAcquireNextImage, c.acquireNextImageKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorDeviceLost
	}
	return Result(result)
}

func (c *Commands) GetRefreshCycleDurationGOOGLE(device Device, swapchain SwapchainKHR, pProperties *RefreshCycleDurationGOOGLE) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&pProperties)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtr, c.getRefreshCycleDurationGOOGLE, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorFeatureNotPresent
	}
	return Result(result)
}

func (c *Commands) GetPastPresentationTimingGOOGLE(device Device, swapchain SwapchainKHR, pCount *uint32, pTimings *PastPresentationTimingGOOGLE) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&pCount), unsafe.Pointer(&pTimings)}
	if err := ffi.CallFunction(&sigResultHandleHandlePtrPtr, c.getPastPresentationTimingGOOGLE, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorFeatureNotPresent
	}
	return Result(result)
}
