// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package instance creates and owns the VkInstance handle, the global +
// instance dispatch table resolved through it, and (optionally) a
// debug-utils messenger used to surface validation-layer output through
// this module's own logger rather than stderr.
package instance

import (
	"context"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"

	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("instance")

// ApplicationInfo names the client application and engine for the
// driver's own telemetry/allowlisting; none of it affects behavior.
type ApplicationInfo struct {
	Name          string
	Version       uint32
	EngineName    string
	EngineVersion uint32
	APIVersion    uint32
}

// Descriptor configures instance creation.
type Descriptor struct {
	Application        ApplicationInfo
	EnabledLayers      []string
	EnabledExtensions  []string
	AllocationCallback unsafe.Pointer
	// Debug requests a VK_EXT_debug_utils messenger in addition to
	// whatever layers/extensions the caller already listed.
	Debug bool
}

// Instance owns the VkInstance handle, its dispatch table (global +
// instance tiers), and an optional debug messenger. Dispatch is held by
// value: there is no back-pointer from Commands to Instance.
type Instance struct {
	lib       *vk.Library
	handle    vk.Instance
	cmds      vk.Commands
	alloc     unsafe.Pointer
	messenger vk.DebugUtilsMessengerEXT
}

// Handle returns the raw VkInstance.
func (i *Instance) Handle() vk.Instance { return i.handle }

// Commands returns the resolved global+instance dispatch table.
func (i *Instance) Commands() *vk.Commands { return &i.cmds }

// Library returns the underlying dynamic-library loader, so descendants
// (Device) can resolve their own dispatch tiers through it.
func (i *Instance) Library() *vk.Library { return i.lib }

// Create builds a VkInstance from the given descriptor. On any failure
// after vkCreateInstance succeeds, objects already created are torn
// down in reverse order before the error is returned.
func Create(lib *vk.Library, desc Descriptor) (*Instance, error) {
	cmds := vk.NewCommands()
	if err := cmds.LoadGlobal(lib); err != nil {
		return nil, zerr.New(zerr.CodeMissingSymbol, "instance.Create", err)
	}

	layers := desc.EnabledLayers
	extensions := append([]string{}, desc.EnabledExtensions...)
	if desc.Debug {
		extensions = appendUnique(extensions, "VK_EXT_debug_utils")
		layers = appendUnique(layers, "VK_LAYER_KHRONOS_validation")
	}

	appName := cString(desc.Application.Name)
	engineName := cString(desc.Application.EngineName)
	apiVersion := desc.Application.APIVersion
	if apiVersion == 0 {
		apiVersion = vkAPIVersion(1, 2, 0)
	}
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   firstByte(appName),
		ApplicationVersion: desc.Application.Version,
		PEngineName:        firstByte(engineName),
		EngineVersion:      desc.Application.EngineVersion,
		ApiVersion:         apiVersion,
	}

	layerPtrs := cStringArray(layers)
	extPtrs := cStringArray(extensions)

	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledLayerCount:       uint32(len(layerPtrs)),
		PpEnabledLayerNames:     firstPtr(layerPtrs),
		EnabledExtensionCount:   uint32(len(extPtrs)),
		PpEnabledExtensionNames: firstPtr(extPtrs),
	}

	var handle vk.Instance
	result := cmds.CreateInstance(&createInfo, desc.AllocationCallback, &handle)
	if result != vk.Success {
		return nil, zerr.Classify("instance.Create", result)
	}

	if err := cmds.LoadInstance(lib, handle); err != nil {
		cmds.DestroyInstance(handle, desc.AllocationCallback)
		return nil, zerr.New(zerr.CodeMissingSymbol, "instance.Create", err)
	}

	inst := &Instance{lib: lib, handle: handle, cmds: *cmds, alloc: desc.AllocationCallback}

	if desc.Debug {
		messenger, err := createDebugMessenger(inst)
		if err != nil {
			logger.Warn("debug messenger unavailable", "error", err)
		} else {
			inst.messenger = messenger
		}
	}

	logger.Info("instance created", "layers", layers, "extensions", extensions)
	return inst, nil
}

// EnumeratePhysicalDevices lists every adapter the driver exposes.
func (i *Instance) EnumeratePhysicalDevices() ([]vk.PhysicalDevice, error) {
	var count uint32
	if result := i.cmds.EnumeratePhysicalDevices(i.handle, &count, nil); result != vk.Success {
		return nil, zerr.Classify("instance.EnumeratePhysicalDevices", result)
	}
	if count == 0 {
		return nil, zerr.New(zerr.CodeNoSuitableDevice, "instance.EnumeratePhysicalDevices", nil)
	}
	devices := make([]vk.PhysicalDevice, count)
	if result := i.cmds.EnumeratePhysicalDevices(i.handle, &count, &devices[0]); result != vk.Success {
		return nil, zerr.Classify("instance.EnumeratePhysicalDevices", result)
	}
	return devices[:count], nil
}

// GetQueueFamilyProperties returns every queue family a physical device
// exposes.
func (i *Instance) GetQueueFamilyProperties(pd vk.PhysicalDevice) []vk.QueueFamilyProperties {
	var count uint32
	i.cmds.GetPhysicalDeviceQueueFamilyProperties(pd, &count, nil)
	if count == 0 {
		return nil
	}
	props := make([]vk.QueueFamilyProperties, count)
	i.cmds.GetPhysicalDeviceQueueFamilyProperties(pd, &count, &props[0])
	return props[:count]
}

// GetPhysicalDeviceProperties, GetPhysicalDeviceFeatures and
// GetPhysicalDeviceMemoryProperties forward directly to the dispatch
// table; they never fail (Vulkan defines them as void).
func (i *Instance) GetPhysicalDeviceProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	i.cmds.GetPhysicalDeviceProperties(pd, &props)
	return props
}

func (i *Instance) GetPhysicalDeviceFeatures(pd vk.PhysicalDevice) vk.PhysicalDeviceFeatures {
	var features vk.PhysicalDeviceFeatures
	i.cmds.GetPhysicalDeviceFeatures(pd, &features)
	return features
}

func (i *Instance) GetPhysicalDeviceMemoryProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	var props vk.PhysicalDeviceMemoryProperties
	i.cmds.GetPhysicalDeviceMemoryProperties(pd, &props)
	return props
}

// EnumerateDeviceExtensionProperties returns the extension names a
// physical device supports.
func (i *Instance) EnumerateDeviceExtensionProperties(pd vk.PhysicalDevice) ([]string, error) {
	var count uint32
	if result := i.cmds.EnumerateDeviceExtensionProperties(pd, nil, &count, nil); result != vk.Success {
		return nil, zerr.Classify("instance.EnumerateDeviceExtensionProperties", result)
	}
	if count == 0 {
		return nil, nil
	}
	// Each VkExtensionProperties is a 256-byte name + a uint32 spec
	// version; read the blob and slice out each fixed-width name.
	const recordSize = 256 + 4
	buf := make([]byte, int(count)*recordSize)
	if result := i.cmds.EnumerateDeviceExtensionProperties(pd, nil, &count, unsafe.Pointer(&buf[0])); result != vk.Success {
		return nil, zerr.Classify("instance.EnumerateDeviceExtensionProperties", result)
	}
	names := make([]string, 0, count)
	for n := 0; n < int(count); n++ {
		rec := buf[n*recordSize : n*recordSize+256]
		end := 0
		for end < len(rec) && rec[end] != 0 {
			end++
		}
		names = append(names, string(rec[:end]))
	}
	return names, nil
}

// GetPhysicalDeviceSurfaceSupport reports whether a queue family can
// present to the given surface.
func (i *Instance) GetPhysicalDeviceSurfaceSupport(pd vk.PhysicalDevice, queueFamily uint32, surface vk.SurfaceKHR) (bool, error) {
	var supported vk.Bool32
	result := i.cmds.GetPhysicalDeviceSurfaceSupportKHR(pd, queueFamily, surface, &supported)
	if result != vk.Success {
		return false, zerr.Classify("instance.GetPhysicalDeviceSurfaceSupport", result)
	}
	return supported == vk.True, nil
}

// Destroy tears the instance down, destroying its debug messenger
// first. Safe to call more than once.
func (i *Instance) Destroy() {
	if i.handle == vk.NullHandle {
		return
	}
	if i.messenger != vk.NullHandle {
		i.cmds.DestroyDebugUtilsMessengerEXT(i.handle, i.messenger, i.alloc)
		i.messenger = vk.NullHandle
	}
	i.cmds.DestroyInstance(i.handle, i.alloc)
	i.handle = vk.NullHandle
}

func vkAPIVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}

func appendUnique(s []string, v string) []string {
	for _, existing := range s {
		if existing == v {
			return s
		}
	}
	return append(s, v)
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func firstByte(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func cStringArray(values []string) []*byte {
	if len(values) == 0 {
		return nil
	}
	out := make([]*byte, len(values))
	for idx, v := range values {
		out[idx] = firstByte(cString(v))
	}
	return out
}

func firstPtr(p []*byte) *(*byte) {
	if len(p) == 0 {
		return nil
	}
	return &p[0]
}

// debugCallbackTrampoline is the single process-lifetime callback
// pointer every debug messenger this process creates shares, mirroring
// the create-once, never-free discipline ffi.NewCallback requires.
var debugCallbackTrampoline uintptr

func debugCallback(severity, msgType, callbackData, _ uintptr) uintptr {
	if callbackData == 0 {
		return uintptr(vk.False)
	}
	data := *(**vk.DebugUtilsMessengerCallbackDataEXT)(unsafe.Pointer(&callbackData))

	msg := "(no message)"
	if data.PMessage != nil {
		msg = cStringFromPtr(data.PMessage)
	}

	sev := vk.DebugUtilsMessageSeverityFlagsEXT(severity)
	level := slog.LevelDebug
	switch {
	case sev&vk.DebugUtilsMessageSeverityErrorBitEXT != 0:
		level = slog.LevelError
	case sev&vk.DebugUtilsMessageSeverityWarningBitEXT != 0:
		level = slog.LevelWarn
	case sev&vk.DebugUtilsMessageSeverityInfoBitEXT != 0:
		level = slog.LevelInfo
	}

	kind := vk.DebugUtilsMessageTypeFlagsEXT(msgType)
	category := "general"
	switch {
	case kind&vk.DebugUtilsMessageTypeValidationBitEXT != 0:
		category = "validation"
	case kind&vk.DebugUtilsMessageTypePerformanceBitEXT != 0:
		category = "performance"
	}

	logger.LogAttrs(context.Background(), level, msg, slog.String("category", category))
	return uintptr(vk.False)
}

func cStringFromPtr(p *byte) string {
	const maxLen = 4096
	buf := unsafe.Slice(p, maxLen)
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

func createDebugMessenger(inst *Instance) (vk.DebugUtilsMessengerEXT, error) {
	if debugCallbackTrampoline == 0 {
		debugCallbackTrampoline = ffi.NewCallback(debugCallback)
	}

	createInfo := vk.DebugUtilsMessengerCreateInfoEXT{
		SType: vk.StructureTypeDebugUtilsMessengerCreateInfoEXT,
		MessageSeverity: vk.DebugUtilsMessageSeverityWarningBitEXT |
			vk.DebugUtilsMessageSeverityErrorBitEXT,
		MessageType: vk.DebugUtilsMessageTypeGeneralBitEXT |
			vk.DebugUtilsMessageTypeValidationBitEXT |
			vk.DebugUtilsMessageTypePerformanceBitEXT,
		PfnUserCallback: unsafe.Pointer(debugCallbackTrampoline),
	}

	var messenger vk.DebugUtilsMessengerEXT
	result := inst.cmds.CreateDebugUtilsMessengerEXT(inst.handle, &createInfo, inst.alloc, &messenger)
	if result != vk.Success {
		return 0, zerr.Classify("instance.createDebugMessenger", result)
	}
	runtime.KeepAlive(debugCallbackTrampoline)
	return messenger, nil
}
