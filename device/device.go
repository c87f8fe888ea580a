// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package device creates the logical VkDevice from a physdevice
// Selection, resolves the device-tier dispatch table, and fetches the
// queue handles the selection assigned.
package device

import (
	"unsafe"

	"github.com/ghostkellz/zeus-vk/instance"
	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/physdevice"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("device")

// Device owns the logical VkDevice handle and its dispatch table by
// value — nothing holds a back-pointer from Commands to Device, per
// this module's cyclic-ownership design note.
type Device struct {
	handle   vk.Device
	physical vk.PhysicalDevice
	cmds     vk.Commands
	alloc    unsafe.Pointer

	graphicsFamily *uint32
	presentFamily  *uint32
	transferFamily *uint32
	computeFamily  *uint32

	graphicsQueue vk.Queue
	presentQueue  vk.Queue
	transferQueue vk.Queue
	computeQueue  vk.Queue
}

// Create builds one VkDeviceQueueCreateInfo per distinct queue family
// in sel.Queues, creates the logical device, resolves the device
// dispatch table, and fetches every requested queue handle.
func Create(inst *instance.Instance, sel physdevice.Selection, extraExtensions []string, allocator unsafe.Pointer) (*Device, error) {
	families := distinctFamilies(sel.Queues)

	priority := float32(1.0)
	queueInfos := make([]vk.DeviceQueueCreateInfo, len(families))
	for idx, family := range families {
		queueInfos[idx] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: family,
			QueueCount:       1,
			PQueuePriorities: &priority,
		}
	}

	extensions := append(append([]string{}, sel.EnabledOptionalExts...), extraExtensions...)
	extPtrs := make([]*byte, len(extensions))
	for i, name := range extensions {
		b := append([]byte(name), 0)
		extPtrs[i] = &b[0]
	}

	createInfo := vk.DeviceCreateInfo{
		SType:                 vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:  uint32(len(queueInfos)),
		PEnabledFeatures:      &sel.Features,
	}
	if len(queueInfos) > 0 {
		createInfo.PQueueCreateInfos = &queueInfos[0]
	}
	if len(extPtrs) > 0 {
		createInfo.EnabledExtensionCount = uint32(len(extPtrs))
		createInfo.PpEnabledExtensionNames = &extPtrs[0]
	}

	cmds := *inst.Commands()
	var handle vk.Device
	result := cmds.CreateDevice(sel.PhysicalDevice, &createInfo, allocator, &handle)
	if result != vk.Success {
		return nil, zerr.Classify("device.Create", result)
	}

	inst.Library().SetDeviceProcAddr(inst.Handle())
	if err := cmds.LoadDevice(inst.Library(), handle); err != nil {
		cmds.DestroyDevice(handle, allocator)
		return nil, zerr.New(zerr.CodeMissingSymbol, "device.Create", err)
	}

	d := &Device{
		handle:         handle,
		physical:       sel.PhysicalDevice,
		cmds:           cmds,
		alloc:          allocator,
		graphicsFamily: sel.Queues.Graphics,
		presentFamily:  sel.Queues.Present,
		transferFamily: sel.Queues.Transfer,
		computeFamily:  sel.Queues.Compute,
	}

	if d.graphicsFamily != nil {
		cmds.GetDeviceQueue(handle, *d.graphicsFamily, 0, &d.graphicsQueue)
	}
	if d.presentFamily != nil {
		cmds.GetDeviceQueue(handle, *d.presentFamily, 0, &d.presentQueue)
	}
	if d.transferFamily != nil {
		cmds.GetDeviceQueue(handle, *d.transferFamily, 0, &d.transferQueue)
	}
	if d.computeFamily != nil {
		cmds.GetDeviceQueue(handle, *d.computeFamily, 0, &d.computeQueue)
	}

	logger.Info("device created", "extensions", extensions, "queue_families", families)
	return d, nil
}

func distinctFamilies(q physdevice.QueueFamilies) []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	add := func(p *uint32) {
		if p == nil || seen[*p] {
			return
		}
		seen[*p] = true
		out = append(out, *p)
	}
	add(q.Graphics)
	add(q.Present)
	add(q.Transfer)
	add(q.Compute)
	return out
}

// Handle returns the raw VkDevice.
func (d *Device) Handle() vk.Device { return d.handle }

// PhysicalDevice returns the VkPhysicalDevice this logical device was
// created from.
func (d *Device) PhysicalDevice() vk.PhysicalDevice { return d.physical }

// Commands returns the resolved device dispatch table.
func (d *Device) Commands() *vk.Commands { return &d.cmds }

// AllocationCallback returns the allocation-callbacks pointer this
// device was created with (nil unless the caller supplied one).
func (d *Device) AllocationCallback() unsafe.Pointer { return d.alloc }

// GraphicsQueue, PresentQueue, TransferQueue and ComputeQueue return the
// queue handle for each assigned role (zero value if that role was
// never requested/assigned).
func (d *Device) GraphicsQueue() vk.Queue { return d.graphicsQueue }
func (d *Device) PresentQueue() vk.Queue  { return d.presentQueue }
func (d *Device) TransferQueue() vk.Queue { return d.transferQueue }
func (d *Device) ComputeQueue() vk.Queue  { return d.computeQueue }

func (d *Device) GraphicsFamily() (uint32, bool) { return derefOr(d.graphicsFamily) }
func (d *Device) PresentFamily() (uint32, bool)  { return derefOr(d.presentFamily) }
func (d *Device) TransferFamily() (uint32, bool) { return derefOr(d.transferFamily) }
func (d *Device) ComputeFamily() (uint32, bool)  { return derefOr(d.computeFamily) }

func derefOr(p *uint32) (uint32, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// WaitIdle blocks until every queue on this device has drained.
func (d *Device) WaitIdle() error {
	if result := d.cmds.DeviceWaitIdle(d.handle); result != vk.Success {
		return zerr.Classify("device.WaitIdle", result)
	}
	return nil
}

// Destroy tears the logical device down. Safe to call more than once.
func (d *Device) Destroy() {
	if d.handle == vk.NullHandle {
		return
	}
	d.cmds.DestroyDevice(d.handle, d.alloc)
	d.handle = vk.NullHandle
}
