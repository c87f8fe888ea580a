// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package gpusync wraps vk.Fence and vk.Semaphore, named to avoid
// colliding with the standard library's sync package.
package gpusync

import (
	"unsafe"

	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

// Fence wraps a vk.Fence, optionally starting signaled.
type Fence struct {
	dev    *device.Device
	handle vk.Fence
}

// NewFence creates a fence, signaled if signaled is true.
func NewFence(dev *device.Device, signaled bool) (*Fence, error) {
	var flags uint32
	if signaled {
		flags = vk.FenceCreateSignaledBit
	}
	info := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo, Flags: flags}
	var handle vk.Fence
	result := dev.Commands().CreateFence(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return nil, zerr.Classify("gpusync.NewFence", result)
	}
	return &Fence{dev: dev, handle: handle}, nil
}

func (f *Fence) Handle() vk.Fence { return f.handle }

// Wait blocks until the fence is signaled or timeoutNs elapses. A
// timeout is not an error: it returns signaled == false with a nil
// error so frame loops can poll without special-casing.
func (f *Fence) Wait(timeoutNs uint64) (bool, error) {
	result := f.dev.Commands().WaitForFences(f.dev.Handle(), 1, &f.handle, vk.True, timeoutNs)
	switch result {
	case vk.Success:
		return true, nil
	case vk.Timeout:
		return false, nil
	default:
		return false, zerr.Classify("gpusync.Fence.Wait", result)
	}
}

// Reset clears the fence back to unsignaled.
func (f *Fence) Reset() error {
	if result := f.dev.Commands().ResetFences(f.dev.Handle(), 1, &f.handle); result != vk.Success {
		return zerr.Classify("gpusync.Fence.Reset", result)
	}
	return nil
}

// Signaled reports whether the fence is currently signaled, without
// blocking.
func (f *Fence) Signaled() (bool, error) {
	result := f.dev.Commands().GetFenceStatus(f.dev.Handle(), f.handle)
	switch result {
	case vk.Success:
		return true, nil
	case vk.NotReady:
		return false, nil
	default:
		return false, zerr.Classify("gpusync.Fence.Signaled", result)
	}
}

func (f *Fence) Destroy() {
	f.dev.Commands().DestroyFence(f.dev.Handle(), f.handle, f.dev.AllocationCallback())
}

// Semaphore wraps a vk.Semaphore, either binary (for queue
// synchronization only) or timeline (host-waitable, monotonic).
type Semaphore struct {
	dev        *device.Device
	handle     vk.Semaphore
	isTimeline bool
}

// NewBinarySemaphore creates a classic binary vk.Semaphore.
func NewBinarySemaphore(dev *device.Device) (*Semaphore, error) {
	info := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	var handle vk.Semaphore
	result := dev.Commands().CreateSemaphore(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return nil, zerr.Classify("gpusync.NewBinarySemaphore", result)
	}
	return &Semaphore{dev: dev, handle: handle}, nil
}

// NewTimelineSemaphore creates a timeline vk.Semaphore starting at
// initialValue. Requires the device to expose timeline semaphores.
func NewTimelineSemaphore(dev *device.Device, initialValue uint64) (*Semaphore, error) {
	if !dev.Commands().HasTimelineSemaphore() {
		return nil, zerr.New(zerr.CodeFeatureNotPresent, "gpusync.NewTimelineSemaphore", nil)
	}
	typeInfo := vk.SemaphoreTypeCreateInfo{
		SType:         vk.StructureTypeSemaphoreTypeCreateInfo,
		SemaphoreType: vk.SemaphoreTypeTimeline,
		InitialValue:  initialValue,
	}
	info := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
		PNext: unsafe.Pointer(&typeInfo),
	}
	var handle vk.Semaphore
	result := dev.Commands().CreateSemaphore(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return nil, zerr.Classify("gpusync.NewTimelineSemaphore", result)
	}
	return &Semaphore{dev: dev, handle: handle, isTimeline: true}, nil
}

func (s *Semaphore) Handle() vk.Semaphore { return s.handle }
func (s *Semaphore) IsTimeline() bool     { return s.isTimeline }

// Value returns the timeline semaphore's current counter value.
// Fails with CodeFeatureNotPresent on a binary semaphore.
func (s *Semaphore) Value() (uint64, error) {
	if !s.isTimeline {
		return 0, zerr.New(zerr.CodeFeatureNotPresent, "gpusync.Semaphore.Value", nil)
	}
	var value uint64
	result := s.dev.Commands().GetSemaphoreCounterValue(s.dev.Handle(), s.handle, &value)
	if result != vk.Success {
		return 0, zerr.Classify("gpusync.Semaphore.Value", result)
	}
	return value, nil
}

// Signal signals a timeline semaphore from the host. Fails with
// CodeFeatureNotPresent on a binary semaphore.
func (s *Semaphore) Signal(value uint64) error {
	if !s.isTimeline {
		return zerr.New(zerr.CodeFeatureNotPresent, "gpusync.Semaphore.Signal", nil)
	}
	info := vk.SemaphoreSignalInfo{SType: vk.StructureTypeSemaphoreSignalInfo, Semaphore: s.handle, Value: value}
	if result := s.dev.Commands().SignalSemaphore(s.dev.Handle(), &info); result != vk.Success {
		return zerr.Classify("gpusync.Semaphore.Signal", result)
	}
	return nil
}

// Wait blocks on the host until the timeline semaphore reaches value or
// timeoutNs elapses; like Fence.Wait, a timeout returns false without
// erroring. Fails with CodeFeatureNotPresent on a binary semaphore.
func (s *Semaphore) Wait(value uint64, timeoutNs uint64) (bool, error) {
	if !s.isTimeline {
		return false, zerr.New(zerr.CodeFeatureNotPresent, "gpusync.Semaphore.Wait", nil)
	}
	info := vk.SemaphoreWaitInfo{
		SType:          vk.StructureTypeSemaphoreWaitInfo,
		SemaphoreCount: 1,
		PSemaphores:    &s.handle,
		PValues:        &value,
	}
	result := s.dev.Commands().WaitSemaphores(s.dev.Handle(), &info, timeoutNs)
	switch result {
	case vk.Success:
		return true, nil
	case vk.Timeout:
		return false, nil
	default:
		return false, zerr.Classify("gpusync.Semaphore.Wait", result)
	}
}

func (s *Semaphore) Destroy() {
	s.dev.Commands().DestroySemaphore(s.dev.Handle(), s.handle, s.dev.AllocationCallback())
}
