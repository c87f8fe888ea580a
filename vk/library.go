// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package vk

// # goffi Calling Convention
//
// CRITICAL: goffi expects args[] to contain pointers to WHERE argument
// values are stored, NOT the values themselves. This applies to every
// argument type, including pointer-typed ones.
//
// For scalar types (uint32, uint64, ...):
//
//	var value uint64 = 42
//	args[i] = unsafe.Pointer(&value)  // pointer to value storage
//
// For pointer types (const char*, void*, ...):
//
//	ptr := unsafe.Pointer(&data[0])   // this IS the pointer value
//	args[i] = unsafe.Pointer(&ptr)    // pointer TO the pointer
//
// Getting this wrong passes the pointee's address where goffi expects
// a pointer-to-pointer, and the driver reads garbage as an address.

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// DefaultSearchPaths returns the platform-appropriate candidate library
// names, in the order this module's own Linux/Wayland target cares
// about. The Windows/macOS names are listed for documentation parity
// with the wider Vulkan ecosystem but this module never exercises them.
func DefaultSearchPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"vulkan-1.dll"}
	case "darwin":
		return []string{"libvulkan.dylib", "libMoltenVK.dylib"}
	default:
		return []string{"libvulkan.so.1", "libvulkan.so"}
	}
}

// Library owns the dynamic Vulkan loader handle and the two root
// function pointers every dispatch table is built from. Closing a
// Library invalidates every dispatch table resolved through it.
type Library struct {
	handle unsafe.Pointer

	getInstanceProcAddr unsafe.Pointer
	getDeviceProcAddr   unsafe.Pointer

	cifGetInstanceProcAddr types.CallInterface
	cifGetDeviceProcAddr   types.CallInterface

	sigOnce sync.Once
	sigErr  error
}

// OpenLibrary tries each candidate path in order and returns a Library
// backed by the first one that loads successfully.
func OpenLibrary(searchPaths ...string) (*Library, error) {
	if len(searchPaths) == 0 {
		searchPaths = DefaultSearchPaths()
	}

	var lastErr error
	for _, path := range searchPaths {
		handle, err := ffi.LoadLibrary(path)
		if err != nil {
			lastErr = err
			continue
		}

		lib := &Library{handle: handle}
		if err := lib.resolveRootProcs(); err != nil {
			_ = ffi.FreeLibrary(handle)
			return nil, err
		}
		if err := lib.prepareSignatures(); err != nil {
			_ = ffi.FreeLibrary(handle)
			return nil, err
		}
		return lib, nil
	}

	return nil, fmt.Errorf("%w: tried %v: %v", ErrLibraryNotFound, searchPaths, lastErr)
}

func (l *Library) resolveRootProcs() error {
	var err error
	l.getInstanceProcAddr, err = ffi.GetSymbol(l.handle, "vkGetInstanceProcAddr")
	if err != nil {
		return fmt.Errorf("%w: vkGetInstanceProcAddr: %v", ErrMissingSymbol, err)
	}

	err = ffi.PrepareCallInterface(&l.cifGetInstanceProcAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{types.UInt64TypeDescriptor, types.PointerTypeDescriptor})
	if err != nil {
		return fmt.Errorf("prepare GetInstanceProcAddr interface: %w", err)
	}

	err = ffi.PrepareCallInterface(&l.cifGetDeviceProcAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{types.UInt64TypeDescriptor, types.PointerTypeDescriptor})
	if err != nil {
		return fmt.Errorf("prepare GetDeviceProcAddr interface: %w", err)
	}

	return nil
}

func (l *Library) prepareSignatures() error {
	l.sigOnce.Do(func() {
		l.sigErr = initSignatures()
	})
	return l.sigErr
}

// GetInstanceProcAddr resolves a function pointer valid for the given
// instance (or for no instance at all, when instance == 0, for the
// handful of pre-instance global entry points).
func (l *Library) GetInstanceProcAddr(instance Instance, name string) unsafe.Pointer {
	cname := append([]byte(name), 0)
	namePtr := unsafe.Pointer(&cname[0])

	var result unsafe.Pointer
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&namePtr),
	}
	_ = ffi.CallFunction(&l.cifGetInstanceProcAddr, l.getInstanceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

// SetDeviceProcAddr resolves vkGetDeviceProcAddr through the instance.
// Some drivers (notably Intel's) return NULL for
// vkGetInstanceProcAddr(NULL, "vkGetDeviceProcAddr"), so this must be
// called with a real instance after vkCreateInstance succeeds.
func (l *Library) SetDeviceProcAddr(instance Instance) {
	if l.getDeviceProcAddr == nil {
		l.getDeviceProcAddr = l.GetInstanceProcAddr(instance, "vkGetDeviceProcAddr")
	}
}

// GetDeviceProcAddr resolves a function pointer through the fastest
// device-specific dispatch path available.
func (l *Library) GetDeviceProcAddr(device Device, name string) unsafe.Pointer {
	if l.getDeviceProcAddr == nil {
		return nil
	}

	cname := append([]byte(name), 0)
	namePtr := unsafe.Pointer(&cname[0])

	var result unsafe.Pointer
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&namePtr),
	}
	_ = ffi.CallFunction(&l.cifGetDeviceProcAddr, l.getDeviceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

// Close releases the underlying dynamic library. Every dispatch table
// resolved through this Library becomes invalid.
func (l *Library) Close() error {
	if l.handle == nil {
		return nil
	}
	err := ffi.FreeLibrary(l.handle)
	l.handle = nil
	l.getInstanceProcAddr = nil
	l.getDeviceProcAddr = nil
	return err
}
