// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package zerr defines the unified error taxonomy every other package in
// this module returns through: a small set of infrastructure failures
// (host-side setup: loader, surface, allocator exhaustion) and a larger
// set of driver failures (anything the Vulkan driver itself reported).
// Callers that need to react to a specific condition use errors.Is
// against the exported sentinel Codes rather than string-matching
// messages.
package zerr

import (
	"errors"
	"fmt"

	"github.com/ghostkellz/zeus-vk/vk"
)

// Code classifies an Error. Infrastructure codes originate in this
// module's own bookkeeping; Driver codes are a direct translation of a
// non-success vk.Result.
type Code int

const (
	_ Code = iota

	// Infrastructure
	CodeLibraryNotFound
	CodeMissingSymbol
	CodeNoSuitableDevice
	CodeSurfaceLost
	CodePoolExhausted
	CodeAllocatorOutOfSpace
	CodeInvalidUsage
	CodeFeatureNotPresent
	CodeCacheCorrupt
	CodeShelfPackerFull

	// Driver (mirrors vk.Result's error codes 1:1)
	CodeOutOfHostMemory
	CodeOutOfDeviceMemory
	CodeInitializationFailed
	CodeDeviceLost
	CodeMemoryMapFailed
	CodeLayerNotPresent
	CodeExtensionNotPresent
	CodeDriverFeatureNotPresent
	CodeIncompatibleDriver
	CodeTooManyObjects
	CodeFormatNotSupported
	CodeFragmentedPool
	CodeUnknown
	CodeOutOfDateKHR
	CodeSurfaceLostKHR
	CodeSuboptimalKHR
	CodeValidationFailed
)

var codeNames = map[Code]string{
	CodeLibraryNotFound:         "library_not_found",
	CodeMissingSymbol:           "missing_symbol",
	CodeNoSuitableDevice:        "no_suitable_device",
	CodeSurfaceLost:             "surface_lost",
	CodePoolExhausted:           "pool_exhausted",
	CodeAllocatorOutOfSpace:     "allocator_out_of_space",
	CodeInvalidUsage:            "invalid_usage",
	CodeFeatureNotPresent:       "feature_not_present",
	CodeCacheCorrupt:            "cache_corrupt",
	CodeShelfPackerFull:         "shelf_packer_full",
	CodeOutOfHostMemory:         "out_of_host_memory",
	CodeOutOfDeviceMemory:       "out_of_device_memory",
	CodeInitializationFailed:    "initialization_failed",
	CodeDeviceLost:              "device_lost",
	CodeMemoryMapFailed:         "memory_map_failed",
	CodeLayerNotPresent:         "layer_not_present",
	CodeExtensionNotPresent:     "extension_not_present",
	CodeDriverFeatureNotPresent: "driver_feature_not_present",
	CodeIncompatibleDriver:      "incompatible_driver",
	CodeTooManyObjects:          "too_many_objects",
	CodeFormatNotSupported:      "format_not_supported",
	CodeFragmentedPool:          "fragmented_pool",
	CodeUnknown:                 "unknown",
	CodeOutOfDateKHR:            "out_of_date",
	CodeSurfaceLostKHR:          "surface_lost_khr",
	CodeSuboptimalKHR:           "suboptimal",
	CodeValidationFailed:        "validation_failed",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "unclassified"
}

// Error is the concrete type every zerr-returning function produces.
// Op names the failing operation (e.g. "instance.Create",
// "memory.Allocate") so a caller catching only the error still gets a
// stack-free breadcrumb of where it came from.
type Error struct {
	Code   Code
	Op     string
	Result vk.Result // zero when the failure has no associated VkResult
	cause  error
}

func (e *Error) Error() string {
	if e.Result != vk.Success {
		return fmt.Sprintf("%s: %s (%s)", e.Op, e.Code, e.Result)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.cause }

// Is lets errors.Is(err, zerr.CodeDeviceLost) work directly against a
// bare Code, without callers constructing an *Error to compare against.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// New builds an infrastructure Error with no underlying vk.Result.
func New(code Code, op string, cause error) *Error {
	return &Error{Code: code, Op: op, cause: cause}
}

// Classify translates a non-success vk.Result into a driver Error.
// Callers pass vk.Success here only by mistake; Classify returns nil in
// that case so `if err := zerr.Classify(...); err != nil` reads naturally
// at call sites that check every Result defensively.
func Classify(op string, result vk.Result) *Error {
	if result == vk.Success {
		return nil
	}
	code, ok := driverCodes[result]
	if !ok {
		if result < 0 {
			code = CodeUnknown
		} else {
			return nil
		}
	}
	return &Error{Code: code, Op: op, Result: result}
}

var driverCodes = map[vk.Result]Code{
	vk.Success:                   0,
	vk.ErrorOutOfHostMemory:      CodeOutOfHostMemory,
	vk.ErrorOutOfDeviceMemory:    CodeOutOfDeviceMemory,
	vk.ErrorInitializationFailed: CodeInitializationFailed,
	vk.ErrorDeviceLost:           CodeDeviceLost,
	vk.ErrorMemoryMapFailed:      CodeMemoryMapFailed,
	vk.ErrorLayerNotPresent:      CodeLayerNotPresent,
	vk.ErrorExtensionNotPresent:  CodeExtensionNotPresent,
	vk.ErrorFeatureNotPresent:    CodeDriverFeatureNotPresent,
	vk.ErrorIncompatibleDriver:   CodeIncompatibleDriver,
	vk.ErrorTooManyObjects:       CodeTooManyObjects,
	vk.ErrorFormatNotSupported:   CodeFormatNotSupported,
	vk.ErrorFragmentedPool:       CodeFragmentedPool,
	vk.ErrorUnknown:              CodeUnknown,
	vk.ErrorOutOfDateKHR:         CodeOutOfDateKHR,
	vk.ErrorSurfaceLostKHR:       CodeSurfaceLostKHR,
	vk.SuboptimalKHR:             CodeSuboptimalKHR,
}

// IsOutOfDate reports whether a swapchain operation's Result means the
// caller must recreate the swapchain before presenting again. Suboptimal
// is deliberately excluded: it is a recreate-when-convenient hint, not a
// hard failure, and swapchain.Present returns it as a distinct status
// rather than through this error path.
func IsOutOfDate(result vk.Result) bool {
	return result == vk.ErrorOutOfDateKHR || result == vk.ErrorSurfaceLostKHR
}
