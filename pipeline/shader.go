// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"unsafe"

	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

// CreateShaderModule wraps spirv (a SPIR-V binary, word-aligned per
// the Vulkan spec) in a vk.ShaderModule.
func CreateShaderModule(dev *device.Device, spirv []byte) (vk.ShaderModule, error) {
	if len(spirv) == 0 || len(spirv)%4 != 0 {
		return 0, zerr.New(zerr.CodeInvalidUsage, "pipeline.CreateShaderModule", nil)
	}
	info := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(spirv)),
		PCode:    unsafe.Pointer(&spirv[0]),
	}
	var handle vk.ShaderModule
	result := dev.Commands().CreateShaderModule(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return 0, zerr.Classify("pipeline.CreateShaderModule", result)
	}
	return handle, nil
}

func DestroyShaderModule(dev *device.Device, module vk.ShaderModule) {
	dev.Commands().DestroyShaderModule(dev.Handle(), module, dev.AllocationCallback())
}
