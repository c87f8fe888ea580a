// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package vk

// This file holds the CallInterface signature templates shared across
// the ~80 Vulkan entry points this module resolves. Vulkan's surface
// is large but its argument shapes are not: most functions reduce to
// one of a couple dozen (handle, handle, ptr, ...) patterns, so templates
// are built once and reused by every command with a matching shape.

import (
	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

var (
	sigResultPtrPtrPtr         types.CallInterface
	sigResultPtr               types.CallInterface
	sigResultPtrPtr            types.CallInterface
	sigResultHandlePtrPtr      types.CallInterface
	sigResultHandlePtrPtrPtr   types.CallInterface
	sigResultHandleU32HandlePtr types.CallInterface
	sigResultHandleHandlePtr   types.CallInterface
	sigResultHandleHandlePtrPtr types.CallInterface
	sigResultHandle            types.CallInterface
	sigResultHandlePtr         types.CallInterface
	sigResultHandleU32PtrHandle types.CallInterface
	sigResultMapMemory         types.CallInterface
	sigResultHandleU32Ptr      types.CallInterface
	sigResultHandle4           types.CallInterface
	sigResultHandleHandleU32   types.CallInterface
	sigResultHandleHandleU32Ptr types.CallInterface
	sigResultHandleU32         types.CallInterface
	sigResultHandleHandle      types.CallInterface
	sigResultWaitForFences     types.CallInterface
	sigResultHandlePtrU64      types.CallInterface
	sigResultAcquireNextImage  types.CallInterface
	sigResultCreatePipelines   types.CallInterface

	sigVoidHandlePtr            types.CallInterface
	sigVoidHandlePtrPtr         types.CallInterface
	sigVoidHandleHandlePtr      types.CallInterface
	sigVoidHandleU32U32Ptr      types.CallInterface
	sigVoidHandleHandle         types.CallInterface
	sigVoidCmdPipelineBarrier   types.CallInterface
	sigVoidCmdCopyBufferToImage types.CallInterface
	sigVoidHandlePtrU32         types.CallInterface
	sigVoidHandle               types.CallInterface
	sigVoidHandleU32Handle      types.CallInterface
	sigVoidCmdBindDescriptorSets types.CallInterface
	sigVoidHandleU32U32PtrPtr   types.CallInterface
	sigVoidHandleHandleU64U32   types.CallInterface
	sigVoidHandleU32x4          types.CallInterface
	sigVoidHandleU32x3I32U32    types.CallInterface
	sigVoidHandleU32x3          types.CallInterface
	sigVoidDeviceUpdateDescriptorSets types.CallInterface
	sigVoidHandleHandleU32Ptr   types.CallInterface
)

// initSignatures prepares every CallInterface template. Safe to call
// more than once; each Library calls it through a sync.Once.
func initSignatures() error {
	ptr := types.PointerTypeDescriptor
	u32 := types.UInt32TypeDescriptor
	u64 := types.UInt64TypeDescriptor
	i32 := types.SInt32TypeDescriptor
	voidRet := types.VoidTypeDescriptor
	resultRet := types.SInt32TypeDescriptor

	type sig struct {
		dst  *types.CallInterface
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}

	sigs := []sig{
		{&sigResultPtrPtrPtr, resultRet, []*types.TypeDescriptor{ptr, ptr, ptr}},
		{&sigResultPtr, resultRet, []*types.TypeDescriptor{ptr}},
		{&sigResultPtrPtr, resultRet, []*types.TypeDescriptor{ptr, ptr}},
		{&sigResultHandlePtrPtr, resultRet, []*types.TypeDescriptor{u64, ptr, ptr}},
		{&sigResultHandlePtrPtrPtr, resultRet, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&sigResultHandleU32HandlePtr, resultRet, []*types.TypeDescriptor{u64, u32, u64, ptr}},
		{&sigResultHandleHandlePtr, resultRet, []*types.TypeDescriptor{u64, u64, ptr}},
		{&sigResultHandleHandlePtrPtr, resultRet, []*types.TypeDescriptor{u64, u64, ptr, ptr}},
		{&sigResultHandle, resultRet, []*types.TypeDescriptor{u64}},
		{&sigResultHandlePtr, resultRet, []*types.TypeDescriptor{u64, ptr}},
		{&sigResultHandleU32PtrHandle, resultRet, []*types.TypeDescriptor{u64, u32, ptr, u64}},
		{&sigResultMapMemory, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64, u32, ptr}},
		{&sigResultHandleU32Ptr, resultRet, []*types.TypeDescriptor{u64, u32, ptr}},
		{&sigResultHandle4, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64}},
		{&sigResultHandleHandleU32, resultRet, []*types.TypeDescriptor{u64, u64, u32}},
		{&sigResultHandleHandleU32Ptr, resultRet, []*types.TypeDescriptor{u64, u64, u32, ptr}},
		{&sigResultHandleU32, resultRet, []*types.TypeDescriptor{u64, u32}},
		{&sigResultHandleHandle, resultRet, []*types.TypeDescriptor{u64, u64}},
		{&sigResultWaitForFences, resultRet, []*types.TypeDescriptor{u64, u32, ptr, u32, u64}},
		{&sigResultHandlePtrU64, resultRet, []*types.TypeDescriptor{u64, ptr, u64}},
		{&sigResultAcquireNextImage, resultRet, []*types.TypeDescriptor{u64, u64, u64, u64, u64, ptr}},
		{&sigResultCreatePipelines, resultRet, []*types.TypeDescriptor{u64, u64, u32, ptr, ptr, ptr}},

		{&sigVoidHandlePtr, voidRet, []*types.TypeDescriptor{u64, ptr}},
		{&sigVoidHandlePtrPtr, voidRet, []*types.TypeDescriptor{u64, ptr, ptr}},
		{&sigVoidHandleHandlePtr, voidRet, []*types.TypeDescriptor{u64, u64, ptr}},
		{&sigVoidHandleU32U32Ptr, voidRet, []*types.TypeDescriptor{u64, u32, u32, ptr}},
		{&sigVoidHandleHandle, voidRet, []*types.TypeDescriptor{u64, u64}},
		{&sigVoidCmdPipelineBarrier, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, u32, ptr, u32, ptr, u32, ptr}},
		{&sigVoidCmdCopyBufferToImage, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32, u32, ptr}},
		{&sigVoidHandlePtrU32, voidRet, []*types.TypeDescriptor{u64, ptr, u32}},
		{&sigVoidHandle, voidRet, []*types.TypeDescriptor{u64}},
		{&sigVoidHandleU32Handle, voidRet, []*types.TypeDescriptor{u64, u32, u64}},
		{&sigVoidCmdBindDescriptorSets, voidRet, []*types.TypeDescriptor{u64, u32, u64, u32, u32, ptr, u32, ptr}},
		{&sigVoidHandleU32U32PtrPtr, voidRet, []*types.TypeDescriptor{u64, u32, u32, ptr, ptr}},
		{&sigVoidHandleHandleU64U32, voidRet, []*types.TypeDescriptor{u64, u64, u64, u32}},
		{&sigVoidHandleU32x4, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, u32}},
		{&sigVoidHandleU32x3I32U32, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32, i32, u32}},
		{&sigVoidHandleU32x3, voidRet, []*types.TypeDescriptor{u64, u32, u32, u32}},
		{&sigVoidDeviceUpdateDescriptorSets, voidRet, []*types.TypeDescriptor{u64, u32, ptr, u32, ptr}},
		{&sigVoidHandleHandleU32Ptr, voidRet, []*types.TypeDescriptor{u64, u64, u32, ptr}},
	}

	for _, s := range sigs {
		if err := ffi.PrepareCallInterface(s.dst, types.DefaultCall, s.ret, s.args); err != nil {
			return err
		}
	}
	return nil
}
