// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

package vk

import "errors"

// Sentinel errors raised by this package itself, before any VkResult
// exists to classify. The zerr package wraps these into the unified
// error taxonomy; vk does not import zerr to avoid a dependency cycle
// (zerr classifies vk.Result values).
var (
	ErrLibraryNotFound = errors.New("vk: vulkan library not found")
	ErrMissingSymbol   = errors.New("vk: required vulkan symbol missing")
)
