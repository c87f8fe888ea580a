// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package pipeline builds graphics pipelines and persists a
// vk.PipelineCache to disk across runs.
package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("pipeline")

// maxCacheFileSize caps how much we'll read back from disk; a
// corrupted or foreign file growing unbounded shouldn't blow up
// memory on load.
const maxCacheFileSize = 16 << 20

// pipelineCacheHeaderSize is VkPipelineCacheHeaderVersionOne's fixed
// prefix: length(4) + version(4) + vendorID(4) + deviceID(4) +
// pipelineCacheUUID(16).
const pipelineCacheHeaderSize = 32

// Cache wraps a vk.PipelineCache with disk persistence, validating the
// driver UUID before handing bytes back to vkCreatePipelineCache —
// loading a cache built by a different driver is legal in Vulkan (the
// driver just discards it) but we want to know about it.
type Cache struct {
	dev    *device.Device
	path   string
	handle vk.PipelineCache
	dirty  bool
}

// Load opens (or creates) a pipeline cache at path, seeding it with
// prior contents if the file exists and its header's vendor/device ID
// and pipelineCacheUUID match the active physical device.
func Load(dev *device.Device, path string, deviceVendorID, deviceID uint32, pipelineCacheUUID [16]byte) (*Cache, error) {
	var initial []byte
	if data, err := os.ReadFile(path); err == nil {
		if len(data) > maxCacheFileSize {
			data = data[:maxCacheFileSize]
		}
		if validHeader(data, deviceVendorID, deviceID, pipelineCacheUUID) {
			initial = data
		} else {
			logger.Warn("discarding pipeline cache with mismatched header", "path", path)
		}
	}

	info := vk.PipelineCacheCreateInfo{SType: vk.StructureTypePipelineCacheCreateInfo}
	if len(initial) > 0 {
		info.InitialDataSize = uintptr(len(initial))
		info.PInitialData = unsafe.Pointer(&initial[0])
	}

	var handle vk.PipelineCache
	result := dev.Commands().CreatePipelineCache(dev.Handle(), &info, dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return nil, zerr.Classify("pipeline.Load", result)
	}

	// Starting empty means the first Persist has something to say even
	// if no pipeline is ever marked against the cache explicitly.
	return &Cache{dev: dev, path: path, handle: handle, dirty: len(initial) == 0}, nil
}

func validHeader(data []byte, vendorID, deviceID uint32, uuid [16]byte) bool {
	if len(data) < pipelineCacheHeaderSize {
		return false
	}
	gotVendor := le32(data[8:12])
	gotDevice := le32(data[12:16])
	if gotVendor != vendorID || gotDevice != deviceID {
		return false
	}
	return bytes.Equal(data[16:32], uuid[:])
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (c *Cache) Handle() vk.PipelineCache { return c.handle }

// MarkDirty records that a pipeline was created against this cache
// since it was last persisted.
func (c *Cache) MarkDirty() { c.dirty = true }

// Persist writes the cache's current contents to disk via a
// temp-file-then-rename, skipping the write entirely if nothing
// changed since the last Persist.
func (c *Cache) Persist() error {
	if !c.dirty {
		return nil
	}

	var size uintptr
	if result := c.dev.Commands().GetPipelineCacheData(c.dev.Handle(), c.handle, &size, nil); result != vk.Success {
		return zerr.Classify("pipeline.Persist.size", result)
	}
	if size == 0 {
		return nil
	}

	data := make([]byte, size)
	if result := c.dev.Commands().GetPipelineCacheData(c.dev.Handle(), c.handle, &size, unsafe.Pointer(&data[0])); result != vk.Success {
		return zerr.Classify("pipeline.Persist.data", result)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.New(zerr.CodeCacheCorrupt, "pipeline.Persist.mkdir", err)
	}

	tmp, err := os.CreateTemp(dir, ".pipeline-cache-*")
	if err != nil {
		return zerr.New(zerr.CodeCacheCorrupt, "pipeline.Persist.tempfile", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data[:size]); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return zerr.New(zerr.CodeCacheCorrupt, "pipeline.Persist.write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return zerr.New(zerr.CodeCacheCorrupt, "pipeline.Persist.close", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return zerr.New(zerr.CodeCacheCorrupt, "pipeline.Persist.rename", err)
	}

	c.dirty = false
	return nil
}

// Destroy destroys the underlying vk.PipelineCache. Callers that want
// the cache persisted must call Persist first.
func (c *Cache) Destroy() {
	c.dev.Commands().DestroyPipelineCache(c.dev.Handle(), c.handle, c.dev.AllocationCallback())
}
