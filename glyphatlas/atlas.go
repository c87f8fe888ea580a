// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package glyphatlas maintains a dynamic single-channel glyph texture:
// a shelf-packed R8 image, a cache from glyph key to packed position,
// and a staging-buffer pipeline that batches rasterized bitmaps into
// one buffer-to-image copy pass per frame.
package glyphatlas

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/memory"
	"github.com/ghostkellz/zeus-vk/resource"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("glyphatlas")

// maxAtlasDim caps growth; a 4096² R8 atlas is 16 MiB, far beyond what
// a terminal-grade glyph set needs.
const maxAtlasDim = 4096

// Key identifies one rasterized glyph variant: the face, the glyph
// index within it, and the pixel size it was rasterized at.
type Key struct {
	FontID    uint32
	GlyphID   uint32
	PixelSize uint32
}

func (k Key) hash() uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:], k.FontID)
	binary.LittleEndian.PutUint32(buf[4:], k.GlyphID)
	binary.LittleEndian.PutUint32(buf[8:], k.PixelSize)
	return xxhash.Sum64(buf[:])
}

// Metrics carries the rasterizer-provided dimensions and positioning
// data for one glyph.
type Metrics struct {
	Width    uint32
	Height   uint32
	BearingX int32
	BearingY int32
	Advance  int32
}

// Info is the cached placement of a glyph: where it lives in the atlas,
// its normalized texture coordinates, and the metrics draws need.
type Info struct {
	Rect     Rect
	UVMin    [2]float32
	UVMax    [2]float32
	BearingX int32
	BearingY int32
	Advance  int32
}

// RasterizeFunc fills out with key's bitmap, exactly
// metrics.Width*metrics.Height single-channel bytes, row-major.
type RasterizeFunc func(key Key, metrics Metrics, out []byte) error

// GrowFunc is invoked when the packer runs out of room. It must create
// a replacement image of (at least) the suggested extent and hand it to
// atlas.Resize, or return an error to reject growth.
type GrowFunc func(atlas *Atlas, suggested vk.Extent2D) error

type pendingUpload struct {
	staging *resource.Buffer
	rect    Rect
}

// Options configures a new Atlas. Zero Width/Height default to 512².
type Options struct {
	Width     uint32
	Height    uint32
	Padding   uint32
	Rasterize RasterizeFunc
	Grow      GrowFunc
}

// Atlas is the dynamic glyph texture. Not safe for concurrent use: the
// thread that calls Ensure must be the one draining the upload queues.
type Atlas struct {
	dev   *device.Device
	alloc *memory.Allocator

	image  *resource.Image
	packer *shelfPacker

	padding   uint32
	rasterize RasterizeFunc
	grow      GrowFunc

	glyphs   map[uint64]Info
	pending  []pendingUpload
	inFlight []*resource.Buffer
}

// New creates the atlas image (R8, sampled + transfer-dst, with a
// default view) and seeds the packer with one empty shelf.
func New(dev *device.Device, alloc *memory.Allocator, opts Options) (*Atlas, error) {
	if opts.Rasterize == nil {
		return nil, zerr.New(zerr.CodeInvalidUsage, "glyphatlas.New", nil)
	}
	width := opts.Width
	if width == 0 {
		width = 512
	}
	height := opts.Height
	if height == 0 {
		height = 512
	}

	img, err := createAtlasImage(dev, alloc, width, height)
	if err != nil {
		return nil, err
	}

	return &Atlas{
		dev:       dev,
		alloc:     alloc,
		image:     img,
		packer:    newShelfPacker(width, height),
		padding:   opts.Padding,
		rasterize: opts.Rasterize,
		grow:      opts.Grow,
		glyphs:    make(map[uint64]Info),
	}, nil
}

func createAtlasImage(dev *device.Device, alloc *memory.Allocator, width, height uint32) (*resource.Image, error) {
	return resource.CreateImage(dev, alloc, resource.ImageDescriptor{
		Extent:     vk.Extent3D{Width: width, Height: height, Depth: 1},
		Format:     vk.FormatR8Unorm,
		Usage:      vk.ImageUsageTransferDstBit | vk.ImageUsageSampledBit,
		AspectMask: vk.ImageAspectColorBit,
		Memory:     memory.UsageGPUOnly,
		CreateView: true,
	})
}

// Image returns the backing managed image (for descriptor binding).
func (a *Atlas) Image() *resource.Image { return a.image }

// Extent returns the current atlas dimensions in texels.
func (a *Atlas) Extent() vk.Extent2D {
	e := a.image.Extent()
	return vk.Extent2D{Width: e.Width, Height: e.Height}
}

// Lookup returns the cached placement for key, if it has been ensured
// since the last resize.
func (a *Atlas) Lookup(key Key) (Info, bool) {
	info, ok := a.glyphs[key.hash()]
	return info, ok
}

// Ensure returns key's placement, rasterizing and packing it on first
// use. A miss reserves atlas space, fills a host-visible staging buffer
// via the rasterizer callback, and queues the copy for the next
// FlushUploads.
func (a *Atlas) Ensure(key Key, metrics Metrics) (Info, error) {
	h := key.hash()
	if info, ok := a.glyphs[h]; ok {
		return info, nil
	}
	if metrics.Width == 0 || metrics.Height == 0 {
		return Info{}, zerr.New(zerr.CodeInvalidUsage, "glyphatlas.Ensure", nil)
	}

	rect, ok := a.packer.reserve(metrics.Width, metrics.Height, a.padding)
	if !ok {
		if err := a.requestGrowth(); err != nil {
			return Info{}, err
		}
		if rect, ok = a.packer.reserve(metrics.Width, metrics.Height, a.padding); !ok {
			return Info{}, zerr.New(zerr.CodeShelfPackerFull, "glyphatlas.Ensure", nil)
		}
	}

	pixels := make([]byte, int(metrics.Width)*int(metrics.Height))
	if err := a.rasterize(key, metrics, pixels); err != nil {
		return Info{}, err
	}

	staging, err := resource.CreateBuffer(a.dev, a.alloc, resource.BufferDescriptor{
		Size:   uint64(len(pixels)),
		Usage:  vk.BufferUsageTransferSrcBit,
		Memory: memory.UsageCPUOnly,
	})
	if err != nil {
		return Info{}, err
	}
	if err := staging.Write(pixels, 0); err != nil {
		staging.Destroy()
		return Info{}, err
	}
	a.pending = append(a.pending, pendingUpload{staging: staging, rect: rect})

	info := placementInfo(rect, metrics, a.Extent())
	a.glyphs[h] = info
	return info, nil
}

func placementInfo(rect Rect, metrics Metrics, extent vk.Extent2D) Info {
	w := float32(extent.Width)
	hgt := float32(extent.Height)
	return Info{
		Rect:     rect,
		UVMin:    [2]float32{float32(rect.X) / w, float32(rect.Y) / hgt},
		UVMax:    [2]float32{float32(rect.X+rect.W) / w, float32(rect.Y+rect.H) / hgt},
		BearingX: metrics.BearingX,
		BearingY: metrics.BearingY,
		Advance:  metrics.Advance,
	}
}

func (a *Atlas) requestGrowth() error {
	if a.grow == nil {
		return zerr.New(zerr.CodeShelfPackerFull, "glyphatlas.requestGrowth", nil)
	}
	return a.grow(a, SuggestGrowth(a.Extent()))
}

// SuggestGrowth doubles each axis of the current extent, capped at the
// atlas dimension limit.
func SuggestGrowth(current vk.Extent2D) vk.Extent2D {
	next := vk.Extent2D{Width: current.Width * 2, Height: current.Height * 2}
	if next.Width > maxAtlasDim {
		next.Width = maxAtlasDim
	}
	if next.Height > maxAtlasDim {
		next.Height = maxAtlasDim
	}
	return next
}

// Resize swaps in a replacement atlas image (typically built by the
// growth callback), destroys the old one, and invalidates every cached
// placement: shelves and the glyph map restart empty, and clients
// re-ensure glyphs on demand. Staging buffers still pending against the
// old image are dropped — they were never recorded into a command
// buffer, so they can be destroyed immediately.
func (a *Atlas) Resize(img *resource.Image) {
	for _, p := range a.pending {
		p.staging.Destroy()
	}
	a.pending = a.pending[:0]

	old := a.image
	a.image = img
	if old != nil {
		old.Destroy()
	}

	e := img.Extent()
	a.packer.reset(e.Width, e.Height)
	a.glyphs = make(map[uint64]Info)
	logger.Info("atlas resized", "width", e.Width, "height", e.Height)
}

// shaderReadToTransferDst is the barrier for re-opening an atlas the
// fragment shader has been sampling; the reverse direction is covered
// by the standard transition table.
var shaderReadToTransferDst = resource.TransitionOverride{
	SrcStage:  vk.PipelineStageFragmentShaderBit,
	DstStage:  vk.PipelineStageTransferBit,
	SrcAccess: vk.AccessShaderReadBit,
	DstAccess: vk.AccessTransferWriteBit,
}

// FlushUploads records every queued glyph copy into cmd: one barrier to
// TRANSFER_DST, one CmdCopyBufferToImage per pending rect, one barrier
// back to SHADER_READ_ONLY. Pending buffers move to the in-flight list;
// they stay alive until ReleaseUploads after the frame's fence signals.
// Returns true if any work was recorded.
func (a *Atlas) FlushUploads(cmd vk.CommandBuffer) (bool, error) {
	if len(a.pending) == 0 {
		return false, nil
	}

	var override *resource.TransitionOverride
	if a.image.CurrentLayout() == vk.ImageLayoutShaderReadOnlyOptimal {
		o := shaderReadToTransferDst
		override = &o
	}
	if err := a.image.EnsureLayout(cmd, vk.ImageLayoutTransferDstOptimal, override); err != nil {
		return false, err
	}

	for _, p := range a.pending {
		region := vk.BufferImageCopy{
			BufferRowLength:   p.rect.W,
			BufferImageHeight: p.rect.H,
			ImageSubresource: vk.ImageSubresourceLayers{
				AspectMask: vk.ImageAspectColorBit,
				LayerCount: 1,
			},
			ImageOffset: vk.Offset3D{X: int32(p.rect.X), Y: int32(p.rect.Y)},
			ImageExtent: vk.Extent3D{Width: p.rect.W, Height: p.rect.H, Depth: 1},
		}
		a.dev.Commands().CmdCopyBufferToImage(cmd, p.staging.Handle(), a.image.Handle(),
			vk.ImageLayoutTransferDstOptimal, 1, &region)
		a.inFlight = append(a.inFlight, p.staging)
	}
	a.pending = a.pending[:0]

	if err := a.image.EnsureLayout(cmd, vk.ImageLayoutShaderReadOnlyOptimal, nil); err != nil {
		return false, err
	}
	return true, nil
}

// ReleaseUploads destroys the staging buffers consumed by the previous
// flush. Call only after the fence guarding that frame has signaled.
func (a *Atlas) ReleaseUploads() {
	for _, b := range a.inFlight {
		b.Destroy()
	}
	a.inFlight = a.inFlight[:0]
}

// PendingUploads reports how many glyph copies are queued for the next
// FlushUploads.
func (a *Atlas) PendingUploads() int { return len(a.pending) }

// InFlightUploads reports how many staging buffers await ReleaseUploads.
func (a *Atlas) InFlightUploads() int { return len(a.inFlight) }

// Destroy releases every staging buffer and the atlas image.
func (a *Atlas) Destroy() {
	for _, p := range a.pending {
		p.staging.Destroy()
	}
	a.pending = nil
	a.ReleaseUploads()
	if a.image != nil {
		a.image.Destroy()
		a.image = nil
	}
}
