// Copyright 2025 The Zeus Authors
// SPDX-License-Identifier: MIT

// Package swapchain owns VkSwapchainKHR lifecycle: creation against a
// surface, seamless recreation on resize/out-of-date, the acquire and
// present halves of the frame loop, and the optional
// VK_GOOGLE_display_timing queries a latency-sensitive renderer uses to
// schedule presents against the compositor's refresh cycle.
package swapchain

import (
	"unsafe"

	"github.com/ghostkellz/zeus-vk/config"
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/internal/obs"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

var logger = obs.For("swapchain")

// Status is the three-valued outcome of an acquire or present. Only
// SUBOPTIMAL_KHR and ERROR_OUT_OF_DATE_KHR are re-classified to
// statuses here, at the swapchain boundary; every other non-success
// Result stays an error.
type Status int

const (
	StatusSuccess Status = iota
	StatusSuboptimal
	StatusOutOfDate
)

func (s Status) String() string {
	switch s {
	case StatusSuboptimal:
		return "suboptimal"
	case StatusOutOfDate:
		return "out_of_date"
	default:
		return "success"
	}
}

// Classify maps an acquire/present Result onto a Status. Non-success
// values other than the two swapchain-health codes come back as errors.
func Classify(op string, result vk.Result) (Status, error) {
	switch result {
	case vk.Success:
		return StatusSuccess, nil
	case vk.SuboptimalKHR:
		return StatusSuboptimal, nil
	case vk.ErrorOutOfDateKHR:
		return StatusOutOfDate, nil
	default:
		return StatusSuccess, zerr.Classify(op, result)
	}
}

// Options fully describes a swapchain to create. Zero values for
// MinImageCount, ImageArrayLayers, PreTransform and CompositeAlpha are
// filled with the usual defaults (2, 1, identity, opaque).
type Options struct {
	Surface        vk.SurfaceKHR
	Format         vk.Format
	ColorSpace     vk.ColorSpaceKHR
	Extent         vk.Extent2D
	ImageUsage     vk.ImageUsageFlags
	MinImageCount  uint32
	PresentMode    vk.PresentModeKHR
	PreTransform   vk.SurfaceTransformFlagsKHR
	CompositeAlpha vk.CompositeAlphaFlagsKHR

	// QueueFamilyIndices switches image sharing to CONCURRENT when it
	// holds more than one index; the indices are not checked for
	// distinctness.
	QueueFamilyIndices []uint32
	ImageArrayLayers   uint32
}

func (o Options) withDefaults() Options {
	if o.MinImageCount == 0 {
		o.MinImageCount = 2
	}
	if o.ImageArrayLayers == 0 {
		o.ImageArrayLayers = 1
	}
	if o.PreTransform == 0 {
		o.PreTransform = vk.SurfaceTransformIdentityBitKHR
	}
	if o.CompositeAlpha == 0 {
		o.CompositeAlpha = vk.CompositeAlphaOpaqueBitKHR
	}
	return o
}

// applySafeOverlay forces the conservative configuration the
// ZEUS_SAFE_OVERLAY escape hatch promises: FIFO presentation and
// BGRA8_SRGB with the non-linear sRGB color space.
func (o Options) applySafeOverlay() Options {
	o.PresentMode = vk.PresentModeFifo
	o.Format = vk.FormatB8G8R8A8Srgb
	o.ColorSpace = vk.ColorSpaceSrgbNonlinear
	return o
}

// sharingModeFor picks CONCURRENT when more than one queue family index
// is given, EXCLUSIVE otherwise; duplicate indices are not detected.
func sharingModeFor(indices []uint32) vk.SharingMode {
	if len(indices) > 1 {
		return vk.SharingModeConcurrent
	}
	return vk.SharingModeExclusive
}

// SelectPresentMode picks preferred from available when possible, else
// walks the fallback table: MAILBOX falls back to IMMEDIATE, IMMEDIATE
// to MAILBOX, FIFO_RELAXED to FIFO. FIFO is always available per the
// Vulkan spec, so the final fallback never misses.
func SelectPresentMode(available []vk.PresentModeKHR, preferred vk.PresentModeKHR) vk.PresentModeKHR {
	has := func(m vk.PresentModeKHR) bool {
		for _, a := range available {
			if a == m {
				return true
			}
		}
		return false
	}

	if has(preferred) {
		return preferred
	}
	switch preferred {
	case vk.PresentModeMailbox:
		if has(vk.PresentModeImmediate) {
			return vk.PresentModeImmediate
		}
	case vk.PresentModeImmediate:
		if has(vk.PresentModeMailbox) {
			return vk.PresentModeMailbox
		}
	}
	return vk.PresentModeFifo
}

// Swapchain owns a VkSwapchainKHR and the image handles the driver
// hands back. The images themselves belong to the presentation engine;
// Destroy releases only the swapchain object.
type Swapchain struct {
	dev  *device.Device
	cfg  config.Runtime
	opts Options

	handle vk.SwapchainKHR
	images []vk.Image
}

// Create builds a swapchain per opts. When cfg.SafeOverlay is set, the
// requested format/color-space/present-mode are overridden with the
// safe-overlay configuration before anything touches the driver.
func Create(dev *device.Device, cfg config.Runtime, opts Options) (*Swapchain, error) {
	s := &Swapchain{dev: dev, cfg: cfg}
	if err := s.create(opts, vk.NullHandle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Swapchain) create(opts Options, old vk.SwapchainKHR) error {
	opts = opts.withDefaults()
	if s.cfg.SafeOverlay {
		opts = opts.applySafeOverlay()
	}

	info := vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKHR,
		Surface:          opts.Surface,
		MinImageCount:    opts.MinImageCount,
		ImageFormat:      opts.Format,
		ImageColorSpace:  opts.ColorSpace,
		ImageExtent:      opts.Extent,
		ImageArrayLayers: opts.ImageArrayLayers,
		ImageUsage:       opts.ImageUsage,
		ImageSharingMode: sharingModeFor(opts.QueueFamilyIndices),
		PreTransform:     opts.PreTransform,
		CompositeAlpha:   opts.CompositeAlpha,
		PresentMode:      opts.PresentMode,
		Clipped:          vk.True,
		OldSwapchain:     old,
	}
	if info.ImageSharingMode == vk.SharingModeConcurrent {
		info.QueueFamilyIndexCount = uint32(len(opts.QueueFamilyIndices))
		info.PQueueFamilyIndices = &opts.QueueFamilyIndices[0]
	}

	var handle vk.SwapchainKHR
	result := s.dev.Commands().CreateSwapchainKHR(s.dev.Handle(), &info, s.dev.AllocationCallback(), &handle)
	if result != vk.Success {
		return zerr.Classify("swapchain.Create", result)
	}

	images, err := s.fetchImages(handle)
	if err != nil {
		s.dev.Commands().DestroySwapchainKHR(s.dev.Handle(), handle, s.dev.AllocationCallback())
		return err
	}

	s.handle = handle
	s.images = images
	s.opts = opts
	logger.Info("swapchain created",
		"extent_w", opts.Extent.Width, "extent_h", opts.Extent.Height,
		"format", uint32(opts.Format), "present_mode", uint32(opts.PresentMode),
		"images", len(images))
	return nil
}

func (s *Swapchain) fetchImages(handle vk.SwapchainKHR) ([]vk.Image, error) {
	var count uint32
	result := s.dev.Commands().GetSwapchainImagesKHR(s.dev.Handle(), handle, &count, nil)
	if result != vk.Success {
		return nil, zerr.Classify("swapchain.fetchImages", result)
	}
	if count == 0 {
		return nil, nil
	}
	images := make([]vk.Image, count)
	result = s.dev.Commands().GetSwapchainImagesKHR(s.dev.Handle(), handle, &count, &images[0])
	if result != vk.Success {
		return nil, zerr.Classify("swapchain.fetchImages", result)
	}
	return images[:count], nil
}

// Recreate rebuilds the swapchain with opts, handing the current handle
// as oldSwapchain so the driver can recycle in-flight resources, then
// destroys the old handle. On failure the existing swapchain is left
// untouched and still valid.
func (s *Swapchain) Recreate(opts Options) error {
	old := s.handle
	if err := s.create(opts, old); err != nil {
		return err
	}
	if old != vk.NullHandle {
		s.dev.Commands().DestroySwapchainKHR(s.dev.Handle(), old, s.dev.AllocationCallback())
	}
	return nil
}

func (s *Swapchain) Handle() vk.SwapchainKHR { return s.handle }
func (s *Swapchain) Images() []vk.Image      { return s.images }
func (s *Swapchain) Extent() vk.Extent2D     { return s.opts.Extent }
func (s *Swapchain) Format() vk.Format       { return s.opts.Format }

// HasDisplayTiming reports whether the display-timing entry points
// resolved on this device, i.e. whether timed presents and refresh
// queries are available at all.
func (s *Swapchain) HasDisplayTiming() bool {
	return s.dev.Commands().HasDisplayTiming()
}

// AcquireNextImage asks the presentation engine for the next image,
// signaling semaphore and/or fence when it is ready. The Status return
// is meaningful only when err is nil.
func (s *Swapchain) AcquireNextImage(timeoutNs uint64, semaphore vk.Semaphore, fence vk.Fence) (uint32, Status, error) {
	var index uint32
	result := s.dev.Commands().AcquireNextImageKHR(s.dev.Handle(), s.handle, timeoutNs, semaphore, fence, &index)
	status, err := Classify("swapchain.AcquireNextImage", result)
	if err != nil {
		return 0, StatusSuccess, err
	}
	return index, status, nil
}

// Timing is a per-present display-timing request: tell the driver which
// present this is (ID) and the earliest time, in the device's timing
// domain, it should reach the screen.
type Timing struct {
	PresentID          uint32
	DesiredPresentTime uint64
}

// PresentOptions carries the wait semaphores and the optional timing
// request for one present.
type PresentOptions struct {
	WaitSemaphores []vk.Semaphore
	Timing         *Timing
}

// Present queues image imageIndex for presentation. A Timing request on
// a device without the display-timing extension fails with
// CodeFeatureNotPresent before any driver call is made.
func (s *Swapchain) Present(queue vk.Queue, imageIndex uint32, opts PresentOptions) (Status, error) {
	info := vk.PresentInfoKHR{
		SType:          vk.StructureTypePresentInfoKHR,
		SwapchainCount: 1,
		PSwapchains:    &s.handle,
		PImageIndices:  &imageIndex,
	}
	if len(opts.WaitSemaphores) > 0 {
		info.WaitSemaphoreCount = uint32(len(opts.WaitSemaphores))
		info.PWaitSemaphores = &opts.WaitSemaphores[0]
	}

	var timesInfo vk.PresentTimesInfoGOOGLE
	var times vk.PresentTimeGOOGLE
	if opts.Timing != nil {
		if !s.HasDisplayTiming() {
			return StatusSuccess, zerr.New(zerr.CodeFeatureNotPresent, "swapchain.Present", nil)
		}
		times = vk.PresentTimeGOOGLE{
			PresentID:          opts.Timing.PresentID,
			DesiredPresentTime: opts.Timing.DesiredPresentTime,
		}
		timesInfo = vk.PresentTimesInfoGOOGLE{
			SType:          vk.StructureTypePresentTimesInfoGOOGLE,
			SwapchainCount: 1,
			PTimes:         &times,
		}
		info.PNext = unsafe.Pointer(&timesInfo)
	}

	result := s.dev.Commands().QueuePresentKHR(queue, &info)
	return Classify("swapchain.Present", result)
}

// RefreshCycleDuration queries the display's refresh period in
// nanoseconds. Returns ok=false without touching the driver when the
// display-timing extension is absent.
func (s *Swapchain) RefreshCycleDuration() (uint64, bool, error) {
	if !s.HasDisplayTiming() {
		return 0, false, nil
	}
	var props vk.RefreshCycleDurationGOOGLE
	result := s.dev.Commands().GetRefreshCycleDurationGOOGLE(s.dev.Handle(), s.handle, &props)
	if result != vk.Success {
		return 0, false, zerr.Classify("swapchain.RefreshCycleDuration", result)
	}
	return props.RefreshDuration, true, nil
}

// PastPresentationTimings drains the driver's queue of completed
// present timing records. Returns ok=false when the extension is
// absent; an empty slice with ok=true simply means no presents have
// completed since the last call.
func (s *Swapchain) PastPresentationTimings() ([]vk.PastPresentationTimingGOOGLE, bool, error) {
	if !s.HasDisplayTiming() {
		return nil, false, nil
	}
	var count uint32
	result := s.dev.Commands().GetPastPresentationTimingGOOGLE(s.dev.Handle(), s.handle, &count, nil)
	if result != vk.Success {
		return nil, false, zerr.Classify("swapchain.PastPresentationTimings", result)
	}
	if count == 0 {
		return nil, true, nil
	}
	timings := make([]vk.PastPresentationTimingGOOGLE, count)
	result = s.dev.Commands().GetPastPresentationTimingGOOGLE(s.dev.Handle(), s.handle, &count, &timings[0])
	if result != vk.Success && result != vk.Incomplete {
		return nil, false, zerr.Classify("swapchain.PastPresentationTimings", result)
	}
	return timings[:count], true, nil
}

// Destroy tears the swapchain down. Idempotent.
func (s *Swapchain) Destroy() {
	if s.handle == vk.NullHandle {
		return
	}
	s.dev.Commands().DestroySwapchainKHR(s.dev.Handle(), s.handle, s.dev.AllocationCallback())
	s.handle = vk.NullHandle
	s.images = nil
}
