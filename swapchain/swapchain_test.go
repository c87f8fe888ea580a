package swapchain

import (
	"errors"
	"testing"

	"github.com/ghostkellz/zeus-vk/config"
	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/vk"
	"github.com/ghostkellz/zeus-vk/zerr"
)

func TestClassifyStatusMapping(t *testing.T) {
	cases := []struct {
		result vk.Result
		status Status
		isErr  bool
	}{
		{vk.Success, StatusSuccess, false},
		{vk.SuboptimalKHR, StatusSuboptimal, false},
		{vk.ErrorOutOfDateKHR, StatusOutOfDate, false},
		{vk.ErrorSurfaceLostKHR, 0, true},
		{vk.ErrorDeviceLost, 0, true},
		{vk.ErrorOutOfHostMemory, 0, true},
	}
	for _, c := range cases {
		status, err := Classify("test", c.result)
		if c.isErr {
			if err == nil {
				t.Errorf("Classify(%v): expected error, got status %v", c.result, status)
			}
			continue
		}
		if err != nil {
			t.Errorf("Classify(%v): unexpected error %v", c.result, err)
		}
		if status != c.status {
			t.Errorf("Classify(%v) = %v, want %v", c.result, status, c.status)
		}
	}
}

func TestSelectPresentModeExactMatch(t *testing.T) {
	available := []vk.PresentModeKHR{vk.PresentModeFifo, vk.PresentModeMailbox}
	if got := SelectPresentMode(available, vk.PresentModeMailbox); got != vk.PresentModeMailbox {
		t.Fatalf("expected exact match mailbox, got %v", got)
	}
}

func TestSelectPresentModeFallbacks(t *testing.T) {
	cases := []struct {
		name      string
		available []vk.PresentModeKHR
		preferred vk.PresentModeKHR
		want      vk.PresentModeKHR
	}{
		{"mailbox falls back to immediate", []vk.PresentModeKHR{vk.PresentModeFifo, vk.PresentModeImmediate}, vk.PresentModeMailbox, vk.PresentModeImmediate},
		{"mailbox falls back to fifo", []vk.PresentModeKHR{vk.PresentModeFifo}, vk.PresentModeMailbox, vk.PresentModeFifo},
		{"immediate falls back to mailbox", []vk.PresentModeKHR{vk.PresentModeFifo, vk.PresentModeMailbox}, vk.PresentModeImmediate, vk.PresentModeMailbox},
		{"immediate falls back to fifo", []vk.PresentModeKHR{vk.PresentModeFifo}, vk.PresentModeImmediate, vk.PresentModeFifo},
		{"fifo relaxed falls back to fifo", []vk.PresentModeKHR{vk.PresentModeFifo, vk.PresentModeMailbox}, vk.PresentModeFifoRelaxed, vk.PresentModeFifo},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SelectPresentMode(c.available, c.preferred); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestSelectPresentModeResultIsAvailable(t *testing.T) {
	available := []vk.PresentModeKHR{vk.PresentModeFifo, vk.PresentModeImmediate}
	for _, preferred := range []vk.PresentModeKHR{
		vk.PresentModeImmediate, vk.PresentModeMailbox, vk.PresentModeFifo, vk.PresentModeFifoRelaxed,
	} {
		got := SelectPresentMode(available, preferred)
		found := false
		for _, a := range available {
			if a == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("SelectPresentMode(%v) = %v, not in available set", preferred, got)
		}
	}
}

func TestSharingModeFor(t *testing.T) {
	if sharingModeFor(nil) != vk.SharingModeExclusive {
		t.Fatal("nil indices must be exclusive")
	}
	if sharingModeFor([]uint32{0}) != vk.SharingModeExclusive {
		t.Fatal("single family must be exclusive")
	}
	if sharingModeFor([]uint32{0, 2}) != vk.SharingModeConcurrent {
		t.Fatal("two families must be concurrent")
	}
}

func TestOptionsSafeOverlayForcesConservativeConfig(t *testing.T) {
	opts := Options{
		Format:      vk.FormatR8G8B8A8Unorm,
		PresentMode: vk.PresentModeMailbox,
	}.applySafeOverlay()

	if opts.PresentMode != vk.PresentModeFifo {
		t.Errorf("present mode = %v, want FIFO", opts.PresentMode)
	}
	if opts.Format != vk.FormatB8G8R8A8Srgb {
		t.Errorf("format = %v, want B8G8R8A8_SRGB", opts.Format)
	}
	if opts.ColorSpace != vk.ColorSpaceSrgbNonlinear {
		t.Errorf("color space = %v, want SRGB_NONLINEAR", opts.ColorSpace)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.MinImageCount != 2 {
		t.Errorf("MinImageCount = %d, want 2", opts.MinImageCount)
	}
	if opts.ImageArrayLayers != 1 {
		t.Errorf("ImageArrayLayers = %d, want 1", opts.ImageArrayLayers)
	}
	if opts.PreTransform != vk.SurfaceTransformIdentityBitKHR {
		t.Errorf("PreTransform = %v, want identity", opts.PreTransform)
	}
	if opts.CompositeAlpha != vk.CompositeAlphaOpaqueBitKHR {
		t.Errorf("CompositeAlpha = %v, want opaque", opts.CompositeAlpha)
	}
}

// A zero-value device has no display-timing entry points resolved, so a
// timed present must fail before any driver call happens.
func TestPresentWithTimingFailsWithoutExtension(t *testing.T) {
	s := &Swapchain{dev: &device.Device{}, cfg: config.Runtime{}}

	_, err := s.Present(0, 0, PresentOptions{Timing: &Timing{PresentID: 1, DesiredPresentTime: 55}})
	if err == nil {
		t.Fatal("expected error when timing is requested without the extension")
	}
	var ze *zerr.Error
	if !errors.As(err, &ze) || ze.Code != zerr.CodeFeatureNotPresent {
		t.Fatalf("expected CodeFeatureNotPresent, got %v", err)
	}
}

// Timing queries on a device without the extension must report absence
// without erroring and without calling into the driver.
func TestTimingQueriesWithoutExtensionReturnNotPresent(t *testing.T) {
	s := &Swapchain{dev: &device.Device{}}

	if _, ok, err := s.RefreshCycleDuration(); ok || err != nil {
		t.Fatalf("RefreshCycleDuration: ok=%v err=%v, want false, nil", ok, err)
	}
	if _, ok, err := s.PastPresentationTimings(); ok || err != nil {
		t.Fatalf("PastPresentationTimings: ok=%v err=%v, want false, nil", ok, err)
	}
}
