package gpusync

import (
	"errors"
	"testing"

	"github.com/ghostkellz/zeus-vk/device"
	"github.com/ghostkellz/zeus-vk/zerr"
)

func wantFeatureNotPresent(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error on binary semaphore")
	}
	var ze *zerr.Error
	if !errors.As(err, &ze) || ze.Code != zerr.CodeFeatureNotPresent {
		t.Fatalf("expected CodeFeatureNotPresent, got %v", err)
	}
}

// Timeline operations on a binary semaphore must fail before reaching
// the driver.
func TestBinarySemaphoreRejectsTimelineOps(t *testing.T) {
	s := &Semaphore{dev: &device.Device{}}

	_, err := s.Value()
	wantFeatureNotPresent(t, err)

	wantFeatureNotPresent(t, s.Signal(1))

	_, err = s.Wait(1, 0)
	wantFeatureNotPresent(t, err)
}

// A device without timeline-semaphore entry points must refuse creation
// up front rather than letting vkCreateSemaphore fail obscurely.
func TestNewTimelineSemaphoreRequiresCapability(t *testing.T) {
	_, err := NewTimelineSemaphore(&device.Device{}, 0)
	wantFeatureNotPresent(t, err)
}
