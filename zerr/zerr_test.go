package zerr

import (
	"errors"
	"testing"

	"github.com/ghostkellz/zeus-vk/vk"
)

func TestClassifySuccessIsNil(t *testing.T) {
	if err := Classify("op", vk.Success); err != nil {
		t.Fatalf("Classify(Success) = %v, want nil", err)
	}
}

func TestClassifyNonErrorStatusCodesAreNil(t *testing.T) {
	// Positive status codes (NOT_READY, TIMEOUT, INCOMPLETE...) are not
	// failures; callers that care inspect the Result directly.
	for _, r := range []vk.Result{vk.NotReady, vk.Timeout, vk.EventSet, vk.EventReset, vk.Incomplete} {
		if err := Classify("op", r); err != nil {
			t.Fatalf("Classify(%v) = %v, want nil", r, err)
		}
	}
}

func TestClassifyRoundTripsEveryDriverError(t *testing.T) {
	cases := map[vk.Result]Code{
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
	}
	for result, code := range cases {
		err := Classify("op", result)
		if err == nil {
			t.Fatalf("Classify(%v) = nil, want error", result)
		}
		if err.Code != code {
			t.Errorf("Classify(%v).Code = %v, want %v", result, err.Code, code)
		}
		if err.Result != result {
			t.Errorf("Classify(%v).Result = %v, want the original result preserved", result, err.Result)
		}
	}
}

func TestClassifyUnmappedNegativeResultIsUnknown(t *testing.T) {
	err := Classify("op", vk.Result(-9999))
	if err == nil || err.Code != CodeUnknown {
		t.Fatalf("unmapped negative result = %v, want CodeUnknown", err)
	}
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	a := New(CodeMissingSymbol, "loader.open", nil)
	b := New(CodeMissingSymbol, "somewhere.else", errors.New("cause"))
	if !errors.Is(a, b) {
		t.Fatal("errors with the same Code must match via errors.Is")
	}
	c := New(CodeLibraryNotFound, "loader.open", nil)
	if errors.Is(a, c) {
		t.Fatal("errors with different Codes must not match")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("dlopen failed")
	err := New(CodeLibraryNotFound, "loader.open", cause)
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must be reachable via errors.Is")
	}
}

func TestIsOutOfDate(t *testing.T) {
	if !IsOutOfDate(vk.ErrorOutOfDateKHR) || !IsOutOfDate(vk.ErrorSurfaceLostKHR) {
		t.Fatal("out-of-date and surface-lost both require recreation")
	}
	if IsOutOfDate(vk.SuboptimalKHR) {
		t.Fatal("suboptimal is a hint, not a recreation requirement")
	}
}
