package pipeline

import "testing"

func header(vendorID, deviceID uint32, uuid [16]byte) []byte {
	b := make([]byte, pipelineCacheHeaderSize)
	putLE32(b[8:12], vendorID)
	putLE32(b[12:16], deviceID)
	copy(b[16:32], uuid[:])
	return b
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func TestValidHeaderMatches(t *testing.T) {
	uuid := [16]byte{1, 2, 3, 4}
	data := header(0x10DE, 0x2684, uuid)
	if !validHeader(data, 0x10DE, 0x2684, uuid) {
		t.Fatal("expected matching header to validate")
	}
}

func TestValidHeaderRejectsMismatchedDevice(t *testing.T) {
	uuid := [16]byte{1, 2, 3, 4}
	data := header(0x10DE, 0x2684, uuid)
	if validHeader(data, 0x10DE, 0x1234, uuid) {
		t.Fatal("expected mismatched device ID to reject")
	}
}

func TestValidHeaderRejectsMismatchedUUID(t *testing.T) {
	uuid := [16]byte{1, 2, 3, 4}
	data := header(0x10DE, 0x2684, uuid)
	other := [16]byte{9, 9, 9, 9}
	if validHeader(data, 0x10DE, 0x2684, other) {
		t.Fatal("expected mismatched UUID to reject")
	}
}

func TestValidHeaderRejectsShortData(t *testing.T) {
	if validHeader([]byte{1, 2, 3}, 0, 0, [16]byte{}) {
		t.Fatal("expected truncated header to reject")
	}
}
