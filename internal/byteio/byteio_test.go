package byteio

import (
	"bytes"
	"testing"
)

func TestU32BigEndian(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x01, 0x00}))
	got, err := r.U32()
	if err != nil {
		t.Fatalf("U32: %v", err)
	}
	if got != 256 {
		t.Errorf("U32() = %d, want 256", got)
	}
}

func TestU16BigEndian(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x00}))
	got, err := r.U16()
	if err != nil {
		t.Fatalf("U16: %v", err)
	}
	if got != 256 {
		t.Errorf("U16() = %d, want 256", got)
	}
}

func TestRaw4NotFlipped(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("IDAT")))
	got, err := r.Raw4()
	if err != nil {
		t.Fatalf("Raw4: %v", err)
	}
	if string(got[:]) != "IDAT" {
		t.Errorf("Raw4() = %q, want IDAT", got)
	}
}

func TestBytesZeroLengthIsNil(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	got, err := r.Bytes(0)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if got != nil {
		t.Errorf("Bytes(0) = %v, want nil", got)
	}
}

func TestBytesShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2}))
	if _, err := r.Bytes(5); err == nil {
		t.Fatal("expected error for short read")
	}
}
