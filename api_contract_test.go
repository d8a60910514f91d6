package snappy

import (
	"bytes"
	"testing"
)

func TestAPIContractCompressRejectsBadBlockSize(t *testing.T) {
	err := Compress(&bytes.Buffer{}, NewSliceSource([]byte("x")), &Options{BlockSize: -1})
	if err != ErrInvalidBlockSize {
		t.Fatalf("err = %v, want ErrInvalidBlockSize", err)
	}
}

func TestAPIContractCompressNilOptionsUsesDefaults(t *testing.T) {
	in := bytes.Repeat([]byte("contract"), 100)
	var buf bytes.Buffer
	if err := Compress(&buf, NewSliceSource(in), nil); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	sink := NewSink()
	if err := Decompress(sink, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(sink.Bytes(), in) {
		t.Fatal("round trip mismatch with nil Options")
	}
}

func TestAPIContractDecodeReusesDst(t *testing.T) {
	in := []byte("reuse this buffer please")
	compressed := Encode(nil, in)

	dst := make([]byte, 0, 1024)
	out, err := Decode(dst, compressed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatal("Decode(dst, ...) output mismatch")
	}
}

func TestAPIContractEncodeAppendsToExistingDst(t *testing.T) {
	prefix := []byte("PREFIX:")
	in := []byte("payload")

	out := Encode(append([]byte{}, prefix...), in)
	if !bytes.HasPrefix(out, prefix) {
		t.Fatal("Encode did not preserve the caller's existing dst prefix")
	}

	back, err := Decode(nil, out[len(prefix):])
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(back, in) {
		t.Fatal("round trip after appending to dst mismatch")
	}
}

func TestAPIContractEmptySourceEncodesToSingleByte(t *testing.T) {
	out := Encode(nil, []byte{})
	if len(out) != 1 || out[0] != 0x00 {
		t.Fatalf("Encode(empty) = %x, want [00]", out)
	}
}
