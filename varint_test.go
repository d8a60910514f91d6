package snappy

import (
	"bytes"
	"testing"
)

func TestPutUvarintShort(t *testing.T) {
	var b [maxVarintLen]byte
	n := putUvarint(b[:], 64)
	if n != 1 || b[0] != 64 {
		t.Fatalf("putUvarint(64) = %v, want [64]", b[:n])
	}
}

func TestPutUvarintLong(t *testing.T) {
	var b [maxVarintLen]byte
	n := putUvarint(b[:], 2097150)
	want := []byte{0xFE, 0xFF, 0x7F}
	if !bytes.Equal(b[:n], want) {
		t.Fatalf("putUvarint(2097150) = %v, want %v", b[:n], want)
	}
}

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 63, 64, 127, 128, 300, 1 << 20, 1<<32 - 1}
	for _, v := range values {
		var b [maxVarintLen]byte
		n := putUvarint(b[:], v)
		if n != uvarintSize(v) {
			t.Fatalf("uvarintSize(%d) = %d, putUvarint wrote %d", v, uvarintSize(v), n)
		}
		got, consumed, ok := getUvarint(b[:n])
		if !ok {
			t.Fatalf("getUvarint failed to parse encoding of %d", v)
		}
		if consumed != n {
			t.Fatalf("getUvarint(%d) consumed %d bytes, want %d", v, consumed, n)
		}
		if got != v {
			t.Fatalf("round trip of %d produced %d", v, got)
		}
	}
}

func TestGetUvarintTruncated(t *testing.T) {
	// A continuation byte with nothing following it is not a valid varint.
	if _, _, ok := getUvarint([]byte{0x80}); ok {
		t.Fatal("getUvarint accepted a truncated varint")
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[uint32]uint32{
		0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 16: 16, 17: 32, 1000: 1024,
	}
	for n, want := range cases {
		if got := nextPow2(n); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestLoadPutLE(t *testing.T) {
	b := make([]byte, 8)
	putLE32(b, 0x01020304)
	if got := loadLE32(b, 0); got != 0x01020304 {
		t.Fatalf("loadLE32 round trip = %#x", got)
	}
	putLE64(b, 0, 0x0102030405060708)
	if got := loadLE64(b, 0); got != 0x0102030405060708 {
		t.Fatalf("loadLE64 round trip = %#x", got)
	}
	var b16 [2]byte
	putLE16(b16[:], 0xabcd)
	if got := getLE16(b16[:]); got != 0xabcd {
		t.Fatalf("putLE16/getLE16 round trip = %#x", got)
	}
}
