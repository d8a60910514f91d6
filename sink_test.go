package snappy

import (
	"bytes"
	"testing"
)

func TestSinkWriteFromSelfShort(t *testing.T) {
	s := NewSink()
	s.Write([]byte("abc"))
	if err := s.WriteFromSelf(3, 2); err != nil {
		t.Fatalf("WriteFromSelf: %v", err)
	}
	if got := string(s.Bytes()); got != "abcab" {
		t.Fatalf("got %q, want %q", got, "abcab")
	}
}

func TestSinkWriteFromSelfOverlapping(t *testing.T) {
	// offset 1 with length 5 must replicate a single byte into a run,
	// exercising the overlap where source bytes are produced by the same
	// call that consumes them.
	s := NewSink()
	s.Write([]byte("x"))
	if err := s.WriteFromSelf(1, 5); err != nil {
		t.Fatalf("WriteFromSelf: %v", err)
	}
	if got := string(s.Bytes()); got != "xxxxxx" {
		t.Fatalf("got %q, want %q", got, "xxxxxx")
	}
}

func TestSinkWriteFromSelfFastPath(t *testing.T) {
	// offset >= 8, length <= 16: should hit the guarded two-word path.
	s := NewSink()
	s.SetUncompressedLength(64)
	prefix := bytes.Repeat([]byte("0123456789abcdef"), 1)[:16]
	s.Write(prefix)
	if err := s.WriteFromSelf(16, 16); err != nil {
		t.Fatalf("WriteFromSelf: %v", err)
	}
	want := string(prefix) + string(prefix)
	if got := string(s.Bytes()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSinkWriteFromSelfFastPathShortOffset(t *testing.T) {
	// offset 8 with length 16: the second word of the fast path must read
	// bytes the first word's store just produced.
	s := NewSink()
	s.SetUncompressedLength(64)
	s.Write([]byte("abcdefgh"))
	if err := s.WriteFromSelf(8, 16); err != nil {
		t.Fatalf("WriteFromSelf: %v", err)
	}
	if got := string(s.Bytes()); got != "abcdefghabcdefghabcdefgh" {
		t.Fatalf("got %q, want %q", got, "abcdefghabcdefghabcdefgh")
	}
}

func TestSinkWriteFromSelfLookBehindUnderrun(t *testing.T) {
	s := NewSink()
	s.Write([]byte("ab"))
	if err := s.WriteFromSelf(10, 4); err != ErrLookBehindUnderrun {
		t.Fatalf("err = %v, want ErrLookBehindUnderrun", err)
	}
}

func TestSinkWriteFromSelfZeroOffset(t *testing.T) {
	s := NewSink()
	s.Write([]byte("ab"))
	if err := s.WriteFromSelf(0, 4); err != ErrZeroOffset {
		t.Fatalf("err = %v, want ErrZeroOffset", err)
	}
}
