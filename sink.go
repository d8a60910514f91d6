package snappy

// Sink is the decoder's output buffer. It grows like a bytes.Buffer but
// additionally supports WriteFromSelf, the overlapping self-copy primitive
// that expands a back-reference directly inside the buffer.
type Sink struct {
	buf []byte
	// base marks where this call's output begins when the caller handed
	// in a non-empty dst; back-references may not reach past it.
	base int
}

// NewSink returns an empty Sink. If n is known (the uncompressed length
// header), pass it to SetUncompressedLength first to avoid reallocation.
func NewSink() *Sink {
	return &Sink{}
}

// Bytes returns the buffer's current contents. The slice is invalidated by
// any further call to Write or WriteFromSelf.
func (s *Sink) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes written so far.
func (s *Sink) Len() int {
	return len(s.buf)
}

// maxPreReserve caps how much capacity SetUncompressedLength will reserve
// up front. The advertised length is untrusted input; a stream claiming
// multiple gigabytes gets its allocation amortized by append growth instead
// of a single up-front reservation.
const maxPreReserve = 1 << 24

// SetUncompressedLength reserves capacity for the final decompressed size
// so the decode loop appends without reallocating.
func (s *Sink) SetUncompressedLength(n uint32) {
	want := int(n)
	if want > maxPreReserve {
		want = maxPreReserve
	}
	if cap(s.buf)-len(s.buf) < want {
		grown := make([]byte, len(s.buf), len(s.buf)+want)
		copy(grown, s.buf)
		s.buf = grown
	}
}

// Write appends p to the buffer, implementing io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// WriteFromSelf appends a run of n bytes copied from offset bytes behind
// the current end of the buffer, where the source and destination ranges
// may overlap (an offset smaller than n means the copy must observe bytes
// it is itself producing, growing a short pattern into a longer run).
//
// This must not be implemented with a single copy() call over the
// overlapping region: the byte-by-byte left-to-right semantics the
// run-length expansion depends on are not something copy() guarantees for
// overlapping slices. Instead:
//
//   - when n <= 16, offset >= 8, and the buffer has at least 16 bytes of
//     spare capacity, two unaligned 8-byte little-endian load/store pairs
//     copy the whole run (offset >= 8 guarantees the first word's source
//     never overlaps its destination, and the second word may then read
//     bytes the first store just produced);
//   - otherwise, an explicit byte-by-byte loop, which is the only
//     correct general algorithm when the source window can be shorter
//     than the run being produced.
func (s *Sink) WriteFromSelf(offset uint32, n int) error {
	if offset == 0 {
		return ErrZeroOffset
	}
	if uint64(offset) > uint64(len(s.buf)-s.base) {
		return ErrLookBehindUnderrun
	}
	start := len(s.buf) - int(offset)

	if n <= 16 && offset >= 8 && cap(s.buf)-len(s.buf) >= 16 {
		end := len(s.buf)
		out := s.buf[:end+16]
		// Store the first word before loading the second: when
		// 8 <= offset < 16, the second word's source includes bytes the
		// first store just wrote.
		putLE64(out, end, loadLE64(out, start))
		putLE64(out, end+8, loadLE64(out, start+8))
		s.buf = out[:end+n]
		return nil
	}

	for i := 0; i < n; i++ {
		s.buf = append(s.buf, s.buf[start+i])
	}
	return nil
}
