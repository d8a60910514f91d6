package snappy

import "errors"

// Sentinel errors for compression and decompression. The decoder returns
// these unwrapped; ErrInternal only appears wrapped, so callers should use
// errors.Is to test for these.
var (
	// ErrCorrupt is returned when the input stream is malformed: a
	// premature EOF inside a varint, tag, or literal body, an oversized
	// varint, or a stream whose decoded length differs from its header.
	ErrCorrupt = errors.New("snappy: corrupt input")
	// ErrTooLarge is returned by Compress when a Source reports an
	// uncompressed length that would not fit in 32 bits.
	ErrTooLarge = errors.New("snappy: input too large")
	// ErrInvalidBlockSize is returned when Options.BlockSize falls
	// outside [16, MaxBlockSize].
	ErrInvalidBlockSize = errors.New("snappy: invalid block size")
	// ErrZeroOffset is returned when a copy tag encodes offset 0, which
	// cannot be produced by a conforming encoder.
	ErrZeroOffset = errors.New("snappy: copy with zero offset")
	// ErrLookBehindUnderrun is returned when a copy's offset points
	// before the start of the output written so far.
	ErrLookBehindUnderrun = errors.New("snappy: copy offset before start of output")
	// ErrInternal marks a state that violates the codec's own invariants
	// (a bug, not a malformed-input condition). Encode panics with an
	// error wrapping it; a recovered value can be tested with
	// errors.Is(err, snappy.ErrInternal).
	ErrInternal = errors.New("snappy: internal error")
)
