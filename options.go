package snappy

// Options configures the block size and match-finder depth used by
// Compress. A nil *Options is equivalent to DefaultOptions().
type Options struct {
	// BlockSize is the number of input bytes processed against one
	// dictionary lifetime before the dictionary is reset and a fresh
	// chunk begins. Must be in [16, MaxBlockSize]; zero means
	// DefaultOptions().BlockSize.
	BlockSize int

	// MaxChainLen is the number of candidate positions kept per hash
	// bucket in the match finder's position queue. Larger values search
	// more candidates per match at some cost to speed; zero means
	// defaultMaxChainLen. Must not exceed maxMaxChainLen.
	MaxChainLen int
}

// DefaultOptions returns the Options used when Compress is called with a
// nil *Options: a MaxBlockSize (65535-byte) block size and a 3-entry
// position queue.
func DefaultOptions() *Options {
	return &Options{
		BlockSize:   MaxBlockSize,
		MaxChainLen: defaultMaxChainLen,
	}
}

// normalize fills in zero fields with their defaults and validates the
// result, returning a new *Options that is safe to read from concurrently.
func (o *Options) normalize() (*Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}
	out := *o
	if out.BlockSize == 0 {
		out.BlockSize = MaxBlockSize
	}
	if out.MaxChainLen == 0 {
		out.MaxChainLen = defaultMaxChainLen
	}
	if out.BlockSize < minBlockSize || out.BlockSize > MaxBlockSize {
		return nil, ErrInvalidBlockSize
	}
	if out.MaxChainLen < 1 || out.MaxChainLen > maxMaxChainLen {
		return nil, ErrInvalidBlockSize
	}
	return &out, nil
}
