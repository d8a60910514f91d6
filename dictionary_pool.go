package snappy

import "sync"

// dictPool reuses dictionary allocations across Compress calls that share
// the same bucket count, avoiding a fresh table allocation per call for the
// common case of repeated compression at a fixed BlockSize.
var dictPool sync.Map // bucketCount int -> *sync.Pool

func poolFor(buckets int) *sync.Pool {
	if p, ok := dictPool.Load(buckets); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{
		New: func() any {
			return &dictionary{}
		},
	}
	actual, _ := dictPool.LoadOrStore(buckets, p)
	return actual.(*sync.Pool)
}

// acquireDictionary returns a dictionary sized for blockSize/maxChainLen,
// reusing a pooled instance with a matching table size when available.
func acquireDictionary(blockSize, maxChainLen int) *dictionary {
	buckets := dictBucketCount(blockSize)
	p := poolFor(buckets)
	v := p.Get()
	dict := v.(*dictionary)
	if dict.table == nil {
		dict.table = make([]dictBucket, buckets)
		dict.mask = uint32(buckets) - 1
	} else {
		dict.reset()
	}
	if maxChainLen <= 0 || maxChainLen > maxMaxChainLen {
		maxChainLen = defaultMaxChainLen
	}
	dict.maxChainLen = maxChainLen
	return dict
}

// releaseDictionary returns d to its pool for reuse by a later Compress
// call with the same bucket count.
func releaseDictionary(d *dictionary) {
	buckets := len(d.table)
	poolFor(buckets).Put(d)
}

// dictBucketCount computes the same bucket count newDictionary would for a
// dictionary sized for size bytes, without allocating.
func dictBucketCount(size int) int {
	n := nextPow2(uint32(size) / 8)
	if n < 16 {
		n = 16
	}
	return int(n)
}
