package snappy

// positionQueue is a fixed-depth, most-recent-first list of candidate match
// positions for one hash bucket. Pushing past capacity silently drops the
// oldest entry — this is the "lossy" part of the lossy hash table: we never
// chain an unbounded match list, we keep only the last maxChainLen sightings
// of a given 4-byte prefix.
type positionQueue struct {
	pos [maxMaxChainLen]uint32
	n   int
}

// push inserts pos at the front, shifting older entries back and dropping
// anything past max.
func (q *positionQueue) push(pos uint32, max int) {
	if max > maxMaxChainLen {
		max = maxMaxChainLen
	}
	limit := q.n
	if limit > max-1 {
		limit = max - 1
	}
	for i := limit; i > 0; i-- {
		q.pos[i] = q.pos[i-1]
	}
	q.pos[0] = pos
	if q.n < max {
		q.n++
	}
}

// dictBucket is one slot of the lossy hash table: the 4-byte prefix key it
// was last filled with, and the positions seen for that key.
type dictBucket struct {
	key    uint32
	filled bool
	queue  positionQueue
}

// dictionary is the lossy-hash-table match finder used by the encoder. It
// maps a rolling 4-byte prefix to up to maxChainLen recent positions that
// shared that prefix; collisions overwrite the bucket rather than chaining,
// trading match quality for O(1), allocation-free lookups.
type dictionary struct {
	table       []dictBucket
	mask        uint32
	maxChainLen int
}

// newDictionary allocates a dictionary sized for scanning an input region
// of approximately size bytes, with room for at least maxChainLen
// candidates per bucket.
//
// The bucket count is the next power of two of size/8, floored at 16
// buckets, targeting a load factor around 1 with realistic prefix
// diversity while keeping the table cache-resident.
func newDictionary(size int, maxChainLen int) *dictionary {
	n := nextPow2(uint32(size) / 8)
	if n < 16 {
		n = 16
	}
	if maxChainLen <= 0 || maxChainLen > maxMaxChainLen {
		maxChainLen = defaultMaxChainLen
	}
	return &dictionary{
		table:       make([]dictBucket, n),
		mask:        n - 1,
		maxChainLen: maxChainLen,
	}
}

// reset clears every bucket so the dictionary can be reused for the next
// block without reallocating its backing array.
func (d *dictionary) reset() {
	for i := range d.table {
		d.table[i] = dictBucket{}
	}
}

// hash mixes a 4-byte prefix key into a bucket index, using a variant of
// the Thomas Wang integer hash.
func (d *dictionary) hash(key uint32) uint32 {
	a := (key ^ 61) ^ (key >> 16)
	a += a << 3
	a ^= a >> 4
	a *= 0x27d4eb2d
	a ^= a >> 15
	return a & d.mask
}

// findBestMatchOrAdd looks up the 4-byte prefix at block[start:start+4] in
// the dictionary. If the bucket already holds that exact key, it returns a
// copy of the queue of prior positions that shared it (newest first) for the
// caller to scan for the longest match, and then pushes start onto the
// bucket's queue (evicting the oldest entry when full).
//
// If the bucket is empty, holds a different key, or the bucket matched but
// is empty of positions, the bucket is (re)seeded with key and start and ok
// is false.
func (d *dictionary) findBestMatchOrAdd(block []byte, start int) (q positionQueue, ok bool) {
	key := loadLE32(block, start)
	idx := d.hash(key)
	b := &d.table[idx]
	if b.filled && b.key == key && b.queue.n > 0 {
		q = b.queue
		b.queue.push(uint32(start), d.maxChainLen)
		return q, true
	}
	b.key = key
	b.filled = true
	b.queue = positionQueue{}
	b.queue.push(uint32(start), d.maxChainLen)
	return positionQueue{}, false
}
