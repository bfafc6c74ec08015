// Package cache memoizes pairwise dissimilarities for the duration of a
// single fit. The key space is the unordered index pair {i, j}; lookups
// normalize to (min, max) so symmetric calls share one entry.
//
// The sharded-map-with-per-shard-lock shape mirrors vecgo's
// cache.BlockCache: concurrent readers, an exclusive writer per key, and
// striping by key hash so the cache never becomes a single global
// bottleneck under the bandit core's data-parallel arm evaluation.
package cache

import (
	"hash/maphash"
	"sync"
)

const defaultShards = 16

// Distancer computes the dissimilarity between two dataset indices. Both
// *Cache and NoCache implement it, so a fit can swap in a no-op cache
// without changing any returned value.
type Distancer interface {
	Distance(i, j int) float64
}

// Compute is the underlying (uncached) dissimilarity function a Cache
// memoizes on miss.
type Compute func(i, j int) float64

type shard struct {
	mu sync.RWMutex
	m  map[uint64]float64
}

// Cache memoizes Distance(i, j) for one fit invocation, computing misses
// via fn.
type Cache struct {
	fn     Compute
	shards []shard
	seed   maphash.Seed
}

// New creates a Cache backed by fn, striped across numShards independent
// lock buckets. numShards<=0 defaults to 16.
func New(fn Compute, numShards int) *Cache {
	if numShards <= 0 {
		numShards = defaultShards
	}
	c := &Cache{
		fn:     fn,
		shards: make([]shard, numShards),
		seed:   maphash.MakeSeed(),
	}
	for i := range c.shards {
		c.shards[i].m = make(map[uint64]float64)
	}
	return c
}

func key(i, j int) uint64 {
	if i > j {
		i, j = j, i
	}
	return uint64(uint32(i))<<32 | uint64(uint32(j))
}

func (c *Cache) shardFor(k uint64) *shard {
	var h maphash.Hash
	h.SetSeed(c.seed)
	var buf [8]byte
	for n := 0; n < 8; n++ {
		buf[n] = byte(k >> (8 * n))
	}
	_, _ = h.Write(buf[:])
	return &c.shards[h.Sum64()%uint64(len(c.shards))]
}

// Distance returns d(i, j), consulting the cache first. On a miss it
// computes via fn, stores, and returns the value. Hits return bit-exact
// values a fresh computation would yield because both paths ultimately
// call the identical fn, including at i==j: self-distance is whatever fn
// says it is, so swapping in NoCache never changes a returned value.
func (c *Cache) Distance(i, j int) float64 {
	k := key(i, j)
	sh := c.shardFor(k)

	sh.mu.RLock()
	v, ok := sh.m[k]
	sh.mu.RUnlock()
	if ok {
		return v
	}

	v = c.fn(i, j)

	sh.mu.Lock()
	// A concurrent writer may have raced us to this key; both computed the
	// same fn(i, j), so whichever value is already there is kept.
	if existing, ok := sh.m[k]; ok {
		v = existing
	} else {
		sh.m[k] = v
	}
	sh.mu.Unlock()
	return v
}

// Len reports the total number of memoized pairs, for diagnostics/tests.
func (c *Cache) Len() int {
	n := 0
	for i := range c.shards {
		c.shards[i].mu.RLock()
		n += len(c.shards[i].m)
		c.shards[i].mu.RUnlock()
	}
	return n
}

// Clear drops all memoized entries. A fresh Cache is normally created per
// fit instead, so Clear is mainly useful for reusing a Cache value across
// benchmarks/tests.
func (c *Cache) Clear() {
	for i := range c.shards {
		c.shards[i].mu.Lock()
		c.shards[i].m = make(map[uint64]float64)
		c.shards[i].mu.Unlock()
	}
}

// NoCache bypasses memoization entirely, always recomputing via Fn. It can
// stand in for a Cache wherever a Distancer is accepted (Fit itself always
// uses a Cache), and serves to test the cache-consistency property:
// swapping a Cache for a NoCache must not change any returned value.
type NoCache struct {
	Fn Compute
}

// Distance always recomputes via Fn.
func (n NoCache) Distance(i, j int) float64 {
	return n.Fn(i, j)
}
