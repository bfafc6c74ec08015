package cache_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/banditpam/banditpam/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitReturnsComputedValue(t *testing.T) {
	var calls atomic.Int64
	c := cache.New(func(i, j int) float64 {
		calls.Add(1)
		return float64(i + j)
	}, 4)

	require.Equal(t, 5.0, c.Distance(2, 3))
	require.Equal(t, 5.0, c.Distance(3, 2)) // symmetric key, should hit cache
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, 1, c.Len())
}

func TestCache_DiagonalDefersToFn(t *testing.T) {
	called := false
	c := cache.New(func(i, j int) float64 {
		called = true
		return 99
	}, 4)
	assert.Equal(t, 99.0, c.Distance(5, 5))
	assert.True(t, called)
}

func TestCache_DiagonalMatchesNoCache(t *testing.T) {
	fn := func(i, j int) float64 {
		if i == 0 && j == 0 {
			return 1 // zero-norm point under cosine: self-distance is 1, not 0
		}
		return 0
	}
	c := cache.New(fn, 4)
	nc := cache.NoCache{Fn: fn}
	assert.Equal(t, nc.Distance(0, 0), c.Distance(0, 0))
}

func TestCache_ConcurrentAccessIsSafe(t *testing.T) {
	var calls atomic.Int64
	c := cache.New(func(i, j int) float64 {
		calls.Add(1)
		return float64(i * j)
	}, 8)

	var wg sync.WaitGroup
	for w := 0; w < 32; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				for j := 0; j < 50; j++ {
					c.Distance(i, j)
				}
			}
		}()
	}
	wg.Wait()

	// 50*49/2 distinct unordered off-diagonal pairs, plus 50 diagonal entries.
	assert.Equal(t, 1225+50, c.Len())
}

func TestNoCache_MatchesCachedValue(t *testing.T) {
	fn := func(i, j int) float64 { return float64(i - j) }
	cached := cache.New(fn, 4)
	nocache := cache.NoCache{Fn: fn}

	for _, d := range []cache.Distancer{cached, nocache} {
		assert.Equal(t, -3.0, d.Distance(1, 4))
	}
}
