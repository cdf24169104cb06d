package gacore

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry pairs a cached fitness with the exact bit pattern it was
// computed from, so a SHA-256 key collision can be resolved by full
// comparison rather than trusted blindly.
type cacheEntry struct {
	bits    []byte
	fitness int
}

// FitnessCache is a bounded LRU mapping a Solution's bit pattern to its
// UNSAT count, keyed by a SHA-256 digest of the bits. It wraps
// hashicorp/golang-lru/v2 rather than hand-rolling eviction.
type FitnessCache struct {
	lru *lru.Cache[[32]byte, cacheEntry]
}

// NewFitnessCache builds a FitnessCache with the given capacity (500 is a
// reasonable default).
func NewFitnessCache(capacity int) (*FitnessCache, error) {
	if capacity <= 0 {
		return nil, ErrConfigOutOfRange
	}
	c, err := lru.New[[32]byte, cacheEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &FitnessCache{lru: c}, nil
}

// Get probes the cache for sol's bit pattern. It returns (fitness, true) on
// a confirmed hit — confirmed meaning the stored bits matched, not just the
// hash — and (0, false) on a miss or unresolved collision.
func (c *FitnessCache) Get(sol *Solution) (int, bool) {
	entry, ok := c.lru.Get(sol.BitHash())
	if !ok {
		return 0, false
	}
	if len(entry.bits) != len(sol.Bits) {
		return 0, false
	}
	for i := range entry.bits {
		if entry.bits[i] != sol.Bits[i] {
			return 0, false
		}
	}
	return entry.fitness, true
}

// Put stores sol's bit pattern and fitness, evicting the least-recently-used
// entry if the cache is at capacity.
func (c *FitnessCache) Put(sol *Solution, fitness int) {
	bits := make([]byte, len(sol.Bits))
	copy(bits, sol.Bits)
	c.lru.Add(sol.BitHash(), cacheEntry{bits: bits, fitness: fitness})
}

// Len returns the number of entries currently cached.
func (c *FitnessCache) Len() int {
	return c.lru.Len()
}
