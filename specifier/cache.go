// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package specifier // import "github.com/cadets/dparse/specifier"

import (
	"errors"
	"sync/atomic"

	lru "github.com/elastic/go-freelru"
	"github.com/zeebo/xxh3"
)

// Cache memoizes successful parses keyed by the input text. Failed parses are
// never stored. A Cache is safe for concurrent use.
type Cache struct {
	lru *lru.SyncedLRU[string, ProbeSpecifier]

	hit     atomic.Uint64
	miss    atomic.Uint64
	added   atomic.Uint64
	evicted atomic.Uint64
}

// CacheStatistics holds the counters of a Cache since the last reset.
type CacheStatistics struct {
	// Number of parses answered from the cache.
	Hit uint64
	// Number of parses that had to run the parser.
	Miss uint64
	// Number of specifiers stored.
	Added uint64
	// Number of specifiers dropped to make room.
	Evicted uint64
}

// hashString is the key hash for the LRU.
func hashString(s string) uint32 {
	return uint32(xxh3.HashString(s))
}

// NewCache returns a Cache holding up to capacity specifiers.
func NewCache(capacity uint32) (*Cache, error) {
	if capacity == 0 {
		return nil, errors.New("parse cache capacity must be greater than zero")
	}
	specs, err := lru.NewSynced[string, ProbeSpecifier](capacity, hashString)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: specs}, nil
}

// Parse returns the cached specifier for text, or parses and caches it.
func (c *Cache) Parse(text string) (ProbeSpecifier, error) {
	if s, ok := c.lru.Get(text); ok {
		c.hit.Add(1)
		return s, nil
	}
	c.miss.Add(1)

	s, err := Parse(text)
	if err != nil {
		return ProbeSpecifier{}, err
	}
	if c.lru.Add(text, s) {
		c.evicted.Add(1)
	}
	c.added.Add(1)
	return s, nil
}

// Len returns the number of cached specifiers.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// GetAndResetStatistics returns the counters and resets them to 0.
func (c *Cache) GetAndResetStatistics() CacheStatistics {
	return CacheStatistics{
		Hit:     c.hit.Swap(0),
		Miss:    c.miss.Swap(0),
		Added:   c.added.Swap(0),
		Evicted: c.evicted.Swap(0),
	}
}
