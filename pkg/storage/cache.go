// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"context"
	"time"

	"github.com/karlseguin/ccache/v3"
)

// cacheEntryOverhead is the memory used by ccache for each entry.
const cacheEntryOverhead = 350

// cachedValue is a storage value implementing ccache.Sized.
// A nil value records the absence of the key.
type cachedValue []byte

func (cv cachedValue) Size() int64 {
	return int64(len(cv) + cacheEntryOverhead)
}

// CachedReader is a Reader caching the values read from another
// Reader, including absent keys, for a limited time.
// Values are evicted asynchronously so the cache may exceed its maximum size.
type CachedReader struct {
	reader Reader
	ttl    time.Duration
	lru    *ccache.Cache[cachedValue]
}

// NewCachedReader wraps reader with a cache of maxSize bytes
// holding values for ttl.
func NewCachedReader(reader Reader, maxSize int64, ttl time.Duration) *CachedReader {
	return &CachedReader{
		reader: reader,
		ttl:    ttl,
		lru:    ccache.New(ccache.Configure[cachedValue]().MaxSize(maxSize)),
	}
}

// Storage returns the value at key from the cache, or reads it from
// the wrapped reader if it is not cached or expired.
func (c *CachedReader) Storage(ctx context.Context, key Key) ([]byte, error) {
	item := c.lru.Get(string(key))
	if item != nil && !item.Expired() {
		value := item.Value()
		if value == nil {
			return nil, nil
		}
		return copyBytes(value), nil
	}

	value, err := c.reader.Storage(ctx, key)
	if err != nil {
		return nil, err
	}

	c.lru.Set(string(key), cachedValue(copyCached(value)), c.ttl)
	logger.Tracef("cached value at %s", key)
	return value, nil
}

// Invalidate removes the value at key from the cache.
func (c *CachedReader) Invalidate(key Key) {
	c.lru.Delete(string(key))
}

// Stop stops the cache background worker.
func (c *CachedReader) Stop() {
	c.lru.Stop()
}

func copyCached(value []byte) []byte {
	if value == nil {
		return nil
	}
	return copyBytes(value)
}
