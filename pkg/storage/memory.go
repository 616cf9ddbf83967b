// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/tidwall/btree"
)

// MemoryBackend is an in-memory storage backend ordered by key,
// safe for concurrent use.
type MemoryBackend struct {
	keyValues btree.Map[string, []byte]
	mutex     sync.RWMutex
}

// NewMemoryBackend returns a new empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Storage returns a copy of the value at key, or nil if there is none.
func (m *MemoryBackend) Storage(ctx context.Context, key Key) ([]byte, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, ok := m.keyValues.Get(string(key))
	if !ok {
		return nil, nil
	}
	return copyBytes(value), nil
}

// Put sets the value at key. The value is deep copied.
// The error returned is always nil.
func (m *MemoryBackend) Put(key Key, value []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.keyValues.Set(string(key), copyBytes(value))
	return nil
}

// Delete removes the value at key, if any.
// The error returned is always nil.
func (m *MemoryBackend) Delete(key Key) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.keyValues.Delete(string(key))
	return nil
}

// Len returns the number of values stored.
func (m *MemoryBackend) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.keyValues.Len()
}

// Keys returns the sorted keys starting with prefix.
func (m *MemoryBackend) Keys(prefix Key) []Key {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var keys []Key
	m.keyValues.Ascend(string(prefix), func(key string, _ []byte) bool {
		if !Key(key).HasPrefix(prefix) {
			return false
		}
		keys = append(keys, Key(key))
		return true
	})
	return keys
}

// LoadHex stores each hex encoded key value pair of top, such as
// the raw genesis storage of a chain spec.
func LoadHex(writer Writer, top map[string]string) error {
	for hexKey, hexValue := range top {
		key, err := ParseKey(hexKey)
		if err != nil {
			return fmt.Errorf("parsing key %s: %w", hexKey, err)
		}
		value, err := codec.HexToBytes(hexValue)
		if err != nil {
			return fmt.Errorf("parsing value at %s: %w", hexKey, err)
		}
		err = writer.Put(key, value)
		if err != nil {
			return fmt.Errorf("writing value at %s: %w", hexKey, err)
		}
	}
	return nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	copied := make([]byte, len(b))
	copy(copied, b)
	return copied
}
