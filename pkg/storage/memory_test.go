// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryBackend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := NewMemoryBackend()
	key := Key{1, 2}

	value, err := backend.Storage(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, value)

	original := []byte{3}
	err = backend.Put(key, original)
	require.NoError(t, err)
	original[0] = 4

	value, err = backend.Storage(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, value)
	value[0] = 5

	value, err = backend.Storage(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, value)

	err = backend.Put(Key{9}, nil)
	require.NoError(t, err)
	value, err = backend.Storage(ctx, Key{9})
	require.NoError(t, err)
	assert.NotNil(t, value)
	assert.Equal(t, 2, backend.Len())

	err = backend.Delete(key)
	require.NoError(t, err)
	value, err = backend.Storage(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, value)

	canceledCtx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = backend.Storage(canceledCtx, Key{9})
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_MemoryBackend_Keys(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend()
	for _, key := range []Key{{1, 3}, {1, 2}, {2, 1}, {1}} {
		require.NoError(t, backend.Put(key, []byte{0}))
	}

	assert.Equal(t, []Key{{1}, {1, 2}, {1, 3}}, backend.Keys(Key{1}))
	assert.Len(t, backend.Keys(nil), 4)
	assert.Empty(t, backend.Keys(Key{3}))
}

func Test_MemoryBackend_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := NewMemoryBackend()

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			key := PlainKey("Test", fmt.Sprint(i))
			assert.NoError(t, backend.Put(key, []byte{byte(i)}))
			value, err := backend.Storage(ctx, key)
			assert.NoError(t, err)
			assert.Equal(t, []byte{byte(i)}, value)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, backend.Len())
}

func Test_LoadHex(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend()
	err := LoadHex(backend, map[string]string{
		"0x0102": "0x03",
		"0x04":   "0x",
	})
	require.NoError(t, err)

	value, err := backend.Storage(context.Background(), Key{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, value)

	value, err = backend.Storage(context.Background(), Key{4})
	require.NoError(t, err)
	assert.Equal(t, []byte{}, value)

	err = LoadHex(backend, map[string]string{"0102": "0x03"})
	assert.ErrorIs(t, err, codec.ErrInvalidHex)

	err = LoadHex(backend, map[string]string{"0x0102": "0xzz"})
	assert.Error(t, err)
}
