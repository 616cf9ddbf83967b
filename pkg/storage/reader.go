// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
)

// Reader reads raw values from the storage of a chain.
type Reader interface {
	// Storage returns the value at key, or nil and no error if there is no such value.
	Storage(ctx context.Context, key Key) ([]byte, error)
}

// Writer writes raw values to a storage backend.
type Writer interface {
	Put(key Key, value []byte) error
	Delete(key Key) error
}

// Backend is a readable and writable storage.
type Backend interface {
	Reader
	Writer
}

// Fetch reads and decodes the value of entry. It returns nil and no
// error if the value is absent from storage.
func Fetch[V any](ctx context.Context, reader Reader, entry Entry[V]) (*V, error) {
	key, err := FinalKey(entry)
	if err != nil {
		return nil, fmt.Errorf("building storage key: %w", err)
	}

	data, err := reader.Storage(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading %s.%s at %s: %w", entry.Pallet(), entry.Item(), key, err)
	}
	if data == nil {
		logger.Tracef("no value for %s.%s at %s", entry.Pallet(), entry.Item(), key)
		return nil, nil
	}

	value, err := codec.Decode[V](data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s.%s: %w", entry.Pallet(), entry.Item(), err)
	}
	return &value, nil
}

// FetchOrDefault reads and decodes the value of entry, falling back
// to the entry default if the value is absent from storage.
func FetchOrDefault[V any](ctx context.Context, reader Reader, entry Entry[V]) (V, error) {
	value, err := Fetch(ctx, reader, entry)
	if err != nil {
		var zero V
		return zero, err
	}
	if value == nil {
		return entry.Default(), nil
	}
	return *value, nil
}
