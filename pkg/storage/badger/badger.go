// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package badger provides a persistent storage backend using badger v2.
package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/storage"
	badger "github.com/dgraph-io/badger/v2"
)

// Settings are the settings of a badger backend.
type Settings struct {
	// Path is the directory of the database, ignored if InMemory is true.
	Path string
	// InMemory keeps the database in memory only.
	InMemory bool
}

// Backend is a storage backend persisted in a badger database.
type Backend struct {
	database *badger.DB
}

// New opens the badger database described by settings.
func New(settings Settings) (*Backend, error) {
	if settings.Path == "" && !settings.InMemory {
		return nil, errors.New("badger database path cannot be empty")
	}

	path := settings.Path
	if settings.InMemory {
		path = ""
	}
	options := badger.DefaultOptions(path).
		WithLogger(nil).
		WithInMemory(settings.InMemory)

	database, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}

	return &Backend{database: database}, nil
}

// Storage returns the value at key, or nil if there is none.
func (b *Backend) Storage(ctx context.Context, key storage.Key) (value []byte, err error) {
	err = ctx.Err()
	if err != nil {
		return nil, err
	}

	err = b.database.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("copying value: %w", err)
		}
		if value == nil {
			value = []byte{}
		}
		return nil
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("getting %s: %w", key, err)
	}
	return value, nil
}

// Put sets the value at key.
func (b *Backend) Put(key storage.Key, value []byte) error {
	err := b.database.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// Delete removes the value at key, if any.
func (b *Backend) Delete(key storage.Key) error {
	err := b.database.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.database.Close()
}

var _ storage.Backend = (*Backend)(nil)
