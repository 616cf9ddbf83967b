// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package storage builds the keys of runtime storage items and reads
// their values from a storage backend.
package storage

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hashing"
)

// Key is the final key of a storage item in the state trie.
type Key []byte

func (k Key) String() string {
	return codec.BytesToHex(k)
}

// HasPrefix returns true if k starts with prefix.
func (k Key) HasPrefix(prefix Key) bool {
	return bytes.HasPrefix(k, prefix)
}

// ParseKey parses a 0x prefixed hex storage key.
func ParseKey(s string) (Key, error) {
	b, err := codec.HexToBytes(s)
	if err != nil {
		return nil, err
	}
	return Key(b), nil
}

// KeyPart is a map key of a storage item together with the hasher
// applied to its SCALE encoding.
type KeyPart struct {
	Hasher Hasher
	Value  any
}

// NewKeyPart returns a key part hashing the SCALE encoding of value with hasher.
func NewKeyPart(hasher Hasher, value any) KeyPart {
	return KeyPart{Hasher: hasher, Value: value}
}

// Bytes returns the hashed SCALE encoding of the key part.
func (kp KeyPart) Bytes() ([]byte, error) {
	if !kp.Hasher.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHasher, kp.Hasher)
	}
	encoded, err := codec.Encode(kp.Value)
	if err != nil {
		return nil, fmt.Errorf("encoding key part: %w", err)
	}
	return kp.Hasher.Hash(encoded), nil
}

// PlainKey returns the key of a plain storage value,
// twox128(pallet) ++ twox128(item).
func PlainKey(pallet, item string) Key {
	palletHash := hashing.Twox128([]byte(pallet))
	itemHash := hashing.Twox128([]byte(item))
	key := make(Key, 0, len(palletHash)+len(itemHash))
	key = append(key, palletHash[:]...)
	return append(key, itemHash[:]...)
}

// MapKey returns the key of a storage map entry, the plain key of the
// map followed by each hashed key part.
func MapKey(pallet, item string, parts ...KeyPart) (Key, error) {
	key := PlainKey(pallet, item)
	for i, part := range parts {
		b, err := part.Bytes()
		if err != nil {
			return nil, fmt.Errorf("key part %d of %s.%s: %w", i, pallet, item, err)
		}
		key = append(key, b...)
	}
	return key, nil
}
