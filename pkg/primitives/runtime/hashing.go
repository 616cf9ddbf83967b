// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hashing"
)

// BlakeTwo256 is a Blake2 256-bit Hasher.
type BlakeTwo256 struct{}

// Hash returns the blake2b 256-bit hash of s.
func (BlakeTwo256) Hash(s []byte) hash.H256 {
	h := hashing.Blake2_256(s)
	return hash.NewH256FromBytes(h[:])
}

// HashEncoded returns the hash of the SCALE encoding of s.
// It panics if s cannot be encoded.
func (bt256 BlakeTwo256) HashEncoded(s any) hash.H256 {
	return bt256.Hash(codec.MustEncode(s))
}

// Keccak256 is a Keccak 256-bit Hasher.
type Keccak256 struct{}

// Hash returns the keccak 256-bit hash of s.
func (Keccak256) Hash(s []byte) hash.H256 {
	h := hashing.Keccak256(s)
	return hash.NewH256FromBytes(h[:])
}

// HashEncoded returns the hash of the SCALE encoding of s.
// It panics if s cannot be encoded.
func (k256 Keccak256) HashEncoded(s any) hash.H256 {
	return k256.Hash(codec.MustEncode(s))
}

var (
	_ Hasher[hash.H256] = BlakeTwo256{}
	_ Hasher[hash.H256] = Keccak256{}
)
