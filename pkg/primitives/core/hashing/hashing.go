// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hashing holds the hash functions used for block hashes,
// storage keys and address checksums.
package hashing

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

func blake2(size int, data []byte) []byte {
	h, err := blake2b.New(size, nil)
	if err != nil {
		// only returned for invalid sizes or keys longer than 64 bytes
		panic(err)
	}
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// Blake2_128 returns the 128-bit blake2b hash of data.
func Blake2_128(data []byte) [16]byte {
	var out [16]byte
	copy(out[:], blake2(16, data))
	return out
}

// Blake2_256 returns the 256-bit blake2b hash of data.
func Blake2_256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// Blake2_512 returns the 512-bit blake2b hash of data.
func Blake2_512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}

// Keccak256 returns the legacy keccak256 hash of data.
func Keccak256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// twox writes len(out)/8 xxHash64 digests of data, seeded 0, 1, ... in little endian.
func twox(out []byte, data []byte) {
	for seed := 0; seed*8 < len(out); seed++ {
		h := xxhash.NewS64(uint64(seed))
		_, _ = h.Write(data)
		binary.LittleEndian.PutUint64(out[seed*8:], h.Sum64())
	}
}

// Twox64 returns the 64-bit xxHash of data.
func Twox64(data []byte) [8]byte {
	var out [8]byte
	twox(out[:], data)
	return out
}

// Twox128 returns the 128-bit xxHash of data, computed as two 64-bit
// xxHashes with seeds 0 and 1.
func Twox128(data []byte) [16]byte {
	var out [16]byte
	twox(out[:], data)
	return out
}

// Twox256 returns the 256-bit xxHash of data, computed as four 64-bit
// xxHashes with seeds 0 to 3.
func Twox256(data []byte) [32]byte {
	var out [32]byte
	twox(out[:], data)
	return out
}
