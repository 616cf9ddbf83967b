// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hashing"
)

// Hasher is the hashing algorithm applied to a storage map key.
type Hasher uint8

const (
	Blake2_128 Hasher = iota
	Blake2_256
	Blake2_128Concat
	Twox128
	Twox256
	Twox64Concat
	Identity
)

var hasherNames = [...]string{
	Blake2_128:       "Blake2_128",
	Blake2_256:       "Blake2_256",
	Blake2_128Concat: "Blake2_128Concat",
	Twox128:          "Twox128",
	Twox256:          "Twox256",
	Twox64Concat:     "Twox64Concat",
	Identity:         "Identity",
}

func (h Hasher) String() string {
	if int(h) < len(hasherNames) {
		return hasherNames[h]
	}
	return fmt.Sprintf("Hasher(%d)", uint8(h))
}

// ParseHasher returns the hasher named s, as named in runtime metadata.
func ParseHasher(s string) (Hasher, error) {
	for i, name := range hasherNames {
		if name == s {
			return Hasher(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHasher, s)
}

// Hash hashes data. Concat hashers append data to its hash, so the
// original key can be recovered from the storage key.
func (h Hasher) Hash(data []byte) []byte {
	switch h {
	case Blake2_128:
		digest := hashing.Blake2_128(data)
		return digest[:]
	case Blake2_256:
		digest := hashing.Blake2_256(data)
		return digest[:]
	case Blake2_128Concat:
		digest := hashing.Blake2_128(data)
		return append(digest[:], data...)
	case Twox128:
		digest := hashing.Twox128(data)
		return digest[:]
	case Twox256:
		digest := hashing.Twox256(data)
		return digest[:]
	case Twox64Concat:
		digest := hashing.Twox64(data)
		return append(digest[:], data...)
	case Identity:
		return append([]byte(nil), data...)
	default:
		panic(fmt.Sprintf("storage hasher %d not supported", h))
	}
}

// IsValid returns true if h is one of the known hashers.
func (h Hasher) IsValid() bool {
	return int(h) < len(hasherNames)
}
