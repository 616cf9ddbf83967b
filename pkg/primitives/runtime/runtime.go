// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"
	"strconv"

	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"golang.org/x/exp/constraints"
)

// Number is the block number type.
type Number interface {
	~uint | ~uint32 | ~uint64
}

// Index is the account index (aka nonce) type. It stores the number of
// previous transactions associated with a sender account.
type Index interface {
	~uint32 | ~uint64
}

// Hash is the output of a Hasher.
type Hash interface {
	constraints.Ordered
	scale.Encodeable
	scaleinfo.TypeInfo
	// Bytes returns the raw bytes of the hash.
	Bytes() []byte
	// String returns the hex representation of the hash.
	String() string
}

// Hasher is a hashing algorithm producing values of type H.
type Hasher[H Hash] interface {
	// Hash produces the hash of some byte-slice.
	Hash(s []byte) H
	// HashEncoded produces the hash of the SCALE encoding of s.
	HashEncoded(s any) H
}

// Header is the block header of a chain using block numbers of type N and hashes of type H.
type Header[N Number, H Hash] interface {
	// Number returns the block number.
	Number() N
	// Hash returns the hash of the header.
	Hash() H
	// ParentHash returns the hash of the parent header.
	ParentHash() H
	// StateRoot returns the root of the state trie after this block.
	StateRoot() H
	// ExtrinsicsRoot returns the root of the extrinsics trie of this block.
	ExtrinsicsRoot() H
}

// Extrinsic is something that acts like an extrinsic.
type Extrinsic interface {
	// IsSigned returns whether the extrinsic is signed, or nil if this information is not available.
	IsSigned() *bool
}

// Verify is implemented by signatures verifiable against a message and the account id of the signer.
type Verify[A any] interface {
	Verify(msg []byte, signer A) bool
}

// ConsensusEngineID is the 4 character identifier of a consensus engine.
type ConsensusEngineID [4]byte

func (id ConsensusEngineID) String() string {
	return string(id[:])
}

// Well known consensus engine identifiers.
var (
	BabeEngineID    = ConsensusEngineID{'B', 'A', 'B', 'E'}
	AuraEngineID    = ConsensusEngineID{'a', 'u', 'r', 'a'}
	GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}
)

// ParseNumber parses a decimal or 0x prefixed hexadecimal block number.
func ParseNumber[N Number](s string) (N, error) {
	var zero N
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return zero, fmt.Errorf("parsing block number: %w", err)
	}
	n := N(u)
	if uint64(n) != u {
		return zero, fmt.Errorf("parsing block number: %w: %s", strconv.ErrRange, s)
	}
	return n, nil
}
