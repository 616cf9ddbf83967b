// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package mixed uses account data that does not belong to the Substrate
// configuration as its account data. It must not compile.
package mixed

import (
	"github.com/ChainSafe/gossamer-client/pkg/chain"
	"github.com/ChainSafe/gossamer-client/pkg/chain/substrate"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime/generic"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
)

// wideNonce reads nonces wider than the Substrate index.
type wideNonce struct {
	substrate.Config
}

func (wideNonce) StorageEntry(id substrate.AccountID) storage.Entry[substrate.AccountInfo] {
	return substrate.AccountEntry{AccountID: id}
}

func (wideNonce) Nonce(value substrate.AccountInfo) uint64 {
	return uint64(value.Nonce)
}

var _ substrate.AccountData = wideNonce{}

type keccakHeader = generic.Header[uint32, hash.H256, runtime.Keccak256]

// keccakConfig is a chain sharing every type with Substrate but its hashing.
type keccakConfig struct{}

func (keccakConfig) Types() chain.Types[uint32, uint32, hash.H256, *hash.H256, runtime.Keccak256,
	crypto.AccountID32, *crypto.AccountID32, runtime.MultiAddress, *runtime.MultiAddress,
	keccakHeader, *keccakHeader, runtime.MultiSignature, generic.OpaqueExtrinsic, *generic.OpaqueExtrinsic] {
	return chain.Types[uint32, uint32, hash.H256, *hash.H256, runtime.Keccak256,
		crypto.AccountID32, *crypto.AccountID32, runtime.MultiAddress, *runtime.MultiAddress,
		keccakHeader, *keccakHeader, runtime.MultiSignature, generic.OpaqueExtrinsic, *generic.OpaqueExtrinsic]{}
}

// otherChain reads the System.Account map of the keccak chain.
type otherChain struct {
	keccakConfig
}

func (otherChain) StorageEntry(id substrate.AccountID) storage.Entry[substrate.AccountInfo] {
	return substrate.AccountEntry{AccountID: id}
}

func (otherChain) Nonce(value substrate.AccountInfo) substrate.Index {
	return value.Nonce
}

var _ substrate.AccountData = otherChain{}
