// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package substrate binds the runtime types of the default Substrate node
// and of the relay chains built on it.
package substrate

import (
	"github.com/ChainSafe/gossamer-client/internal/log"
	"github.com/ChainSafe/gossamer-client/pkg/chain"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime/generic"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "substrate"))

// SetLogLevel sets the log level of the package.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

type (
	// Index is the account nonce type.
	Index = uint32
	// BlockNumber is the block number type.
	BlockNumber = uint32
	// Hash is the block and extrinsic hash type.
	Hash = hash.H256
	// Hashing is the hashing algorithm of the chain.
	Hashing = runtime.BlakeTwo256
	// AccountID is the account identifier, a public key.
	AccountID = crypto.AccountID32
	// Address is the address format accepted in extrinsics.
	Address = runtime.MultiAddress
	// Header is the block header.
	Header = generic.Header[BlockNumber, Hash, Hashing]
	// Signature is the extrinsic signature.
	Signature = runtime.MultiSignature
	// Extrinsic is the opaque extrinsic type found in blocks.
	Extrinsic = generic.OpaqueExtrinsic
	// Block is a block of opaque extrinsics.
	Block = generic.Block[BlockNumber, Hash, Hashing, Extrinsic]
)

// Types is the bundle of types bound by Config.
type Types = chain.Types[Index, BlockNumber, Hash, *Hash, Hashing, AccountID, *AccountID,
	Address, *Address, Header, *Header, Signature, Extrinsic, *Extrinsic]

// AccountData is the account data bound to Config.
type AccountData = chain.AccountData[Index, BlockNumber, Hash, *Hash, Hashing, AccountID, *AccountID,
	Address, *Address, Header, *Header, Signature, Extrinsic, *Extrinsic, AccountInfo]

// ExtrinsicExtraData is the extra data builder bound to Config.
type ExtrinsicExtraData = chain.ExtrinsicExtraData[Index, BlockNumber, Hash, *Hash, Hashing, AccountID, *AccountID,
	Address, *Address, Header, *Header, Signature, Extrinsic, *Extrinsic, AccountInfo, DefaultExtra]

// Config is the runtime configuration of the default Substrate node.
type Config struct{}

// Types returns the types bound by the configuration.
func (Config) Types() Types {
	return Types{}
}

var _ chain.Config[Index, BlockNumber, Hash, *Hash, Hashing, AccountID, *AccountID,
	Address, *Address, Header, *Header, Signature, Extrinsic, *Extrinsic] = Config{}
