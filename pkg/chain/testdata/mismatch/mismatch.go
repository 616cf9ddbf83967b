// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package mismatch binds a header numbered with u32 to a chain numbered with u64.
// It must not compile.
package mismatch

import (
	"github.com/ChainSafe/gossamer-client/pkg/chain"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime/generic"
)

type header = generic.Header[uint32, hash.H256, runtime.BlakeTwo256]

type types = chain.Types[uint32, uint64, hash.H256, *hash.H256, runtime.BlakeTwo256,
	crypto.AccountID32, *crypto.AccountID32, runtime.MultiAddress, *runtime.MultiAddress,
	header, *header, runtime.MultiSignature, generic.OpaqueExtrinsic, *generic.OpaqueExtrinsic]

type config struct{}

func (config) Types() types {
	return types{}
}
