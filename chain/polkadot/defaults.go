// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package polkadot

import (
	"path/filepath"

	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
)

var (
	// defaultBasePath is default base directory path for polkadot
	defaultBasePath = filepath.Join(config.DefaultBasePath, "polkadot")
	// defaultChainSpec is the default chain spec configuration path
	defaultChainSpec = "./chain/polkadot/chain-spec-raw.json"
)

const (
	// GenesisHash is the hash of the Polkadot genesis block.
	GenesisHash = "0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3"
	// SS58Prefix is the address format of Polkadot accounts.
	SS58Prefix = crypto.Ss58AddressFormat(0)
	// SpecVersion is the runtime version extrinsics are built for by default.
	SpecVersion = 1003000
	// TransactionVersion is the transaction version extrinsics are built for by default.
	TransactionVersion = 26
)

// DefaultConfig returns a Polkadot client configuration
func DefaultConfig() *config.Config {
	cfg := config.Default()
	cfg.Global.ID = "polkadot"
	cfg.Global.BasePath = defaultBasePath
	cfg.Chain.Spec = defaultChainSpec
	cfg.Chain.Database = config.BadgerDatabase
	cfg.Chain.SS58Prefix = uint16(SS58Prefix)
	cfg.Chain.GenesisHash = GenesisHash
	cfg.Chain.SpecVersion = SpecVersion
	cfg.Chain.TransactionVersion = TransactionVersion
	cfg.Extra.MortalPeriod = 64

	return cfg
}
