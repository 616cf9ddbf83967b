// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paseo

import (
	"path/filepath"

	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
)

var (
	// defaultBasePath is default base directory path for paseo
	defaultBasePath = filepath.Join(config.DefaultBasePath, "paseo")
	// defaultChainSpec is the default chain spec configuration path
	defaultChainSpec = "./chain/paseo/chain-spec-raw.json"
)

const (
	// GenesisHash is the hash of the Paseo genesis block.
	GenesisHash = "0x77afd6190f1554ad45fd0d31aee62aacc33c6db0ea801129acb813f913e0764f"
	// SS58Prefix is the address format of Paseo accounts.
	SS58Prefix = crypto.Ss58AddressFormat(0)
	// SpecVersion is the runtime version extrinsics are built for by default.
	SpecVersion = 1003000
	// TransactionVersion is the transaction version extrinsics are built for by default.
	TransactionVersion = 26
)

// DefaultConfig returns a Paseo client configuration
func DefaultConfig() *config.Config {
	cfg := config.Default()
	cfg.Global.ID = "paseo"
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
