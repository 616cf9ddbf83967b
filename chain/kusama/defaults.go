// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kusama

import (
	"path/filepath"

	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
)

var (
	// defaultBasePath is default base directory path for kusama
	defaultBasePath = filepath.Join(config.DefaultBasePath, "kusama")
	// defaultChainSpec is the default chain spec configuration path
	defaultChainSpec = "./chain/kusama/chain-spec-raw.json"
)

const (
	// GenesisHash is the hash of the Kusama genesis block.
	GenesisHash = "0xb0a8d493285c2df73290dfb7e61f870f17b41801197a149ca93654499ea3dafe"
	// SS58Prefix is the address format of Kusama accounts.
	SS58Prefix = crypto.Ss58AddressFormat(2)
	// SpecVersion is the runtime version extrinsics are built for by default.
	SpecVersion = 1003000
	// TransactionVersion is the transaction version extrinsics are built for by default.
	TransactionVersion = 26
)

// DefaultConfig returns a Kusama client configuration
func DefaultConfig() *config.Config {
	cfg := config.Default()
	cfg.Global.ID = "kusama"
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
