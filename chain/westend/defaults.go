// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package westend

import (
	"path/filepath"

	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
)

var (
	// defaultBasePath is default base directory path for westend
	defaultBasePath = filepath.Join(config.DefaultBasePath, "westend")
	// defaultChainSpec is the default chain spec configuration path
	defaultChainSpec = "./chain/westend/chain-spec-raw.json"
)

const (
	// GenesisHash is the hash of the Westend genesis block.
	GenesisHash = "0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e"
	// SS58Prefix is the address format of Westend accounts.
	SS58Prefix = crypto.Ss58AddressFormat(42)
	// SpecVersion is the runtime version extrinsics are built for by default.
	SpecVersion = 1014000
	// TransactionVersion is the transaction version extrinsics are built for by default.
	TransactionVersion = 26
)

// DefaultConfig returns a Westend client configuration
func DefaultConfig() *config.Config {
	cfg := config.Default()
	cfg.Global.ID = "westend"
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
