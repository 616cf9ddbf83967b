// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global client configuration flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// ChainFlag selects the default configuration of a known chain
	ChainFlag = cli.StringFlag{
		Name:  "chain",
		Usage: "Default configuration of a known chain: substrate, polkadot, kusama, westend or paseo",
		Value: "substrate",
	}
	// LogFlag global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// BasePathFlag data directory
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory of the client",
	}
	// DatabaseFlag backend of the chain state
	DatabaseFlag = cli.StringFlag{
		Name:  "database",
		Usage: "Backend of the chain state: memory or badger",
	}
	// SpecFlag raw chain spec path
	SpecFlag = cli.StringFlag{
		Name:  "spec",
		Usage: "Path to the raw chain spec holding the genesis state",
	}
	// CacheSizeFlag storage read cache size
	CacheSizeFlag = cli.Int64Flag{
		Name:  "cache-size",
		Usage: "Size in bytes of the storage read cache, 0 to disable it",
	}
	// MetricsFlag counts storage reads
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Count storage reads and log the counters",
	}
)

// Extrinsic flags
var (
	// KeyFlag secret URI of the signing key
	KeyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "Secret URI of the sr25519 signing key, eg. --key=//Alice",
	}
	// TipFlag tip paid to the block author
	TipFlag = cli.Uint64Flag{
		Name:  "tip",
		Usage: "Tip paid to the block author on top of the fees",
	}
	// MortalFlag validity period in blocks
	MortalFlag = cli.Uint64Flag{
		Name:  "mortal",
		Usage: "Validity period of the extrinsic in blocks, 0 for immortal",
	}
	// BlockFlag number of the checkpoint block
	BlockFlag = cli.StringFlag{
		Name:  "block",
		Usage: "Number of the block a mortal era starts at",
	}
	// CheckpointFlag hash of the checkpoint block
	CheckpointFlag = cli.StringFlag{
		Name:  "checkpoint",
		Usage: "Hash of the block a mortal era starts at",
	}
	// GenesisHashFlag hash of the genesis block
	GenesisHashFlag = cli.StringFlag{
		Name:  "genesis-hash",
		Usage: "Hash of the genesis block, overrides the configured one",
	}
	// SpecVersionFlag runtime spec version
	SpecVersionFlag = cli.UintFlag{
		Name:  "spec-version",
		Usage: "Runtime spec version, overrides the configured one",
	}
	// TxVersionFlag runtime transaction version
	TxVersionFlag = cli.UintFlag{
		Name:  "tx-version",
		Usage: "Runtime transaction version, overrides the configured one",
	}
)

var globalFlags = []cli.Flag{
	ConfigFlag,
	ChainFlag,
	LogFlag,
	BasePathFlag,
	DatabaseFlag,
	SpecFlag,
	CacheSizeFlag,
	MetricsFlag,
}

var extraFlags = []cli.Flag{
	TipFlag,
	MortalFlag,
	BlockFlag,
	CheckpointFlag,
	GenesisHashFlag,
	SpecVersionFlag,
	TxVersionFlag,
}
