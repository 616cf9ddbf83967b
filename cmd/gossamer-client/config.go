// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/ChainSafe/gossamer-client/chain/kusama"
	"github.com/ChainSafe/gossamer-client/chain/paseo"
	"github.com/ChainSafe/gossamer-client/chain/polkadot"
	"github.com/ChainSafe/gossamer-client/chain/westend"
	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/internal/log"
	"github.com/ChainSafe/gossamer-client/pkg/chain"
	"github.com/ChainSafe/gossamer-client/pkg/chain/substrate"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
	"github.com/urfave/cli"
)

// setupLogger sets up the global logger from the --log flag.
func setupLogger(ctx *cli.Context) error {
	if !ctx.GlobalIsSet(LogFlag.Name) {
		return nil
	}

	level, err := log.ParseLevel(ctx.GlobalString(LogFlag.Name))
	if err != nil {
		return err
	}

	options := []log.Option{
		log.SetWriter(os.Stderr),
		log.SetLevel(level),
	}
	if level <= log.Debug {
		options = append(options, log.SetCaller(log.CallerFile|log.CallerLine))
	}
	log.Patch(options...)
	return nil
}

// defaultConfig returns the default configuration of the chain given by --chain.
func defaultConfig(id string) (*config.Config, error) {
	switch id {
	case "", config.DefaultID:
		return config.Default(), nil
	case "polkadot":
		return polkadot.DefaultConfig(), nil
	case "kusama":
		return kusama.DefaultConfig(), nil
	case "westend":
		return westend.DefaultConfig(), nil
	case "paseo":
		return paseo.DefaultConfig(), nil
	default:
		return nil, fmt.Errorf("chain %s not supported", id)
	}
}

// createConfig creates the client configuration from the chain defaults,
// the --config file and the global flags, in that order of precedence.
func createConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := defaultConfig(ctx.GlobalString(ChainFlag.Name))
	if err != nil {
		return nil, err
	}

	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		logger.Info("loading toml configuration from " + path + "...")
		err = config.Load(path, cfg)
		if err != nil {
			return nil, err
		}
	}

	if basePath := ctx.GlobalString(BasePathFlag.Name); basePath != "" {
		cfg.Global.BasePath = basePath
	}
	if database := ctx.GlobalString(DatabaseFlag.Name); database != "" {
		cfg.Chain.Database = database
	}
	if spec := ctx.GlobalString(SpecFlag.Name); spec != "" {
		cfg.Chain.Spec = spec
	}
	if ctx.GlobalIsSet(CacheSizeFlag.Name) {
		cfg.Chain.CacheSize = ctx.GlobalInt64(CacheSizeFlag.Name)
	}
	if ctx.GlobalIsSet(LogFlag.Name) {
		cfg.Global.LogLvl = ctx.GlobalString(LogFlag.Name)
	}
	if ctx.GlobalBool(MetricsFlag.Name) {
		cfg.Global.Metrics = true
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	err = setLogLevels(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debugf("loaded configuration: %s", cfg)
	return cfg, nil
}

func setLogLevels(cfg *config.Config) error {
	levels, err := cfg.LogLevels()
	if err != nil {
		return err
	}

	chain.SetLogLevel(levels["chain"])
	storage.SetLogLevel(levels["storage"])
	substrate.SetLogLevel(levels["substrate"])
	return nil
}

// setExtraConfig applies the extrinsic flags of a command on top of cfg.
func setExtraConfig(ctx *cli.Context, cfg *config.Config) error {
	if ctx.IsSet(TipFlag.Name) {
		cfg.Extra.Tip = ctx.Uint64(TipFlag.Name)
	}
	if ctx.IsSet(MortalFlag.Name) {
		cfg.Extra.MortalPeriod = ctx.Uint64(MortalFlag.Name)
	}
	if ctx.IsSet(GenesisHashFlag.Name) {
		cfg.Chain.GenesisHash = ctx.String(GenesisHashFlag.Name)
	}
	if ctx.IsSet(SpecVersionFlag.Name) {
		cfg.Chain.SpecVersion = uint32(ctx.Uint(SpecVersionFlag.Name))
	}
	if ctx.IsSet(TxVersionFlag.Name) {
		cfg.Chain.TransactionVersion = uint32(ctx.Uint(TxVersionFlag.Name))
	}
	return cfg.Validate()
}
