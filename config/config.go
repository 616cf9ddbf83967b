// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package config holds the client configuration, read from TOML files
// and command line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/gossamer-client/internal/log"
	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// Database backends of the chain state.
const (
	MemoryDatabase = "memory"
	BadgerDatabase = "badger"
)

// Default values of the configuration
const (
	DefaultName           = "gossamer-client"
	DefaultID             = "substrate"
	DefaultLogLevel       = "info"
	DefaultDatabase       = MemoryDatabase
	DefaultStateDirectory = "state"
	DefaultSS58Prefix     = 42
)

// DefaultBasePath is the default base directory of the client.
var DefaultBasePath = filepath.Join(xdg.DataHome, "gossamer-client")

// Config is a collection of configurations throughout the client
type Config struct {
	Global GlobalConfig `toml:"global,omitempty"`
	Log    LogConfig    `toml:"log,omitempty"`
	Chain  ChainConfig  `toml:"chain,omitempty"`
	Extra  ExtraConfig  `toml:"extra,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name     string `toml:"name,omitempty"`
	ID       string `toml:"id,omitempty" validate:"required"`
	BasePath string `toml:"basepath,omitempty" validate:"required"`
	LogLvl   string `toml:"log,omitempty"`
	Metrics  bool   `toml:"metrics,omitempty"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	ChainLvl     string `toml:"chain,omitempty"`
	StorageLvl   string `toml:"storage,omitempty"`
	SubstrateLvl string `toml:"substrate,omitempty"`
}

// ChainConfig describes the chain the client talks to.
type ChainConfig struct {
	Spec               string `toml:"spec,omitempty"`
	Database           string `toml:"database,omitempty" validate:"oneof=memory badger"`
	StateDirectory     string `toml:"state-dir,omitempty"`
	CacheSize          int64  `toml:"cache-size,omitempty" validate:"gte=0"`
	SS58Prefix         uint16 `toml:"ss58-prefix,omitempty" validate:"lte=16383"`
	GenesisHash        string `toml:"genesis-hash,omitempty" validate:"omitempty,hexadecimal,len=66"`
	SpecVersion        uint32 `toml:"spec-version,omitempty"`
	TransactionVersion uint32 `toml:"transaction-version,omitempty"`
}

// ExtraConfig holds the settings of the extra data of extrinsics.
type ExtraConfig struct {
	Tip          uint64 `toml:"tip,omitempty"`
	MortalPeriod uint64 `toml:"mortal-period,omitempty" validate:"omitempty,min=4,max=65536"`
}

// Default returns the default configuration of a development chain
// stored in memory.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:     DefaultName,
			ID:       DefaultID,
			BasePath: filepath.Join(DefaultBasePath, DefaultID),
			LogLvl:   DefaultLogLevel,
		},
		Log: LogConfig{
			ChainLvl:     DefaultLogLevel,
			StorageLvl:   DefaultLogLevel,
			SubstrateLvl: DefaultLogLevel,
		},
		Chain: ChainConfig{
			Database:       DefaultDatabase,
			StateDirectory: DefaultStateDirectory,
			SS58Prefix:     DefaultSS58Prefix,
		},
	}
}

// Load reads the TOML file at path on top of config.
func Load(path string, config *Config) error {
	fp, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("finding absolute path of %s: %w", path, err)
	}

	file, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return fmt.Errorf("opening configuration file: %w", err)
	}
	defer file.Close()

	err = toml.NewDecoder(file).Decode(config)
	if err != nil {
		return fmt.Errorf("decoding toml configuration: %w", err)
	}
	return nil
}

// Export writes config as TOML to the file at path.
func Export(config *Config, path string) error {
	raw, err := toml.Marshal(*config)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	_, err = c.LogLevels()
	return err
}

// StatePath returns the directory of the chain state database.
func (c *Config) StatePath() string {
	if filepath.IsAbs(c.Chain.StateDirectory) {
		return c.Chain.StateDirectory
	}
	return filepath.Join(c.Global.BasePath, c.Chain.StateDirectory)
}

// LogLevels returns the log level of each package, defaulting to
// the global log level.
func (c *Config) LogLevels() (levels map[string]log.Level, err error) {
	global := log.Info
	if c.Global.LogLvl != "" {
		global, err = log.ParseLevel(c.Global.LogLvl)
		if err != nil {
			return nil, fmt.Errorf("parsing global log level: %w", err)
		}
	}

	levels = map[string]log.Level{
		"chain":     global,
		"storage":   global,
		"substrate": global,
	}
	packageLevels := map[string]string{
		"chain":     c.Log.ChainLvl,
		"storage":   c.Log.StorageLvl,
		"substrate": c.Log.SubstrateLvl,
	}
	for pkg, level := range packageLevels {
		if level == "" {
			continue
		}
		levels[pkg], err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing %s log level: %w", pkg, err)
		}
	}
	return levels, nil
}

func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id=%s basepath=%s database=%s", c.Global.ID, c.Global.BasePath, c.Chain.Database)
	if c.Chain.Spec != "" {
		fmt.Fprintf(&b, " spec=%s", c.Chain.Spec)
	}
	return b.String()
}
