// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/pkg/chain"
	"github.com/ChainSafe/gossamer-client/pkg/chain/substrate"
	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hashing"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/sr25519"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
	"github.com/ChainSafe/gossamer-client/pkg/storage/badger"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/urfave/cli"
)

var (
	errMissingArgument   = errors.New("missing argument")
	errNoGenesisHash     = errors.New("genesis hash is not configured")
	errNoCheckpoint      = errors.New("mortal extrinsics require --block and --checkpoint")
	errBadgerOnly        = errors.New("state can only be imported in a badger database")
	errChainSpecRequired = errors.New("chain spec is not configured")
	errBadSignature      = errors.New("signature does not verify")
)

const (
	// maxUnhashedPayload is the length above which signed payloads are hashed.
	maxUnhashedPayload = 256
	// keyringNetwork is the address format of derived key pairs.
	keyringNetwork = 42
)

var (
	typesCommand = cli.Command{
		Action: describeTypes,
		Name:   "types",
		Usage:  "Print the runtime types of the chain",
	}
	storageKeyCommand = cli.Command{
		Action:    printStorageKey,
		Name:      "storage-key",
		Usage:     "Print the storage key of a plain storage value",
		ArgsUsage: "<pallet> <item>",
	}
	accountKeyCommand = cli.Command{
		Action:    printAccountKey,
		Name:      "account-key",
		Usage:     "Print the System.Account storage key of an account",
		ArgsUsage: "<address>",
	}
	nonceCommand = cli.Command{
		Action:    printNonce,
		Name:      "nonce",
		Usage:     "Print the nonce of an account",
		ArgsUsage: "<address>",
	}
	extraCommand = cli.Command{
		Action:    printExtra,
		Name:      "extra",
		Usage:     "Print the extra data of the next extrinsic of an account",
		ArgsUsage: "<address>",
		Flags:     extraFlags,
	}
	signCommand = cli.Command{
		Action:    signCall,
		Name:      "sign",
		Usage:     "Sign a call with the extra data of the next extrinsic of the account of --key",
		ArgsUsage: "<call hex>",
		Flags:     append([]cli.Flag{KeyFlag}, extraFlags...),
	}
	importStateCommand = cli.Command{
		Action: importState,
		Name:   "import-state",
		Usage:  "Import the genesis state of the chain spec in the badger database",
	}
	exportConfigCommand = cli.Command{
		Action:    exportConfig,
		Name:      "export-config",
		Usage:     "Write the resolved configuration to a TOML file",
		ArgsUsage: "<path>",
	}
)

func describeTypes(ctx *cli.Context) error {
	description := substrate.Config{}.Types().Describe()

	lines := []struct {
		name string
		t    fmt.Stringer
	}{
		{"Index", description.Index},
		{"BlockNumber", description.BlockNumber},
		{"Hash", description.Hash},
		{"AccountId", description.AccountID},
		{"Address", description.Address},
		{"Header", description.Header},
		{"Signature", description.Signature},
		{"Extrinsic", description.Extrinsic},
	}
	for _, line := range lines {
		fmt.Fprintf(ctx.App.Writer, "%s: %s\n", line.name, line.t)
	}
	return nil
}

func printStorageKey(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("%w: expected <pallet> <item>", errMissingArgument)
	}

	key := storage.PlainKey(ctx.Args().Get(0), ctx.Args().Get(1))
	fmt.Fprintln(ctx.App.Writer, key)
	return nil
}

func parseAccount(ctx *cli.Context) (substrate.AccountID, error) {
	if ctx.NArg() != 1 {
		return substrate.AccountID{}, fmt.Errorf("%w: expected <address>", errMissingArgument)
	}
	return parseAddress(ctx.Args().First())
}

// parseAddress parses a SS58 address, a hex account id or a secret URI such as //Alice.
func parseAddress(address string) (substrate.AccountID, error) {
	if strings.HasPrefix(address, "//") {
		pair, err := signature.KeyringPairFromSecret(address, keyringNetwork)
		if err != nil {
			return substrate.AccountID{}, fmt.Errorf("deriving key pair: %w", err)
		}
		return crypto.NewAccountID32(pair.PublicKey)
	}

	id, err := crypto.NewAccountID32FromString(address)
	if err != nil {
		return substrate.AccountID{}, fmt.Errorf("parsing address: %w", err)
	}
	return id, nil
}

func printAccountKey(ctx *cli.Context) error {
	id, err := parseAccount(ctx)
	if err != nil {
		return err
	}

	key, err := storage.FinalKey(substrate.SystemAccount{}.StorageEntry(id))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, key)
	return nil
}

func printNonce(ctx *cli.Context) error {
	id, err := parseAccount(ctx)
	if err != nil {
		return err
	}

	cfg, err := createConfig(ctx)
	if err != nil {
		return err
	}

	s, err := openState(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	nonce, err := chain.AccountNonce(context.Background(), s.reader, substrate.AccountData(substrate.SystemAccount{}), id)
	if err != nil {
		return err
	}
	s.logMetrics()

	fmt.Fprintf(ctx.App.Writer, "%s %d\n", id.ToSS58(crypto.Ss58AddressFormat(cfg.Chain.SS58Prefix)), nonce)
	return nil
}

func newExtraData(ctx *cli.Context, cfg *config.Config) (substrate.ExtraData, error) {
	if cfg.Extra.MortalPeriod == 0 {
		return substrate.ExtraData{Tip: cfg.Extra.Tip}, nil
	}

	if !ctx.IsSet(BlockFlag.Name) || !ctx.IsSet(CheckpointFlag.Name) {
		return substrate.ExtraData{}, errNoCheckpoint
	}
	current, err := substrate.Config{}.Types().ParseBlockNumber(ctx.String(BlockFlag.Name))
	if err != nil {
		return substrate.ExtraData{}, fmt.Errorf("parsing block number: %w", err)
	}
	checkpoint, err := hash.NewH256FromHex(ctx.String(CheckpointFlag.Name))
	if err != nil {
		return substrate.ExtraData{}, fmt.Errorf("parsing checkpoint hash: %w", err)
	}

	return substrate.NewMortalExtraData(cfg.Extra.Tip, cfg.Extra.MortalPeriod, current, checkpoint), nil
}

// prepareExtra builds the extra data of the next extrinsic of id.
func prepareExtra(ctx *cli.Context, id substrate.AccountID) (extra substrate.DefaultExtra, err error) {
	cfg, err := createConfig(ctx)
	if err != nil {
		return extra, err
	}
	err = setExtraConfig(ctx, cfg)
	if err != nil {
		return extra, err
	}

	if cfg.Chain.GenesisHash == "" {
		return extra, errNoGenesisHash
	}
	genesisHash, err := hash.NewH256FromHex(cfg.Chain.GenesisHash)
	if err != nil {
		return extra, fmt.Errorf("parsing genesis hash: %w", err)
	}

	extraData, err := newExtraData(ctx, cfg)
	if err != nil {
		return extra, err
	}

	s, err := openState(cfg)
	if err != nil {
		return extra, err
	}
	defer s.close()

	version := chain.RuntimeVersion{
		SpecVersion:        cfg.Chain.SpecVersion,
		TransactionVersion: cfg.Chain.TransactionVersion,
	}
	extra, err = chain.PrepareExtra(context.Background(), s.reader,
		substrate.ExtrinsicExtraData(extraData), id, version, genesisHash)
	if err != nil {
		return extra, err
	}
	s.logMetrics()
	return extra, nil
}

func printExtra(ctx *cli.Context) error {
	id, err := parseAccount(ctx)
	if err != nil {
		return err
	}

	extra, err := prepareExtra(ctx, id)
	if err != nil {
		return err
	}

	encodedExtra, err := extra.Extra()
	if err != nil {
		return err
	}
	additionalSigned, err := extra.AdditionalSigned()
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "extensions: %s\n", strings.Join(extra.Identifiers(), ","))
	fmt.Fprintf(ctx.App.Writer, "nonce: %d\n", extra.Nonce)
	fmt.Fprintf(ctx.App.Writer, "era: %s\n", extra.Era)
	fmt.Fprintf(ctx.App.Writer, "extra: %s\n", codec.BytesToHex(encodedExtra))
	fmt.Fprintf(ctx.App.Writer, "additional signed: %s\n", codec.BytesToHex(additionalSigned))
	return nil
}

// signingPayload returns the payload signed for call with extra.
func signingPayload(call []byte, extra chain.SignedExtra) ([]byte, error) {
	encodedExtra, err := extra.Extra()
	if err != nil {
		return nil, err
	}
	additionalSigned, err := extra.AdditionalSigned()
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(call)+len(encodedExtra)+len(additionalSigned))
	payload = append(payload, call...)
	payload = append(payload, encodedExtra...)
	payload = append(payload, additionalSigned...)
	return payload, nil
}

func signCall(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected <call hex>", errMissingArgument)
	}
	call, err := codec.HexToBytes(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("parsing call: %w", err)
	}

	uri := ctx.String(KeyFlag.Name)
	if uri == "" {
		return fmt.Errorf("%w: --key", errMissingArgument)
	}
	id, err := parseAddress(uri)
	if err != nil {
		return err
	}

	extra, err := prepareExtra(ctx, id)
	if err != nil {
		return err
	}
	payload, err := signingPayload(call, extra)
	if err != nil {
		return err
	}

	// signature.Sign hashes payloads longer than 256 bytes itself.
	raw, err := signature.Sign(payload, uri)
	if err != nil {
		return fmt.Errorf("signing payload: %w", err)
	}
	sr25519Signature, err := sr25519.NewSignature(raw)
	if err != nil {
		return err
	}
	sig := runtime.NewMultiSignatureSr25519(sr25519Signature)

	msg := payload
	if len(msg) > maxUnhashedPayload {
		digest := hashing.Blake2_256(msg)
		msg = digest[:]
	}
	types := substrate.Config{}.Types()
	if !types.VerifySignature(sig, msg, id) {
		return errBadSignature
	}

	encoded, err := codec.Encode(sig)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "signer: %s\n", id)
	fmt.Fprintf(ctx.App.Writer, "nonce: %d\n", extra.Nonce)
	fmt.Fprintf(ctx.App.Writer, "signature: %s\n", codec.BytesToHex(encoded))
	return nil
}

func importState(ctx *cli.Context) error {
	cfg, err := createConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Chain.Database != config.BadgerDatabase {
		return fmt.Errorf("%w: database is %s", errBadgerOnly, cfg.Chain.Database)
	}
	if cfg.Chain.Spec == "" {
		return errChainSpecRequired
	}

	backend, err := badger.New(badger.Settings{Path: cfg.StatePath()})
	if err != nil {
		return err
	}
	defer backend.Close()

	err = loadGenesis(cfg, backend)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "imported genesis state to %s\n", cfg.StatePath())
	return nil
}

func exportConfig(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected <path>", errMissingArgument)
	}

	cfg, err := createConfig(ctx)
	if err != nil {
		return err
	}

	return config.Export(cfg, ctx.Args().First())
}
