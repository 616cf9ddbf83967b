// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/chain"
	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// ErrCheckpointMissing is returned for mortal extrinsics built without the
// hash of the block their era starts at.
var ErrCheckpointMissing = errors.New("mortal era requires a checkpoint block hash")

var signedExtensions = []string{
	"CheckNonZeroSender",
	"CheckSpecVersion",
	"CheckTxVersion",
	"CheckGenesis",
	"CheckMortality",
	"CheckNonce",
	"CheckWeight",
	"ChargeTransactionPayment",
}

// DefaultExtra is the extra data of extrinsics of the default Substrate node.
type DefaultExtra struct {
	SpecVersion        uint32
	TransactionVersion uint32
	Nonce              Index
	Tip                uint64
	Era                runtime.Era
	GenesisHash        Hash
	// Checkpoint is the hash of the block a mortal era starts at.
	Checkpoint Hash
}

// Identifiers returns the signed extensions of the default Substrate node.
func (DefaultExtra) Identifiers() []string {
	identifiers := make([]string, len(signedExtensions))
	copy(identifiers, signedExtensions)
	return identifiers
}

// Extra returns the encoded era, compact nonce and compact tip.
func (e DefaultExtra) Extra() ([]byte, error) {
	extra := struct {
		Era   runtime.Era
		Nonce types.UCompact
		Tip   types.UCompact
	}{
		Era:   e.Era,
		Nonce: types.NewUCompactFromUInt(uint64(e.Nonce)),
		Tip:   types.NewUCompactFromUInt(e.Tip),
	}
	b, err := codec.Encode(extra)
	if err != nil {
		return nil, fmt.Errorf("encoding extra: %w", err)
	}
	return b, nil
}

// AdditionalSigned returns the encoded spec version, transaction version,
// genesis hash and era checkpoint hash.
func (e DefaultExtra) AdditionalSigned() ([]byte, error) {
	checkpoint := e.GenesisHash
	if !e.Era.IsImmortal() {
		if e.Checkpoint.IsZero() {
			return nil, fmt.Errorf("%w: %s", ErrCheckpointMissing, e.Era)
		}
		checkpoint = e.Checkpoint
	}

	additional := struct {
		SpecVersion        uint32
		TransactionVersion uint32
		GenesisHash        Hash
		Checkpoint         Hash
	}{e.SpecVersion, e.TransactionVersion, e.GenesisHash, checkpoint}
	b, err := codec.Encode(additional)
	if err != nil {
		return nil, fmt.Errorf("encoding additional signed: %w", err)
	}
	return b, nil
}

func (e DefaultExtra) String() string {
	return fmt.Sprintf("DefaultExtra{SpecVersion: %d, TransactionVersion: %d, Nonce: %d, Tip: %d, Era: %s, Genesis: %s}",
		e.SpecVersion, e.TransactionVersion, e.Nonce, e.Tip, e.Era, e.GenesisHash.Short())
}

var _ chain.SignedExtra = DefaultExtra{}

// ExtraData builds the DefaultExtra of extrinsics signed by accounts
// of the System pallet. The zero value builds immortal extrinsics
// without tip.
type ExtraData struct {
	Config
	// Tip is paid to the block author on top of the fees.
	Tip uint64
	// Era is the validity period of the extrinsics.
	Era runtime.Era
	// Checkpoint is the hash of the block Era starts at, required
	// for mortal eras.
	Checkpoint Hash
}

// NewMortalExtraData returns the extra data builder of extrinsics valid
// for period blocks after the block numbered current and hashed checkpoint.
func NewMortalExtraData(tip uint64, period uint64, current BlockNumber, checkpoint Hash) ExtraData {
	era := runtime.NewMortalEra(period, uint64(current))
	logger.Debugf("mortal era %s from block #%d", era, current)
	return ExtraData{
		Tip:        tip,
		Era:        era,
		Checkpoint: checkpoint,
	}
}

// AccountData returns the System.Account storage reader.
func (ExtraData) AccountData() AccountData {
	return SystemAccount{}
}

// NewExtra returns the extra data of an extrinsic.
func (d ExtraData) NewExtra(specVersion, txVersion uint32, nonce Index, genesisHash Hash) DefaultExtra {
	return DefaultExtra{
		SpecVersion:        specVersion,
		TransactionVersion: txVersion,
		Nonce:              nonce,
		Tip:                d.Tip,
		Era:                d.Era,
		GenesisHash:        genesisHash,
		Checkpoint:         d.Checkpoint,
	}
}

var _ ExtrinsicExtraData = ExtraData{}
