// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
)

// SignedExtra is the extra data of a signed extrinsic.
type SignedExtra interface {
	// Identifiers returns the names of the signed extensions, in order.
	Identifiers() []string
	// Extra returns the encoded data included in the extrinsic.
	Extra() ([]byte, error)
	// AdditionalSigned returns the encoded data included in the signed
	// payload but not in the extrinsic.
	AdditionalSigned() ([]byte, error)
}

// ExtrinsicExtraData builds the extra data E of the extrinsics of one chain,
// looking up nonces with the AccountData of the same chain.
type ExtrinsicExtraData[I runtime.Index, N runtime.Number, H runtime.Hash, PH Deserializable[H],
	Hashing runtime.Hasher[H], A AccountID, PA Decodable[A], Addr Address, PAddr Decodable[Addr],
	Hdr Header[N, H], PHdr Deserializable[Hdr], S Signature[A], X Extrinsic, PX Deserializable[X],
	V any, E SignedExtra] interface {
	Config[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]
	// AccountData returns the account data used to look up nonces.
	AccountData() AccountData[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX, V]
	// NewExtra returns the extra data of an extrinsic.
	NewExtra(specVersion, txVersion uint32, nonce I, genesisHash H) E
}

// RuntimeVersion holds the versions of the runtime an extrinsic is built for.
type RuntimeVersion struct {
	SpecVersion        uint32 `json:"specVersion"`
	TransactionVersion uint32 `json:"transactionVersion"`
}

// PrepareExtra looks up the nonce of accountID and builds the
// extra data of its next extrinsic.
func PrepareExtra[I runtime.Index, N runtime.Number, H runtime.Hash, PH Deserializable[H],
	Hashing runtime.Hasher[H], A AccountID, PA Decodable[A], Addr Address, PAddr Decodable[Addr],
	Hdr Header[N, H], PHdr Deserializable[Hdr], S Signature[A], X Extrinsic, PX Deserializable[X],
	V any, E SignedExtra](ctx context.Context, reader storage.Reader,
	extraData ExtrinsicExtraData[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX, V, E],
	accountID A, version RuntimeVersion, genesisHash H) (extra E, err error) {
	nonce, err := AccountNonce(ctx, reader, extraData.AccountData(), accountID)
	if err != nil {
		return extra, fmt.Errorf("getting nonce: %w", err)
	}

	return extraData.NewExtra(version.SpecVersion, version.TransactionVersion, nonce, genesisHash), nil
}
