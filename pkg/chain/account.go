// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
)

// AccountData describes where the data of an account of one chain, holding
// V values, is stored and how to read its nonce. It is bound to the Config
// of that chain, so account data of another chain cannot be used with it.
type AccountData[I runtime.Index, N runtime.Number, H runtime.Hash, PH Deserializable[H],
	Hashing runtime.Hasher[H], A AccountID, PA Decodable[A], Addr Address, PAddr Decodable[Addr],
	Hdr Header[N, H], PHdr Deserializable[Hdr], S Signature[A], X Extrinsic, PX Deserializable[X],
	V any] interface {
	Config[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]
	// StorageEntry returns the storage entry of the data of accountID.
	StorageEntry(accountID A) storage.Entry[V]
	// Nonce returns the nonce stored in value. It must not have side effects.
	Nonce(value V) I
}

// AccountNonce reads the nonce of accountID from reader. An account
// absent from storage has the nonce of the entry default value.
func AccountNonce[I runtime.Index, N runtime.Number, H runtime.Hash, PH Deserializable[H],
	Hashing runtime.Hasher[H], A AccountID, PA Decodable[A], Addr Address, PAddr Decodable[Addr],
	Hdr Header[N, H], PHdr Deserializable[Hdr], S Signature[A], X Extrinsic, PX Deserializable[X],
	V any](ctx context.Context, reader storage.Reader,
	accountData AccountData[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX, V],
	accountID A) (nonce I, err error) {
	entry := accountData.StorageEntry(accountID)
	value, err := storage.FetchOrDefault(ctx, reader, entry)
	if err != nil {
		return nonce, fmt.Errorf("fetching account data: %w", err)
	}

	nonce = accountData.Nonce(value)
	logger.Debugf("nonce of account %s is %d", accountID, nonce)
	return nonce, nil
}
