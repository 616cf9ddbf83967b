// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"fmt"
	"math/big"

	"github.com/ChainSafe/gossamer-client/pkg/storage"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// AccountBalance holds the balances of an account.
type AccountBalance struct {
	Free     types.U128
	Reserved types.U128
	Frozen   types.U128
	Flags    types.U128
}

// AccountInfo is the value of the System.Account storage map.
type AccountInfo struct {
	Nonce       Index
	Consumers   uint32
	Providers   uint32
	Sufficients uint32
	Data        AccountBalance
}

// NewAccountInfo returns the information of an account with no
// transactions, references nor balance.
func NewAccountInfo() AccountInfo {
	return AccountInfo{
		Data: AccountBalance{
			Free:     types.NewU128(*big.NewInt(0)),
			Reserved: types.NewU128(*big.NewInt(0)),
			Frozen:   types.NewU128(*big.NewInt(0)),
			Flags:    types.NewU128(*big.NewInt(0)),
		},
	}
}

func (a AccountInfo) String() string {
	return fmt.Sprintf("AccountInfo{Nonce: %d, Consumers: %d, Providers: %d, Sufficients: %d, Free: %s, Reserved: %s}",
		a.Nonce, a.Consumers, a.Providers, a.Sufficients, a.Data.Free, a.Data.Reserved)
}

// AccountEntry is the System.Account storage entry of a single account.
type AccountEntry struct {
	AccountID AccountID
}

// Pallet returns System.
func (AccountEntry) Pallet() string { return "System" }

// Item returns Account.
func (AccountEntry) Item() string { return "Account" }

// KeyParts returns the account id hashed with blake2_128_concat.
func (e AccountEntry) KeyParts() []storage.KeyPart {
	return []storage.KeyPart{storage.NewKeyPart(storage.Blake2_128Concat, e.AccountID)}
}

// Default returns the information of an account absent from storage.
func (AccountEntry) Default() AccountInfo {
	return NewAccountInfo()
}

var _ storage.Entry[AccountInfo] = AccountEntry{}

// SystemAccount reads nonces from the System.Account storage map.
type SystemAccount struct {
	Config
}

// StorageEntry returns the System.Account entry of accountID.
func (SystemAccount) StorageEntry(accountID AccountID) storage.Entry[AccountInfo] {
	return AccountEntry{AccountID: accountID}
}

// Nonce returns the nonce of the account information.
func (SystemAccount) Nonce(value AccountInfo) Index {
	return value.Nonce
}

var _ AccountData = SystemAccount{}
