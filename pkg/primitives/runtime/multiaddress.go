// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"
	"math/big"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// MultiAddressKind is the variant index of a MultiAddress.
type MultiAddressKind uint8

const (
	// MultiAddressID is an account id.
	MultiAddressID MultiAddressKind = iota
	// MultiAddressIndex is an account index.
	MultiAddressIndex
	// MultiAddressRaw is some opaque address type unknown to the runtime.
	MultiAddressRaw
	// MultiAddress32 is a 32 byte address, not necessarily an account id.
	MultiAddress32
	// MultiAddress20 is a 20 byte address, for instance an Ethereum compatible one.
	MultiAddress20
)

func (k MultiAddressKind) String() string {
	switch k {
	case MultiAddressID:
		return "Id"
	case MultiAddressIndex:
		return "Index"
	case MultiAddressRaw:
		return "Raw"
	case MultiAddress32:
		return "Address32"
	case MultiAddress20:
		return "Address20"
	default:
		return fmt.Sprintf("MultiAddressKind(%d)", uint8(k))
	}
}

// MultiAddress is the address format used by the System and Balances pallets
// to refer to an account. The zero value is the Id variant of the zero account.
// Values are comparable.
type MultiAddress struct {
	kind  MultiAddressKind
	id    crypto.AccountID32
	index uint32
	// raw is a string so that MultiAddress stays comparable.
	raw       string
	address32 [32]byte
	address20 [20]byte
}

// NewMultiAddressFromAccountID returns the Id variant of id.
func NewMultiAddressFromAccountID(id crypto.AccountID32) MultiAddress {
	return MultiAddress{kind: MultiAddressID, id: id}
}

// NewMultiAddressFromIndex returns the Index variant of index.
func NewMultiAddressFromIndex(index uint32) MultiAddress {
	return MultiAddress{kind: MultiAddressIndex, index: index}
}

// NewMultiAddressFromRaw returns the Raw variant of raw.
func NewMultiAddressFromRaw(raw []byte) MultiAddress {
	return MultiAddress{kind: MultiAddressRaw, raw: string(raw)}
}

// NewMultiAddress32 returns the Address32 variant of address.
func NewMultiAddress32(address [32]byte) MultiAddress {
	return MultiAddress{kind: MultiAddress32, address32: address}
}

// NewMultiAddress20 returns the Address20 variant of address.
func NewMultiAddress20(address [20]byte) MultiAddress {
	return MultiAddress{kind: MultiAddress20, address20: address}
}

// Kind returns the variant of the address.
func (ma MultiAddress) Kind() MultiAddressKind {
	return ma.kind
}

// AccountID returns the account id of an Id address.
func (ma MultiAddress) AccountID() (id crypto.AccountID32, ok bool) {
	return ma.id, ma.kind == MultiAddressID
}

// Index returns the account index of an Index address.
func (ma MultiAddress) Index() (index uint32, ok bool) {
	return ma.index, ma.kind == MultiAddressIndex
}

// Raw returns the bytes of a Raw, Address32 or Address20 address.
func (ma MultiAddress) Raw() (raw []byte, ok bool) {
	switch ma.kind {
	case MultiAddressRaw:
		return []byte(ma.raw), true
	case MultiAddress32:
		return ma.address32[:], true
	case MultiAddress20:
		return ma.address20[:], true
	default:
		return nil, false
	}
}

func (ma MultiAddress) String() string {
	switch ma.kind {
	case MultiAddressID:
		return ma.id.String()
	case MultiAddressIndex:
		return fmt.Sprintf("Index(%d)", ma.index)
	default:
		raw, _ := ma.Raw()
		return fmt.Sprintf("%s(%s)", ma.kind, codec.BytesToHex(raw))
	}
}

// Encode fulfils the scale.Encodeable interface.
func (ma MultiAddress) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(byte(ma.kind))
	if err != nil {
		return err
	}

	switch ma.kind {
	case MultiAddressID:
		return ma.id.Encode(encoder)
	case MultiAddressIndex:
		return encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(ma.index)))
	case MultiAddressRaw:
		return codec.EncodeBytes(encoder, []byte(ma.raw))
	case MultiAddress32:
		return encoder.Write(ma.address32[:])
	case MultiAddress20:
		return encoder.Write(ma.address20[:])
	default:
		return fmt.Errorf("%w: multi address %d", ErrUnknownVariant, ma.kind)
	}
}

// Decode fulfils the scale.Decodeable interface.
func (ma *MultiAddress) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	decoded := MultiAddress{kind: MultiAddressKind(b)}
	switch decoded.kind {
	case MultiAddressID:
		err = decoded.id.Decode(decoder)
	case MultiAddressIndex:
		var index *big.Int
		index, err = decoder.DecodeUintCompact()
		if err == nil {
			if !index.IsUint64() || index.Uint64() > uint64(^uint32(0)) {
				return fmt.Errorf("account index %s overflows u32", index)
			}
			decoded.index = uint32(index.Uint64())
		}
	case MultiAddressRaw:
		var raw []byte
		raw, err = codec.DecodeBytes(decoder)
		decoded.raw = string(raw)
	case MultiAddress32:
		err = decoder.Read(decoded.address32[:])
	case MultiAddress20:
		err = decoder.Read(decoded.address20[:])
	default:
		return fmt.Errorf("%w: multi address %d", ErrUnknownVariant, b)
	}
	if err != nil {
		return err
	}

	*ma = decoded
	return nil
}

// TypeInfo fulfils the scaleinfo.TypeInfo interface.
func (MultiAddress) TypeInfo() scaleinfo.Type {
	return scaleinfo.Type{
		Path: []string{"sp_runtime", "multiaddress", "MultiAddress"},
		Def: scaleinfo.DefVariant{Variants: []scaleinfo.Variant{
			{Name: "Id", Index: 0, Fields: []scaleinfo.Field{{TypeName: "AccountId", Type: scaleinfo.Of[crypto.AccountID32]()}}},
			{Name: "Index", Index: 1, Fields: []scaleinfo.Field{{TypeName: "AccountIndex", Type: scaleinfo.Compact(scaleinfo.Of[uint32]())}}},
			{Name: "Raw", Index: 2, Fields: []scaleinfo.Field{{TypeName: "Vec<u8>", Type: scaleinfo.Of[[]byte]()}}},
			{Name: "Address32", Index: 3, Fields: []scaleinfo.Field{{TypeName: "[u8; 32]", Type: scaleinfo.Of[[32]byte]()}}},
			{Name: "Address20", Index: 4, Fields: []scaleinfo.Field{{TypeName: "[u8; 20]", Type: scaleinfo.Of[[20]byte]()}}},
		}},
	}
}
