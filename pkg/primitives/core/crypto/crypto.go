// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hashing"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/btcsuite/btcutil/base58"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	ErrInvalidLength   = errors.New("invalid length")
	ErrBadBase58       = errors.New("invalid base58 string")
	ErrInvalidChecksum = errors.New("invalid SS58 checksum")
	ErrInvalidPrefix   = errors.New("invalid SS58 prefix")
	ErrFormatMismatch  = errors.New("SS58 format mismatch")
)

// Ss58AddressFormat is the network identifier prefixed to SS58 addresses.
type Ss58AddressFormat uint16

// Well known SS58 address formats.
const (
	PolkadotAccount  Ss58AddressFormat = 0
	KusamaAccount    Ss58AddressFormat = 2
	SubstrateAccount Ss58AddressFormat = 42
)

// maxSs58Format is the largest identifier expressible in the two byte prefix form.
const maxSs58Format = 0x3fff

var ss58Prefix = []byte("SS58PRE")

// AccountID32 is an opaque 32 byte account identifier, usually a public key.
type AccountID32 [32]byte

// NewAccountID32 returns the account id of a 32 byte slice.
func NewAccountID32(b []byte) (AccountID32, error) {
	var id AccountID32
	if len(b) != len(id) {
		return id, fmt.Errorf("%w: account id must be %d bytes, got %d", ErrInvalidLength, len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// NewAccountID32FromString parses either a SS58 address of any format or
// a 0x prefixed hex string.
func NewAccountID32FromString(s string) (AccountID32, error) {
	if strings.HasPrefix(s, "0x") {
		b, err := codec.HexToBytes(s)
		if err != nil {
			return AccountID32{}, err
		}
		return NewAccountID32(b)
	}
	id, _, err := FromSS58(s)
	return id, err
}

// ToRawVec returns a copy of the raw bytes.
func (a AccountID32) ToRawVec() []byte {
	b := make([]byte, len(a))
	copy(b, a[:])
	return b
}

// ToSS58 encodes the account id as a SS58 address for the network format.
func (a AccountID32) ToSS58(format Ss58AddressFormat) string {
	var prefix []byte
	switch {
	case format < 64:
		prefix = []byte{byte(format)}
	default:
		format &= maxSs58Format
		first := byte((format&0b0000_0000_1111_1100)>>2) | 0b0100_0000
		second := byte(format>>8) | byte((format&0b0000_0000_0000_0011)<<6)
		prefix = []byte{first, second}
	}

	payload := append(prefix, a[:]...)
	checksum := ss58Checksum(payload)
	return base58.Encode(append(payload, checksum[:2]...))
}

// String returns the generic substrate SS58 address.
func (a AccountID32) String() string {
	return a.ToSS58(SubstrateAccount)
}

// Encode fulfils the scale.Encodeable interface.
func (a AccountID32) Encode(encoder scale.Encoder) error {
	return encoder.Write(a[:])
}

// Decode fulfils the scale.Decodeable interface.
func (a *AccountID32) Decode(decoder scale.Decoder) error {
	return decoder.Read(a[:])
}

// MarshalJSON encodes the account id as its generic SS58 address.
func (a AccountID32) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts SS58 addresses and 0x prefixed hex strings.
func (a *AccountID32) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	id, err := NewAccountID32FromString(s)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// TypeInfo fulfils the scaleinfo.TypeInfo interface.
func (AccountID32) TypeInfo() scaleinfo.Type {
	return scaleinfo.ByteArray(32, "sp_core", "crypto", "AccountId32")
}

// FromSS58 decodes a SS58 address, returning the account id and the network format.
func FromSS58(address string) (id AccountID32, format Ss58AddressFormat, err error) {
	data := base58.Decode(address)
	if len(data) < 2 {
		return id, 0, fmt.Errorf("%w: %q", ErrBadBase58, address)
	}

	var prefixLength int
	switch {
	case data[0] < 64:
		prefixLength = 1
		format = Ss58AddressFormat(data[0])
	case data[0] < 128:
		prefixLength = 2
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b0011_1111
		format = Ss58AddressFormat(lower) | Ss58AddressFormat(upper)<<8
	default:
		return id, 0, fmt.Errorf("%w: %d", ErrInvalidPrefix, data[0])
	}

	const checksumLength = 2
	if len(data) != prefixLength+len(id)+checksumLength {
		return id, 0, fmt.Errorf("%w: address decodes to %d bytes", ErrInvalidLength, len(data))
	}

	payload := data[:len(data)-checksumLength]
	checksum := ss58Checksum(payload)
	if !bytes.Equal(checksum[:checksumLength], data[len(data)-checksumLength:]) {
		return id, 0, fmt.Errorf("%w: %s", ErrInvalidChecksum, address)
	}

	copy(id[:], payload[prefixLength:])
	return id, format, nil
}

// FromSS58WithFormat decodes a SS58 address and checks it belongs to the network format.
func FromSS58WithFormat(address string, expected Ss58AddressFormat) (AccountID32, error) {
	id, format, err := FromSS58(address)
	if err != nil {
		return id, err
	}
	if format != expected {
		return id, fmt.Errorf("%w: expected %d, got %d", ErrFormatMismatch, expected, format)
	}
	return id, nil
}

func ss58Checksum(payload []byte) [64]byte {
	return hashing.Blake2_512(append(append([]byte{}, ss58Prefix...), payload...))
}
