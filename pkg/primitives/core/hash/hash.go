// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash

import (
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// H256Length is the byte length of a H256.
const H256Length = 32

// H256 is a fixed-size uninterpreted hash type with 32 bytes (256 bits) size.
// It is backed by a string so that it is ordered and usable as a map key.
//
// The zero hash is the empty string, so that the zero value of H256 equals
// the all zero hash. Values must be built with the constructors or decoded,
// which hold every H256 either empty or 32 bytes long and not all zero.
type H256 string

// NewH256FromBytes returns the H256 of b, which is truncated
// or right padded with zeros to 32 bytes.
func NewH256FromBytes(b []byte) H256 {
	var arr [H256Length]byte
	copy(arr[:], b)
	if arr == [H256Length]byte{} {
		return ""
	}
	return H256(arr[:])
}

// NewH256FromHex parses a 0x prefixed hex string of 32 bytes.
func NewH256FromHex(s string) (H256, error) {
	b, err := codec.HexToBytes(s)
	if err != nil {
		return "", err
	}
	if len(b) != H256Length {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, H256Length, len(b))
	}
	return NewH256FromBytes(b), nil
}

// MustNewH256FromHex parses a 0x prefixed hex string and panics on failure.
func MustNewH256FromHex(s string) H256 {
	h, err := NewH256FromHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Bytes returns the 32 bytes of the hash.
func (h256 H256) Bytes() []byte {
	arr := h256.Array()
	return arr[:]
}

// Array returns the hash as a byte array.
func (h256 H256) Array() (arr [H256Length]byte) {
	copy(arr[:], h256)
	return arr
}

// IsZero returns true if all bytes of the hash are zero.
func (h256 H256) IsZero() bool {
	return h256.Array() == [H256Length]byte{}
}

// String returns the 0x prefixed hex representation of H256
func (h256 H256) String() string {
	return codec.BytesToHex(h256.Bytes())
}

// Short returns the first and last 4 bytes of the hex representation.
func (h256 H256) Short() string {
	b := h256.Bytes()
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", b[:nBytes], b[len(b)-nBytes:])
}

// Encode fulfils the scale.Encodeable interface.
func (h256 H256) Encode(encoder scale.Encoder) error {
	return encoder.Write(h256.Bytes())
}

// Decode fulfils the scale.Decodeable interface.
func (h256 *H256) Decode(decoder scale.Decoder) error {
	buf := make([]byte, H256Length)
	err := decoder.Read(buf)
	if err != nil {
		return err
	}
	*h256 = NewH256FromBytes(buf)
	return nil
}

// MarshalJSON encodes the hash as a 0x prefixed hex string.
func (h256 H256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h256.String())
}

// UnmarshalJSON decodes a 0x prefixed hex string.
func (h256 *H256) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	h, err := NewH256FromHex(s)
	if err != nil {
		return err
	}
	*h256 = h
	return nil
}

// TypeInfo fulfils the scaleinfo.TypeInfo interface.
func (H256) TypeInfo() scaleinfo.Type {
	return scaleinfo.ByteArray(H256Length, "primitive_types", "H256")
}
