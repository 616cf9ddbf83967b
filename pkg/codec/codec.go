// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package codec is the SCALE codec used by every runtime type of the client.
// It wraps the go-substrate-rpc-client scale encoder so callers only deal in
// byte slices and hex strings.
package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	// ErrTrailingBytes is returned when a value was decoded without consuming all input.
	ErrTrailingBytes = errors.New("trailing bytes after decoding")
	// ErrRoundTrip is returned when a value does not re-encode to the bytes it was decoded from.
	ErrRoundTrip = errors.New("value does not round trip")
	// ErrInvalidHex is returned for hex strings that are not 0x prefixed.
	ErrInvalidHex = errors.New("hex string is not 0x prefixed")
	// ErrLengthOverflow is returned for length prefixes that do not fit in memory.
	ErrLengthOverflow = errors.New("length prefix overflows")
)

// Encode returns the SCALE encoding of v.
func Encode(v interface{}) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buffer).Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	return buffer.Bytes(), nil
}

// MustEncode returns the SCALE encoding of v and panics if it fails to encode.
func MustEncode(v interface{}) []byte {
	encoded, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return encoded
}

// DecodeInto decodes data into target, which must be a pointer.
// All of data must be consumed.
func DecodeInto(data []byte, target interface{}) error {
	reader := bytes.NewReader(data)
	err := scale.NewDecoder(reader).Decode(target)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", target, err)
	}
	if reader.Len() != 0 {
		return fmt.Errorf("%w: %d bytes left decoding %T", ErrTrailingBytes, reader.Len(), target)
	}
	return nil
}

// Decode decodes data into a new value of type T.
func Decode[T any](data []byte) (value T, err error) {
	err = DecodeInto(data, &value)
	return value, err
}

// EncodeBytes writes b prefixed with its compact encoded length.
func EncodeBytes(encoder scale.Encoder, b []byte) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(b))))
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return encoder.Write(b)
}

// DecodeBytes reads a byte slice prefixed with its compact encoded length.
func DecodeBytes(decoder scale.Decoder) ([]byte, error) {
	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, err
	}
	if !length.IsUint64() || length.Uint64() > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %s", ErrLengthOverflow, length)
	}

	b := make([]byte, length.Uint64())
	if len(b) == 0 {
		// reading zero bytes at the end of the input is an EOF error
		return b, nil
	}
	err = decoder.Read(b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeToHex returns the 0x prefixed hex string of the SCALE encoding of v.
func EncodeToHex(v interface{}) (string, error) {
	encoded, err := Encode(v)
	if err != nil {
		return "", err
	}
	return BytesToHex(encoded), nil
}

// DecodeFromHex decodes a 0x prefixed hex string holding the SCALE encoding of a T.
func DecodeFromHex[T any](s string) (value T, err error) {
	data, err := HexToBytes(s)
	if err != nil {
		return value, err
	}
	return Decode[T](data)
}

// Equal reports whether a and b have the same SCALE encoding.
// Values that fail to encode are never equal.
func Equal(a, b interface{}) bool {
	encodedA, err := Encode(a)
	if err != nil {
		return false
	}
	encodedB, err := Encode(b)
	if err != nil {
		return false
	}
	return bytes.Equal(encodedA, encodedB)
}

// roundTripOptions compare decoded values field by field, unexported fields
// included, treating nil and empty slices alike and big integers by value.
var roundTripOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return (a == nil || a.Sign() == 0) && (b == nil || b.Sign() == 0)
		}
		return a.Cmp(b) == 0
	}),
}

// RoundTrip encodes value, decodes the result into a new T and encodes
// that again. It returns the decoded value and ErrRoundTrip if the decoded
// value differs from value or if the two encodings differ.
func RoundTrip[T any](value T) (decoded T, err error) {
	encoded, err := Encode(value)
	if err != nil {
		return decoded, err
	}

	decoded, err = Decode[T](encoded)
	if err != nil {
		return decoded, err
	}

	if diff := cmp.Diff(value, decoded, roundTripOptions); diff != "" {
		return decoded, fmt.Errorf("%w: %T decodes to a different value (-original +decoded):\n%s",
			ErrRoundTrip, value, diff)
	}

	reEncoded, err := Encode(decoded)
	if err != nil {
		return decoded, err
	}

	if !bytes.Equal(encoded, reEncoded) {
		return decoded, fmt.Errorf("%w: %T encodes to 0x%x then 0x%x",
			ErrRoundTrip, value, encoded, reEncoded)
	}
	return decoded, nil
}

// DecodeJSON decodes the JSON representation of a T, as returned
// by the node RPC for headers and extrinsics.
func DecodeJSON[T any](data []byte) (value T, err error) {
	err = json.Unmarshal(data, &value)
	if err != nil {
		return value, fmt.Errorf("decoding JSON into %T: %w", value, err)
	}
	return value, nil
}

// BytesToHex returns the 0x prefixed hex string of b.
func BytesToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// HexToBytes decodes a 0x prefixed hex string. An odd number of
// digits is padded with a leading zero.
func HexToBytes(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	s = s[2:]
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}
	return b, nil
}

// MustHexToBytes decodes a 0x prefixed hex string and panics on failure.
func MustHexToBytes(s string) []byte {
	b, err := HexToBytes(s)
	if err != nil {
		panic(err)
	}
	return b
}
