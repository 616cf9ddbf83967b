// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package chain defines the runtime configuration of a chain: the types a client
// must agree on with the runtime to read its storage and submit extrinsics.
//
// A chain integration is a zero sized type implementing Config. Its Types method
// binds every associated type at once, so that a binding whose types do not fit
// together, for instance a header numbered differently from the chain, fails to
// compile.
package chain

import (
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Parameter is implemented by types exchanged with the runtime.
// They are SCALE encodable and printable for debugging. Two parameters
// are equal if their encodings are equal.
type Parameter interface {
	scale.Encodeable
	fmt.Stringer
}

// Decodable is the pointer type of a SCALE decodable T.
type Decodable[T any] interface {
	*T
	scale.Decodeable
}

// Deserializable is the pointer type of a T decodable from SCALE and
// from the JSON representation served by the node RPC.
type Deserializable[T any] interface {
	*T
	scale.Decodeable
	json.Unmarshaler
}

// AccountID is the type identifying an account.
type AccountID interface {
	comparable
	Parameter
}

// Address is the type used to refer to an account in an extrinsic.
type Address interface {
	comparable
	scale.Encodeable
}

// Header is the block header type, numbered with N and hashed to H.
type Header[N runtime.Number, H runtime.Hash] interface {
	runtime.Header[N, H]
	Parameter
}

// Signature is the type of extrinsic signatures, verifiable against an account id A.
type Signature[A any] interface {
	runtime.Verify[A]
	scale.Encodeable
}

// Extrinsic is the extrinsic type of the chain.
type Extrinsic interface {
	runtime.Extrinsic
	Parameter
}

// Config is the runtime configuration of a chain.
//
//   - I is the account index (nonce) type.
//   - N is the block number type.
//   - H is the output of the hashing algorithm Hashing.
//   - A is the account id type.
//   - Addr is the address format of the chain.
//   - Hdr is the block header type, hashed to H and numbered with N.
//   - S is the extrinsic signature type, verifiable against A.
//   - X is the extrinsic type.
//
// PH, PA, PAddr, PHdr and PX are the pointer types of H, A, Addr, Hdr and X.
// They carry the decoding side of the codec, so every bound type round trips.
type Config[I runtime.Index, N runtime.Number, H runtime.Hash, PH Deserializable[H],
	Hashing runtime.Hasher[H], A AccountID, PA Decodable[A], Addr Address, PAddr Decodable[Addr],
	Hdr Header[N, H], PHdr Deserializable[Hdr], S Signature[A], X Extrinsic, PX Deserializable[X]] interface {
	Types() Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]
}

// Types is the zero sized bundle of the types bound by a Config.
type Types[I runtime.Index, N runtime.Number, H runtime.Hash, PH Deserializable[H],
	Hashing runtime.Hasher[H], A AccountID, PA Decodable[A], Addr Address, PAddr Decodable[Addr],
	Hdr Header[N, H], PHdr Deserializable[Hdr], S Signature[A], X Extrinsic, PX Deserializable[X]] struct{}

// Hashing returns the hashing algorithm.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) Hashing() Hashing {
	return *new(Hashing)
}

// HashOf returns the hash of the SCALE encoding of v, or an error if v cannot be encoded.
func (t Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) HashOf(v any) (h H, err error) {
	encoded, err := codec.Encode(v)
	if err != nil {
		return h, err
	}
	return t.Hashing().Hash(encoded), nil
}

// ParseBlockNumber parses a decimal or hexadecimal block number.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) ParseBlockNumber(s string) (N, error) {
	return runtime.ParseNumber[N](s)
}

// VerifySignature returns true if signature is a valid signature of msg by signer.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) VerifySignature(
	signature S, msg []byte, signer A) bool {
	return signature.Verify(msg, signer)
}

// DecodeHash decodes the SCALE encoding of a hash.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) DecodeHash(data []byte) (H, error) {
	return decode[H, PH](data)
}

// HashFromJSON decodes the RPC representation of a hash.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) HashFromJSON(data []byte) (H, error) {
	return decodeJSON[H, PH](data)
}

// DecodeAccountID decodes the SCALE encoding of an account id.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) DecodeAccountID(data []byte) (A, error) {
	return decode[A, PA](data)
}

// DecodeAddress decodes the SCALE encoding of an address.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) DecodeAddress(data []byte) (Addr, error) {
	return decode[Addr, PAddr](data)
}

// DecodeHeader decodes the SCALE encoding of a header.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) DecodeHeader(data []byte) (Hdr, error) {
	return decode[Hdr, PHdr](data)
}

// HeaderFromJSON decodes the RPC representation of a header.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) HeaderFromJSON(data []byte) (Hdr, error) {
	return decodeJSON[Hdr, PHdr](data)
}

// DecodeExtrinsic decodes the SCALE encoding of an extrinsic.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) DecodeExtrinsic(data []byte) (X, error) {
	return decode[X, PX](data)
}

// ExtrinsicFromJSON decodes the RPC representation of an extrinsic.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) ExtrinsicFromJSON(data []byte) (X, error) {
	return decodeJSON[X, PX](data)
}

func decode[T any, PT Decodable[T]](data []byte) (value T, err error) {
	err = codec.DecodeInto(data, PT(&value))
	return value, err
}

func decodeJSON[T any, PT Deserializable[T]](data []byte) (value T, err error) {
	err = PT(&value).UnmarshalJSON(data)
	if err != nil {
		return value, fmt.Errorf("decoding JSON into %T: %w", value, err)
	}
	return value, nil
}

// Description describes the types bound by a Config.
type Description struct {
	Index       scaleinfo.Type
	BlockNumber scaleinfo.Type
	Hash        scaleinfo.Type
	AccountID   scaleinfo.Type
	Address     scaleinfo.Type
	Header      scaleinfo.Type
	Signature   scaleinfo.Type
	Extrinsic   scaleinfo.Type
}

// Describe returns the type descriptions of the bound types.
func (Types[I, N, H, PH, Hashing, A, PA, Addr, PAddr, Hdr, PHdr, S, X, PX]) Describe() Description {
	return Description{
		Index:       scaleinfo.Of[I](),
		BlockNumber: scaleinfo.Of[N](),
		Hash:        scaleinfo.Of[H](),
		AccountID:   scaleinfo.Of[A](),
		Address:     scaleinfo.Of[Addr](),
		Header:      scaleinfo.Of[Hdr](),
		Signature:   scaleinfo.Of[S](),
		Extrinsic:   scaleinfo.Of[X](),
	}
}
