// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ecdsa

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hashing"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	secp256k1 "github.com/ethereum/go-ethereum/crypto"
)

const (
	// PublicKeyLength is the length of a compressed secp256k1 public key.
	PublicKeyLength = 33
	// SignatureLength is the length of a recoverable signature: r, s and the recovery id.
	SignatureLength = 65
)

// Public is a compressed secp256k1 public key.
type Public [PublicKeyLength]byte

// Signature is a recoverable secp256k1 signature over the blake2_256 hash of a message.
type Signature [SignatureLength]byte

// Recover returns the compressed public key that produced sig over msg.
func (sig Signature) Recover(msg []byte) (public Public, err error) {
	messageHash := hashing.Blake2_256(msg)
	pub, err := secp256k1.SigToPub(messageHash[:], sig.normalised())
	if err != nil {
		return public, fmt.Errorf("recovering public key: %w", err)
	}
	copy(public[:], secp256k1.CompressPubkey(pub))
	return public, nil
}

// Verify returns true if sig is a valid signature of msg by public.
func (sig Signature) Verify(msg []byte, public Public) bool {
	recovered, err := sig.Recover(msg)
	if err != nil {
		return false
	}
	return bytes.Equal(recovered[:], public[:])
}

// normalised returns the signature with a recovery id of 0 or 1,
// accepting the legacy 27/28 form as well.
func (sig Signature) normalised() []byte {
	out := make([]byte, SignatureLength)
	copy(out, sig[:])
	if out[64] >= 27 {
		out[64] -= 27
	}
	return out
}

// AccountID returns the 32 byte account identifier of a public key,
// the blake2_256 hash of its compressed form.
func (p Public) AccountID() [32]byte {
	return hashing.Blake2_256(p[:])
}

func (sig Signature) String() string {
	return codec.BytesToHex(sig[:])
}

// Encode fulfils the scale.Encodeable interface.
func (sig Signature) Encode(encoder scale.Encoder) error {
	return encoder.Write(sig[:])
}

// Decode fulfils the scale.Decodeable interface.
func (sig *Signature) Decode(decoder scale.Decoder) error {
	return decoder.Read(sig[:])
}

// NewSignature returns the signature of a 65 byte slice.
func NewSignature(b []byte) (sig Signature, err error) {
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("ecdsa signature must be %d bytes, got %d", SignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}
