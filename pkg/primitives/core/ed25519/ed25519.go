// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	// PublicKeyLength is the length of an ed25519 public key.
	PublicKeyLength = ed25519.PublicKeySize
	// SignatureLength is the length of an ed25519 signature.
	SignatureLength = ed25519.SignatureSize
)

// Public is an ed25519 public key.
type Public [PublicKeyLength]byte

// Signature is an ed25519 signature.
type Signature [SignatureLength]byte

// Verify returns true if sig is a valid signature of msg by public.
func (sig Signature) Verify(msg []byte, public Public) bool {
	return ed25519.Verify(public[:], msg, sig[:])
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

// NewSignature returns the signature of a 64 byte slice.
func NewSignature(b []byte) (sig Signature, err error) {
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("ed25519 signature must be %d bytes, got %d", SignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}
