// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"fmt"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	// PublicKeyLength is the length of a sr25519 public key.
	PublicKeyLength = 32
	// SignatureLength is the length of a sr25519 signature.
	SignatureLength = 64
)

// SigningContext is the schnorrkel context substrate signs messages with.
var SigningContext = []byte("substrate")

// Public is a sr25519 public key.
type Public [PublicKeyLength]byte

// Signature is a sr25519 signature.
type Signature [SignatureLength]byte

// Verify returns true if sig is a valid signature of msg by public.
// Malformed keys or signatures are reported as invalid.
func (sig Signature) Verify(msg []byte, public Public) bool {
	pub := new(schnorrkel.PublicKey)
	err := pub.Decode(public)
	if err != nil {
		return false
	}

	s := new(schnorrkel.Signature)
	err = s.Decode(sig)
	if err != nil {
		return false
	}

	transcript := schnorrkel.NewSigningContext(SigningContext, msg)
	ok, err := pub.Verify(s, transcript)
	return err == nil && ok
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
		return sig, fmt.Errorf("sr25519 signature must be %d bytes, got %d", SignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}
