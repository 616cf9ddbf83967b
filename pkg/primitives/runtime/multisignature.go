// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/ecdsa"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/ed25519"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/sr25519"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// MultiSignatureKind is the variant index of a MultiSignature.
type MultiSignatureKind uint8

const (
	// MultiSignatureEd25519 is an Ed25519 signature.
	MultiSignatureEd25519 MultiSignatureKind = iota
	// MultiSignatureSr25519 is an Sr25519 signature.
	MultiSignatureSr25519
	// MultiSignatureEcdsa is an ECDSA/SECP256k1 signature.
	MultiSignatureEcdsa
)

func (k MultiSignatureKind) String() string {
	switch k {
	case MultiSignatureEd25519:
		return "Ed25519"
	case MultiSignatureSr25519:
		return "Sr25519"
	case MultiSignatureEcdsa:
		return "Ecdsa"
	default:
		return fmt.Sprintf("MultiSignatureKind(%d)", uint8(k))
	}
}

// MultiSignature is a signature of one of the supported schemes,
// verifiable against a 32 byte account id.
type MultiSignature struct {
	kind    MultiSignatureKind
	ed25519 ed25519.Signature
	sr25519 sr25519.Signature
	ecdsa   ecdsa.Signature
}

// NewMultiSignatureEd25519 returns the Ed25519 variant of sig.
func NewMultiSignatureEd25519(sig ed25519.Signature) MultiSignature {
	return MultiSignature{kind: MultiSignatureEd25519, ed25519: sig}
}

// NewMultiSignatureSr25519 returns the Sr25519 variant of sig.
func NewMultiSignatureSr25519(sig sr25519.Signature) MultiSignature {
	return MultiSignature{kind: MultiSignatureSr25519, sr25519: sig}
}

// NewMultiSignatureEcdsa returns the Ecdsa variant of sig.
func NewMultiSignatureEcdsa(sig ecdsa.Signature) MultiSignature {
	return MultiSignature{kind: MultiSignatureEcdsa, ecdsa: sig}
}

// Kind returns the signature scheme.
func (ms MultiSignature) Kind() MultiSignatureKind {
	return ms.kind
}

// Verify returns true if ms is a valid signature of msg by signer.
// For ECDSA the signer is the blake2_256 hash of the recovered compressed public key.
func (ms MultiSignature) Verify(msg []byte, signer crypto.AccountID32) bool {
	switch ms.kind {
	case MultiSignatureEd25519:
		return ms.ed25519.Verify(msg, ed25519.Public(signer))
	case MultiSignatureSr25519:
		return ms.sr25519.Verify(msg, sr25519.Public(signer))
	case MultiSignatureEcdsa:
		public, err := ms.ecdsa.Recover(msg)
		if err != nil {
			return false
		}
		return crypto.AccountID32(public.AccountID()) == signer
	default:
		return false
	}
}

func (ms MultiSignature) String() string {
	switch ms.kind {
	case MultiSignatureEd25519:
		return fmt.Sprintf("Ed25519(%s)", ms.ed25519)
	case MultiSignatureSr25519:
		return fmt.Sprintf("Sr25519(%s)", ms.sr25519)
	case MultiSignatureEcdsa:
		return fmt.Sprintf("Ecdsa(%s)", ms.ecdsa)
	default:
		return ms.kind.String()
	}
}

// Encode fulfils the scale.Encodeable interface.
func (ms MultiSignature) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(byte(ms.kind))
	if err != nil {
		return err
	}

	switch ms.kind {
	case MultiSignatureEd25519:
		return ms.ed25519.Encode(encoder)
	case MultiSignatureSr25519:
		return ms.sr25519.Encode(encoder)
	case MultiSignatureEcdsa:
		return ms.ecdsa.Encode(encoder)
	default:
		return fmt.Errorf("%w: multi signature %d", ErrUnknownVariant, ms.kind)
	}
}

// Decode fulfils the scale.Decodeable interface.
func (ms *MultiSignature) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	decoded := MultiSignature{kind: MultiSignatureKind(b)}
	switch decoded.kind {
	case MultiSignatureEd25519:
		err = decoded.ed25519.Decode(decoder)
	case MultiSignatureSr25519:
		err = decoded.sr25519.Decode(decoder)
	case MultiSignatureEcdsa:
		err = decoded.ecdsa.Decode(decoder)
	default:
		return fmt.Errorf("%w: multi signature %d", ErrUnknownVariant, b)
	}
	if err != nil {
		return err
	}

	*ms = decoded
	return nil
}

// TypeInfo fulfils the scaleinfo.TypeInfo interface.
func (MultiSignature) TypeInfo() scaleinfo.Type {
	return scaleinfo.Type{
		Path: []string{"sp_runtime", "MultiSignature"},
		Def: scaleinfo.DefVariant{Variants: []scaleinfo.Variant{
			{Name: "Ed25519", Index: 0, Fields: []scaleinfo.Field{{Type: scaleinfo.ByteArray(ed25519.SignatureLength, "sp_core", "ed25519", "Signature")}}},
			{Name: "Sr25519", Index: 1, Fields: []scaleinfo.Field{{Type: scaleinfo.ByteArray(sr25519.SignatureLength, "sp_core", "sr25519", "Signature")}}},
			{Name: "Ecdsa", Index: 2, Fields: []scaleinfo.Field{{Type: scaleinfo.ByteArray(ecdsa.SignatureLength, "sp_core", "ecdsa", "Signature")}}},
		}},
	}
}

var _ Verify[crypto.AccountID32] = MultiSignature{}
