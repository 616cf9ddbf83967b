// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package generic

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Header is an abstraction over a block header for a substrate chain.
// The block number is compact encoded.
type Header[N runtime.Number, H runtime.Hash, Hasher runtime.Hasher[H]] struct {
	parentHash     H
	number         N
	stateRoot      H
	extrinsicsRoot H
	digest         Digest
}

// NewHeader is the constructor for `Header`.
func NewHeader[N runtime.Number, H runtime.Hash, Hasher runtime.Hasher[H]](
	number N, extrinsicsRoot, stateRoot, parentHash H, digest Digest) Header[N, H, Hasher] {
	return Header[N, H, Hasher]{
		parentHash:     parentHash,
		number:         number,
		stateRoot:      stateRoot,
		extrinsicsRoot: extrinsicsRoot,
		digest:         digest,
	}
}

// Number returns the block number.
func (h Header[N, H, Hasher]) Number() N {
	return h.number
}

// ParentHash returns the parent hash.
func (h Header[N, H, Hasher]) ParentHash() H {
	return h.parentHash
}

// StateRoot returns the state root.
func (h Header[N, H, Hasher]) StateRoot() H {
	return h.stateRoot
}

// ExtrinsicsRoot returns the extrinsics root.
func (h Header[N, H, Hasher]) ExtrinsicsRoot() H {
	return h.extrinsicsRoot
}

// Digest returns the digest.
func (h Header[N, H, Hasher]) Digest() Digest {
	return h.digest
}

// Hash returns the hash of the header, computed with Hasher over its SCALE encoding.
func (h Header[N, H, Hasher]) Hash() H {
	hasher := *new(Hasher)
	return hasher.HashEncoded(h)
}

func (h Header[N, H, Hasher]) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		h.parentHash, h.number, h.stateRoot, h.extrinsicsRoot, h.digest.Logs, h.Hash())
}

// Encode fulfils the scale.Encodeable interface.
func (h Header[N, H, Hasher]) Encode(encoder scale.Encoder) error {
	err := h.parentHash.Encode(encoder)
	if err != nil {
		return err
	}
	err = encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(h.number)))
	if err != nil {
		return err
	}
	err = h.stateRoot.Encode(encoder)
	if err != nil {
		return err
	}
	err = h.extrinsicsRoot.Encode(encoder)
	if err != nil {
		return err
	}
	return h.digest.Encode(encoder)
}

// Decode fulfils the scale.Decodeable interface.
func (h *Header[N, H, Hasher]) Decode(decoder scale.Decoder) error {
	var decoded Header[N, H, Hasher]
	err := decoder.Decode(&decoded.parentHash)
	if err != nil {
		return fmt.Errorf("decoding parent hash: %w", err)
	}

	number, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("decoding block number: %w", err)
	}
	decoded.number, err = toNumber[N](number)
	if err != nil {
		return err
	}

	err = decoder.Decode(&decoded.stateRoot)
	if err != nil {
		return fmt.Errorf("decoding state root: %w", err)
	}
	err = decoder.Decode(&decoded.extrinsicsRoot)
	if err != nil {
		return fmt.Errorf("decoding extrinsics root: %w", err)
	}
	err = decoded.digest.Decode(decoder)
	if err != nil {
		return fmt.Errorf("decoding digest: %w", err)
	}

	*h = decoded
	return nil
}

func toNumber[N runtime.Number](number *big.Int) (N, error) {
	var zero N
	if !number.IsUint64() || uint64(N(number.Uint64())) != number.Uint64() {
		return zero, fmt.Errorf("%w: %s does not fit in %T", ErrNumberOverflow, number, zero)
	}
	return N(number.Uint64()), nil
}

type headerJSON struct {
	ParentHash     string `json:"parentHash"`
	Number         string `json:"number"`
	StateRoot      string `json:"stateRoot"`
	ExtrinsicsRoot string `json:"extrinsicsRoot"`
	Digest         Digest `json:"digest"`
}

// MarshalJSON encodes the header as returned by chain_getHeader,
// hashes in hex and the block number as a hex quantity.
func (h Header[N, H, Hasher]) MarshalJSON() ([]byte, error) {
	return json.Marshal(headerJSON{
		ParentHash:     h.parentHash.String(),
		Number:         fmt.Sprintf("0x%x", uint64(h.number)),
		StateRoot:      h.stateRoot.String(),
		ExtrinsicsRoot: h.extrinsicsRoot.String(),
		Digest:         h.digest,
	})
}

// UnmarshalJSON decodes the chain_getHeader representation of a header.
func (h *Header[N, H, Hasher]) UnmarshalJSON(data []byte) error {
	var raw headerJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	var decoded Header[N, H, Hasher]
	decoded.number, err = runtime.ParseNumber[N](raw.Number)
	if err != nil {
		return err
	}
	for _, field := range [...]struct {
		name   string
		value  string
		target *H
	}{
		{name: "parent hash", value: raw.ParentHash, target: &decoded.parentHash},
		{name: "state root", value: raw.StateRoot, target: &decoded.stateRoot},
		{name: "extrinsics root", value: raw.ExtrinsicsRoot, target: &decoded.extrinsicsRoot},
	} {
		*field.target, err = codec.DecodeFromHex[H](field.value)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", field.name, err)
		}
	}
	decoded.digest = raw.Digest

	*h = decoded
	return nil
}

// TypeInfo fulfils the scaleinfo.TypeInfo interface.
func (Header[N, H, Hasher]) TypeInfo() scaleinfo.Type {
	hashType := scaleinfo.Of[H]()
	return scaleinfo.Type{
		Path: []string{"sp_runtime", "generic", "header", "Header"},
		Def: scaleinfo.DefComposite{Fields: []scaleinfo.Field{
			{Name: "parent_hash", TypeName: "Hash::Output", Type: hashType},
			{Name: "number", TypeName: "Number", Type: scaleinfo.Compact(scaleinfo.Of[N]())},
			{Name: "state_root", TypeName: "Hash::Output", Type: hashType},
			{Name: "extrinsics_root", TypeName: "Hash::Output", Type: hashType},
			{Name: "digest", TypeName: "Digest", Type: scaleinfo.Type{
				Path: []string{"sp_runtime", "generic", "digest", "Digest"},
				Def: scaleinfo.DefComposite{Fields: []scaleinfo.Field{
					{Name: "logs", TypeName: "Vec<DigestItem>", Type: scaleinfo.Type{Def: scaleinfo.DefSequence{
						Type: scaleinfo.Type{Path: []string{"sp_runtime", "generic", "digest", "DigestItem"}},
					}}},
				}},
			}},
		}},
	}
}

var _ runtime.Header[uint32, hash.H256] = Header[uint32, hash.H256, runtime.BlakeTwo256]{}
