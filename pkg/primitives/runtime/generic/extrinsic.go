// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package generic

import (
	"encoding/json"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// OpaqueExtrinsic is a simple blob holding an extrinsic without committing to its format.
// It encodes as a length prefixed byte vector, which is also how a concrete
// extrinsic type encodes, so the two are interchangeable on the wire.
type OpaqueExtrinsic []byte

// IsSigned returns nil since the signature status of an opaque extrinsic is unknown.
func (OpaqueExtrinsic) IsSigned() *bool {
	return nil
}

func (ox OpaqueExtrinsic) String() string {
	return codec.BytesToHex(ox)
}

// Encode fulfils the scale.Encodeable interface.
func (ox OpaqueExtrinsic) Encode(encoder scale.Encoder) error {
	return codec.EncodeBytes(encoder, ox)
}

// Decode fulfils the scale.Decodeable interface.
func (ox *OpaqueExtrinsic) Decode(decoder scale.Decoder) error {
	b, err := codec.DecodeBytes(decoder)
	if err != nil {
		return err
	}
	*ox = b
	return nil
}

// MarshalJSON encodes the extrinsic as the hex of its SCALE encoding,
// as found in chain_getBlock results.
func (ox OpaqueExtrinsic) MarshalJSON() ([]byte, error) {
	encoded, err := codec.EncodeToHex(ox)
	if err != nil {
		return nil, err
	}
	return json.Marshal(encoded)
}

// UnmarshalJSON decodes the hex of a SCALE encoded extrinsic.
func (ox *OpaqueExtrinsic) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	decoded, err := codec.DecodeFromHex[OpaqueExtrinsic](s)
	if err != nil {
		return err
	}
	*ox = decoded
	return nil
}

// TypeInfo fulfils the scaleinfo.TypeInfo interface.
func (OpaqueExtrinsic) TypeInfo() scaleinfo.Type {
	return scaleinfo.Type{
		Path: []string{"sp_runtime", "OpaqueExtrinsic"},
		Def: scaleinfo.DefComposite{Fields: []scaleinfo.Field{
			{TypeName: "Vec<u8>", Type: scaleinfo.Of[[]byte]()},
		}},
	}
}

var _ runtime.Extrinsic = OpaqueExtrinsic{}
