// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package generic

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Block is a block: a header and the accompanying extrinsics.
type Block[N runtime.Number, H runtime.Hash, Hasher runtime.Hasher[H], X runtime.Extrinsic] struct {
	header     Header[N, H, Hasher]
	extrinsics []X
}

// NewBlock is the constructor for `Block`.
func NewBlock[N runtime.Number, H runtime.Hash, Hasher runtime.Hasher[H], X runtime.Extrinsic](
	header Header[N, H, Hasher], extrinsics []X) Block[N, H, Hasher, X] {
	return Block[N, H, Hasher, X]{
		header:     header,
		extrinsics: extrinsics,
	}
}

// Header returns the header.
func (b Block[N, H, Hasher, X]) Header() Header[N, H, Hasher] {
	return b.header
}

// Extrinsics returns the block extrinsics.
func (b Block[N, H, Hasher, X]) Extrinsics() []X {
	return b.extrinsics
}

// Deconstruct returns both header and extrinsics.
func (b Block[N, H, Hasher, X]) Deconstruct() (header Header[N, H, Hasher], extrinsics []X) {
	return b.Header(), b.Extrinsics()
}

// Hash returns the block hash, which is the hash of its header.
func (b Block[N, H, Hasher, X]) Hash() H {
	return b.header.Hash()
}

// Encode fulfils the scale.Encodeable interface.
func (b Block[N, H, Hasher, X]) Encode(encoder scale.Encoder) error {
	err := b.header.Encode(encoder)
	if err != nil {
		return err
	}
	err = encoder.EncodeUintCompact(*big.NewInt(int64(len(b.extrinsics))))
	if err != nil {
		return err
	}
	for _, extrinsic := range b.extrinsics {
		err = encoder.Encode(extrinsic)
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode fulfils the scale.Decodeable interface.
func (b *Block[N, H, Hasher, X]) Decode(decoder scale.Decoder) error {
	var decoded Block[N, H, Hasher, X]
	err := decoded.header.Decode(decoder)
	if err != nil {
		return fmt.Errorf("decoding header: %w", err)
	}

	count, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("decoding extrinsics count: %w", err)
	}
	if !count.IsUint64() || count.Uint64() > maxBlockExtrinsics {
		return fmt.Errorf("too many extrinsics: %s", count)
	}

	decoded.extrinsics = make([]X, count.Uint64())
	for i := range decoded.extrinsics {
		err = decoder.Decode(&decoded.extrinsics[i])
		if err != nil {
			return fmt.Errorf("decoding extrinsic %d: %w", i, err)
		}
	}

	*b = decoded
	return nil
}

const maxBlockExtrinsics = 1 << 20

type blockJSON[N runtime.Number, H runtime.Hash, Hasher runtime.Hasher[H], X runtime.Extrinsic] struct {
	Header     Header[N, H, Hasher] `json:"header"`
	Extrinsics []X                  `json:"extrinsics"`
}

// MarshalJSON encodes the block as found in chain_getBlock results.
func (b Block[N, H, Hasher, X]) MarshalJSON() ([]byte, error) {
	extrinsics := b.extrinsics
	if extrinsics == nil {
		extrinsics = []X{}
	}
	return json.Marshal(blockJSON[N, H, Hasher, X]{
		Header:     b.header,
		Extrinsics: extrinsics,
	})
}

// UnmarshalJSON decodes the chain_getBlock representation of a block.
func (b *Block[N, H, Hasher, X]) UnmarshalJSON(data []byte) error {
	var raw blockJSON[N, H, Hasher, X]
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	*b = NewBlock(raw.Header, raw.Extrinsics)
	return nil
}
