// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package generic

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// DigestItemKind is the variant index of a DigestItem.
type DigestItemKind uint8

const (
	// DigestOther is some other thing. Unsupported and experimental.
	DigestOther DigestItemKind = 0
	// DigestConsensus is a message from the runtime to the consensus engine.
	DigestConsensus DigestItemKind = 4
	// DigestSeal is a seal of the block, put in by the consensus engine.
	DigestSeal DigestItemKind = 5
	// DigestPreRuntime is a message from the consensus engine to the runtime.
	DigestPreRuntime DigestItemKind = 6
	// DigestRuntimeEnvironmentUpdated signals the runtime code or heap pages changed.
	DigestRuntimeEnvironmentUpdated DigestItemKind = 8
)

func (k DigestItemKind) String() string {
	switch k {
	case DigestOther:
		return "Other"
	case DigestConsensus:
		return "Consensus"
	case DigestSeal:
		return "Seal"
	case DigestPreRuntime:
		return "PreRuntime"
	case DigestRuntimeEnvironmentUpdated:
		return "RuntimeEnvironmentUpdated"
	default:
		return fmt.Sprintf("DigestItemKind(%d)", uint8(k))
	}
}

func (k DigestItemKind) hasEngineID() bool {
	return k == DigestConsensus || k == DigestSeal || k == DigestPreRuntime
}

// DigestItem is a digest item contained in a block header.
// EngineID is only used by the Consensus, Seal and PreRuntime kinds,
// Data by all kinds but RuntimeEnvironmentUpdated.
type DigestItem struct {
	Kind     DigestItemKind
	EngineID runtime.ConsensusEngineID
	Data     []byte
}

// NewPreRuntimeDigest returns a PreRuntime digest item.
func NewPreRuntimeDigest(engineID runtime.ConsensusEngineID, data []byte) DigestItem {
	return DigestItem{Kind: DigestPreRuntime, EngineID: engineID, Data: data}
}

// NewConsensusDigest returns a Consensus digest item.
func NewConsensusDigest(engineID runtime.ConsensusEngineID, data []byte) DigestItem {
	return DigestItem{Kind: DigestConsensus, EngineID: engineID, Data: data}
}

// NewSealDigest returns a Seal digest item.
func NewSealDigest(engineID runtime.ConsensusEngineID, data []byte) DigestItem {
	return DigestItem{Kind: DigestSeal, EngineID: engineID, Data: data}
}

// NewOtherDigest returns an Other digest item.
func NewOtherDigest(data []byte) DigestItem {
	return DigestItem{Kind: DigestOther, Data: data}
}

func (di DigestItem) String() string {
	switch {
	case di.Kind.hasEngineID():
		return fmt.Sprintf("%s(%s, 0x%x)", di.Kind, di.EngineID, di.Data)
	case di.Kind == DigestOther:
		return fmt.Sprintf("Other(0x%x)", di.Data)
	default:
		return di.Kind.String()
	}
}

// Encode fulfils the scale.Encodeable interface.
func (di DigestItem) Encode(encoder scale.Encoder) error {
	switch {
	case di.Kind.hasEngineID(), di.Kind == DigestOther, di.Kind == DigestRuntimeEnvironmentUpdated:
	default:
		return fmt.Errorf("%w: digest item %d", runtime.ErrUnknownVariant, di.Kind)
	}

	err := encoder.PushByte(byte(di.Kind))
	if err != nil {
		return err
	}
	if di.Kind == DigestRuntimeEnvironmentUpdated {
		return nil
	}
	if di.Kind.hasEngineID() {
		err = encoder.Write(di.EngineID[:])
		if err != nil {
			return err
		}
	}
	return codec.EncodeBytes(encoder, di.Data)
}

// Decode fulfils the scale.Decodeable interface.
func (di *DigestItem) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	item := DigestItem{Kind: DigestItemKind(b)}
	switch {
	case item.Kind == DigestRuntimeEnvironmentUpdated:
		*di = item
		return nil
	case item.Kind.hasEngineID():
		err = decoder.Read(item.EngineID[:])
		if err != nil {
			return fmt.Errorf("decoding consensus engine id: %w", err)
		}
	case item.Kind == DigestOther:
	default:
		return fmt.Errorf("%w: digest item %d", runtime.ErrUnknownVariant, b)
	}

	item.Data, err = codec.DecodeBytes(decoder)
	if err != nil {
		return fmt.Errorf("decoding %s digest data: %w", item.Kind, err)
	}
	*di = item
	return nil
}

// Digest is the header digest, a list of digest items.
type Digest struct {
	Logs []DigestItem
}

// NewDigest returns a digest of the given items.
func NewDigest(items ...DigestItem) Digest {
	return Digest{Logs: items}
}

// Push appends an item to the digest.
func (d *Digest) Push(item DigestItem) {
	d.Logs = append(d.Logs, item)
}

// Encode fulfils the scale.Encodeable interface.
func (d Digest) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(d.Logs))))
	if err != nil {
		return err
	}
	for _, item := range d.Logs {
		err = item.Encode(encoder)
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode fulfils the scale.Decodeable interface.
func (d *Digest) Decode(decoder scale.Decoder) error {
	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("decoding length of digest items: %w", err)
	}
	if !length.IsUint64() || length.Uint64() > maxDigestItems {
		return fmt.Errorf("%w: %s digest items", codec.ErrLengthOverflow, length)
	}

	logs := make([]DigestItem, length.Uint64())
	for i := range logs {
		err = logs[i].Decode(decoder)
		if err != nil {
			return fmt.Errorf("decoding digest item %d: %w", i, err)
		}
	}
	d.Logs = logs
	return nil
}

const maxDigestItems = 1 << 16

type digestJSON struct {
	Logs []string `json:"logs"`
}

// MarshalJSON encodes the digest as returned by chain_getHeader,
// each item being the hex of its SCALE encoding.
func (d Digest) MarshalJSON() ([]byte, error) {
	logs := make([]string, len(d.Logs))
	for i, item := range d.Logs {
		encoded, err := codec.EncodeToHex(item)
		if err != nil {
			return nil, err
		}
		logs[i] = encoded
	}
	return json.Marshal(digestJSON{Logs: logs})
}

// UnmarshalJSON decodes the chain_getHeader representation of a digest.
func (d *Digest) UnmarshalJSON(data []byte) error {
	var raw digestJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	logs := make([]DigestItem, len(raw.Logs))
	for i, s := range raw.Logs {
		logs[i], err = codec.DecodeFromHex[DigestItem](s)
		if err != nil {
			return fmt.Errorf("decoding digest item %d: %w", i, err)
		}
	}
	d.Logs = logs
	return nil
}
