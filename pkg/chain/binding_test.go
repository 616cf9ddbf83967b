// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// A minimal chain binding: u32 nonces, u64 block numbers, 32 byte hashes
// computed by truncation, 32 byte account ids used as addresses, 64 byte
// signatures and opaque extrinsics.

// digest32 holds 32 bytes, or is empty if they are all zero.
type digest32 string

func newDigest32(b []byte) digest32 {
	var arr [32]byte
	copy(arr[:], b)
	if arr == [32]byte{} {
		return ""
	}
	return digest32(arr[:])
}

func (d digest32) Bytes() []byte {
	var arr [32]byte
	copy(arr[:], d)
	return arr[:]
}

func (d digest32) String() string                     { return codec.BytesToHex(d.Bytes()) }
func (d digest32) Encode(encoder scale.Encoder) error { return encoder.Write(d.Bytes()) }
func (digest32) TypeInfo() scaleinfo.Type             { return scaleinfo.ByteArray(32, "test", "Digest32") }

func (d *digest32) Decode(decoder scale.Decoder) error {
	var arr [32]byte
	err := decoder.Read(arr[:])
	if err != nil {
		return err
	}
	*d = newDigest32(arr[:])
	return nil
}

func (d *digest32) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	b, err := codec.HexToBytes(s)
	if err != nil {
		return err
	}
	if len(b) != 32 {
		return fmt.Errorf("digest of %d bytes", len(b))
	}
	*d = newDigest32(b)
	return nil
}

type truncateHasher struct{}

func (truncateHasher) Hash(s []byte) digest32 { return newDigest32(s) }
func (h truncateHasher) HashEncoded(s any) digest32 {
	return h.Hash(codec.MustEncode(s))
}

type accountID [32]byte

func (a accountID) Encode(encoder scale.Encoder) error  { return encoder.Write(a[:]) }
func (a accountID) String() string                      { return codec.BytesToHex(a[:]) }
func (a *accountID) Decode(decoder scale.Decoder) error { return decoder.Read(a[:]) }

type testHeader struct {
	number uint64
	hash   digest32
}

func (h testHeader) Number() uint64         { return h.number }
func (h testHeader) Hash() digest32         { return h.hash }
func (testHeader) ParentHash() digest32     { return newDigest32(nil) }
func (testHeader) StateRoot() digest32      { return newDigest32(nil) }
func (testHeader) ExtrinsicsRoot() digest32 { return newDigest32(nil) }
func (h testHeader) String() string         { return fmt.Sprintf("#%d (%s)", h.number, h.hash) }
func (h testHeader) Encode(encoder scale.Encoder) error {
	err := encoder.Encode(h.number)
	if err != nil {
		return err
	}
	return h.hash.Encode(encoder)
}

func (h *testHeader) Decode(decoder scale.Decoder) error {
	err := decoder.Decode(&h.number)
	if err != nil {
		return err
	}
	return h.hash.Decode(decoder)
}

func (h *testHeader) UnmarshalJSON(data []byte) error {
	var raw struct {
		Number string   `json:"number"`
		Hash   digest32 `json:"hash"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	number, err := runtime.ParseNumber[uint64](raw.Number)
	if err != nil {
		return err
	}
	*h = testHeader{number: number, hash: raw.Hash}
	return nil
}

// signature is valid if it starts with the signer followed by the truncated message.
type signature [64]byte

func (s signature) Verify(msg []byte, signer accountID) bool {
	return bytes.Equal(s[:32], signer[:]) && bytes.Equal(s[32:], newDigest32(msg).Bytes())
}

func (s signature) Encode(encoder scale.Encoder) error { return encoder.Write(s[:]) }

type opaque []byte

func (opaque) IsSigned() *bool                      { return nil }
func (o opaque) String() string                     { return codec.BytesToHex(o) }
func (o opaque) Encode(encoder scale.Encoder) error { return codec.EncodeBytes(encoder, o) }

func (o *opaque) Decode(decoder scale.Decoder) error {
	b, err := codec.DecodeBytes(decoder)
	if err != nil {
		return err
	}
	*o = b
	return nil
}

func (o *opaque) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	decoded, err := codec.DecodeFromHex[opaque](s)
	if err != nil {
		return err
	}
	*o = decoded
	return nil
}

type testTypes = Types[uint32, uint64, digest32, *digest32, truncateHasher, accountID, *accountID,
	accountID, *accountID, testHeader, *testHeader, signature, opaque, *opaque]

type testAccountData = AccountData[uint32, uint64, digest32, *digest32, truncateHasher, accountID, *accountID,
	accountID, *accountID, testHeader, *testHeader, signature, opaque, *opaque, accountInfo]

type testExtrinsicExtraData = ExtrinsicExtraData[uint32, uint64, digest32, *digest32, truncateHasher,
	accountID, *accountID, accountID, *accountID, testHeader, *testHeader, signature, opaque, *opaque,
	accountInfo, testExtra]

type testConfig struct{}

func (testConfig) Types() testTypes {
	return testTypes{}
}

var _ Config[uint32, uint64, digest32, *digest32, truncateHasher, accountID, *accountID,
	accountID, *accountID, testHeader, *testHeader, signature, opaque, *opaque] = testConfig{}

type accountInfo struct {
	Nonce     uint32
	Consumers uint32
	Free      uint64
}

type accountStore struct {
	testConfig
}

func (accountStore) StorageEntry(id accountID) storage.Entry[accountInfo] {
	return storage.MapEntry[accountInfo]{
		PalletName: "System",
		ItemName:   "Account",
		Keys:       []storage.KeyPart{storage.NewKeyPart(storage.Blake2_128Concat, [32]byte(id))},
	}
}

func (accountStore) Nonce(value accountInfo) uint32 {
	return value.Nonce
}

var _ testAccountData = accountStore{}

type testExtra struct {
	SpecVersion uint32
	TxVersion   uint32
	Nonce       uint32
	GenesisHash digest32
}

func (testExtra) Identifiers() []string {
	return []string{"CheckSpecVersion", "CheckTxVersion", "CheckNonce", "CheckGenesis"}
}

func (e testExtra) Extra() ([]byte, error) {
	return codec.Encode(e.Nonce)
}

func (e testExtra) AdditionalSigned() ([]byte, error) {
	return codec.Encode(struct {
		SpecVersion uint32
		TxVersion   uint32
		GenesisHash digest32
	}{e.SpecVersion, e.TxVersion, e.GenesisHash})
}

type testExtraData struct {
	testConfig
}

func (testExtraData) AccountData() testAccountData {
	return accountStore{}
}

func (testExtraData) NewExtra(specVersion, txVersion uint32, nonce uint32, genesisHash digest32) testExtra {
	return testExtra{
		SpecVersion: specVersion,
		TxVersion:   txVersion,
		Nonce:       nonce,
		GenesisHash: genesisHash,
	}
}

var _ testExtrinsicExtraData = testExtraData{}
