// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"bytes"
	"context"
	"testing"

	"github.com/ChainSafe/gossamer-client/pkg/chain"
	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/runtime"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	genesisHash    = hash.NewH256FromBytes(bytes.Repeat([]byte{0x11}, 32))
	checkpointHash = hash.NewH256FromBytes(bytes.Repeat([]byte{0x22}, 32))
)

func Test_DefaultExtra_Identifiers(t *testing.T) {
	t.Parallel()

	identifiers := DefaultExtra{}.Identifiers()
	assert.Equal(t, []string{
		"CheckNonZeroSender",
		"CheckSpecVersion",
		"CheckTxVersion",
		"CheckGenesis",
		"CheckMortality",
		"CheckNonce",
		"CheckWeight",
		"ChargeTransactionPayment",
	}, identifiers)

	identifiers[0] = "modified"
	assert.Equal(t, "CheckNonZeroSender", DefaultExtra{}.Identifiers()[0])
}

func Test_DefaultExtra_Extra(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		extra   DefaultExtra
		encoded []byte
	}{
		"immortal_no_tip": {
			extra:   DefaultExtra{Nonce: 5},
			encoded: []byte{0, 0x14, 0},
		},
		"mortal_with_tip": {
			extra: DefaultExtra{
				Nonce: 1,
				Tip:   10,
				Era:   runtime.NewMortalEra(64, 42),
			},
			encoded: []byte{165, 2, 0x04, 0x28},
		},
		"large_nonce": {
			extra:   DefaultExtra{Nonce: 1 << 14},
			encoded: []byte{0, 0x02, 0x00, 0x01, 0x00, 0},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := testCase.extra.Extra()
			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, encoded)
		})
	}
}

func Test_DefaultExtra_AdditionalSigned(t *testing.T) {
	t.Parallel()

	versions := []byte{0xd6, 0x24, 0, 0, 20, 0, 0, 0}

	testCases := map[string]struct {
		extra      DefaultExtra
		encoded    []byte
		errWrapped error
	}{
		"immortal": {
			extra: DefaultExtra{
				SpecVersion:        9430,
				TransactionVersion: 20,
				GenesisHash:        genesisHash,
			},
			encoded: concat(versions, genesisHash.Bytes(), genesisHash.Bytes()),
		},
		"immortal_ignores_checkpoint": {
			extra: DefaultExtra{
				SpecVersion:        9430,
				TransactionVersion: 20,
				GenesisHash:        genesisHash,
				Checkpoint:         checkpointHash,
			},
			encoded: concat(versions, genesisHash.Bytes(), genesisHash.Bytes()),
		},
		"mortal": {
			extra: DefaultExtra{
				SpecVersion:        9430,
				TransactionVersion: 20,
				Era:                runtime.NewMortalEra(64, 42),
				GenesisHash:        genesisHash,
				Checkpoint:         checkpointHash,
			},
			encoded: concat(versions, genesisHash.Bytes(), checkpointHash.Bytes()),
		},
		"mortal_without_checkpoint": {
			extra: DefaultExtra{
				Era:         runtime.NewMortalEra(64, 42),
				GenesisHash: genesisHash,
			},
			errWrapped: ErrCheckpointMissing,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := testCase.extra.AdditionalSigned()
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				assert.Nil(t, encoded)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, encoded)
		})
	}
}

func Test_NewMortalExtraData(t *testing.T) {
	t.Parallel()

	extraData := NewMortalExtraData(10, 64, 42, checkpointHash)

	assert.Equal(t, uint64(10), extraData.Tip)
	assert.Equal(t, uint64(64), extraData.Era.Period())
	assert.Equal(t, uint64(42), extraData.Era.Phase())
	assert.Equal(t, checkpointHash, extraData.Checkpoint)
}

func Test_PrepareExtra(t *testing.T) {
	t.Parallel()

	backend := storage.NewMemoryBackend()
	key, err := storage.ParseKey(aliceAccountKey)
	require.NoError(t, err)
	require.NoError(t, backend.Put(key, codec.MustHexToBytes(encodedAccountInfo)))

	version := chain.RuntimeVersion{SpecVersion: 9430, TransactionVersion: 20}
	extraData := NewMortalExtraData(10, 64, 42, checkpointHash)

	extra, err := chain.PrepareExtra(context.Background(), backend,
		ExtrinsicExtraData(extraData), alice, version, genesisHash)
	require.NoError(t, err)

	expected := DefaultExtra{
		SpecVersion:        9430,
		TransactionVersion: 20,
		Nonce:              3,
		Tip:                10,
		Era:                runtime.NewMortalEra(64, 42),
		GenesisHash:        genesisHash,
		Checkpoint:         checkpointHash,
	}
	assert.Equal(t, expected, extra)

	encoded, err := extra.Extra()
	require.NoError(t, err)
	assert.Equal(t, []byte{165, 2, 0x0c, 0x28}, encoded)
}

func Test_DefaultExtra_String(t *testing.T) {
	t.Parallel()

	extra := DefaultExtra{SpecVersion: 1, TransactionVersion: 2, Nonce: 3, Tip: 4, GenesisHash: genesisHash}
	assert.Equal(t,
		"DefaultExtra{SpecVersion: 1, TransactionVersion: 2, Nonce: 3, Tip: 4, Era: Immortal, Genesis: 0x11111111...11111111}",
		extra.String())
}

func concat(slices ...[]byte) (b []byte) {
	for _, slice := range slices {
		b = append(b, slice...)
	}
	return b
}
