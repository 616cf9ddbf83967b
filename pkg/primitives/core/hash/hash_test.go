// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesisHex = "0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3"

func Test_H256_codec(t *testing.T) {
	t.Parallel()

	h := MustNewH256FromHex(genesisHex)

	encoded, err := codec.Encode(h)
	require.NoError(t, err)
	assert.Equal(t, h.Bytes(), encoded)

	decoded, err := codec.RoundTrip(h)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)

	var zero H256
	encoded, err = codec.Encode(zero)
	require.NoError(t, err)
	assert.Len(t, encoded, H256Length)
	assert.True(t, zero.IsZero())
}

func Test_H256_zero(t *testing.T) {
	t.Parallel()

	var zero H256
	allZero := make([]byte, H256Length)

	testCases := map[string]struct {
		h H256
	}{
		"zero_value":      {h: zero},
		"from_zero_bytes": {h: NewH256FromBytes(allZero)},
		"from_nil":        {h: NewH256FromBytes(nil)},
		"from_zero_hex":   {h: MustNewH256FromHex(codec.BytesToHex(allZero))},
		"decoded_from_zeros": {h: func() H256 {
			h, err := codec.Decode[H256](allZero)
			require.NoError(t, err)
			return h
		}()},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, zero, testCase.h)
			assert.True(t, testCase.h.IsZero())
			assert.Equal(t, allZero, testCase.h.Bytes())

			decoded, err := codec.RoundTrip(testCase.h)
			require.NoError(t, err)
			assert.Equal(t, testCase.h, decoded)
		})
	}

	keys := map[H256]int{zero: 1}
	keys[NewH256FromBytes(allZero)]++
	assert.Equal(t, map[H256]int{zero: 2}, keys)
}

func Test_H256_short_value_padded(t *testing.T) {
	t.Parallel()

	h := NewH256FromBytes([]byte{1})
	assert.Len(t, string(h), H256Length)

	decoded, err := codec.RoundTrip(h)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}

func Test_H256_JSON(t *testing.T) {
	t.Parallel()

	h := MustNewH256FromHex(genesisHex)
	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, `"`+genesisHex+`"`, string(data))

	var decoded H256
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)

	err = json.Unmarshal([]byte(`"0x0102"`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func Test_H256_ordered(t *testing.T) {
	t.Parallel()

	hashes := []H256{
		NewH256FromBytes([]byte{3}),
		NewH256FromBytes([]byte{1}),
		NewH256FromBytes([]byte{2}),
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
	assert.Equal(t, byte(1), hashes[0].Bytes()[0])
	assert.Equal(t, byte(3), hashes[2].Bytes()[0])
	assert.Equal(t, "0x91b171bb...70ce90c3", MustNewH256FromHex(genesisHex).Short())
}
