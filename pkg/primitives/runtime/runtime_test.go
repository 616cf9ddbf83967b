// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"strconv"
	"testing"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseNumber(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		number     uint32
		errWrapped error
	}{
		"decimal": {
			s:      "1234",
			number: 1234,
		},
		"hex": {
			s:      "0x1f",
			number: 31,
		},
		"max_u32": {
			s:      "4294967295",
			number: 4294967295,
		},
		"overflows_u32": {
			s:          "4294967296",
			errWrapped: strconv.ErrRange,
		},
		"negative": {
			s:          "-1",
			errWrapped: strconv.ErrSyntax,
		},
		"empty": {
			s:          "",
			errWrapped: strconv.ErrSyntax,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			number, err := ParseNumber[uint32](testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.number, number)
		})
	}
}

func Test_ParseNumber_u64(t *testing.T) {
	t.Parallel()

	number, err := ParseNumber[uint64]("4294967296")
	require.NoError(t, err)
	assert.Equal(t, uint64(4294967296), number)
}

func Test_BlakeTwo256(t *testing.T) {
	t.Parallel()

	hasher := BlakeTwo256{}
	assert.Equal(t,
		hash.MustNewH256FromHex("0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"),
		hasher.Hash(nil))

	value := struct {
		A uint32
		B []byte
	}{A: 7, B: []byte{1, 2}}
	assert.Equal(t, hasher.Hash(codec.MustEncode(value)), hasher.HashEncoded(value))
	assert.NotEqual(t, hasher.Hash(nil), hasher.HashEncoded(value))
}

func Test_Keccak256(t *testing.T) {
	t.Parallel()

	hasher := Keccak256{}
	assert.Equal(t,
		hash.MustNewH256FromHex("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"),
		hasher.Hash(nil))
	assert.Equal(t, hasher.Hash([]byte{1, 0, 0, 0}), hasher.HashEncoded(uint32(1)))
}
