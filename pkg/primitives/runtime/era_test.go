// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"math"
	"testing"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Era_Codec(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		era     Era
		encoded []byte
	}{
		"immortal": {
			era:     ImmortalEra(),
			encoded: []byte{0},
		},
		"mortal_64_42": {
			era:     NewMortalEra(64, 42),
			encoded: []byte{5 + 42%16*16, 42 / 16},
		},
		"mortal_32768_20000": {
			era:     NewMortalEra(32768, 20000),
			encoded: []byte{14 + 2500%16*16, 2500 / 16},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := codec.Encode(testCase.era)
			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, encoded)

			decoded, err := codec.RoundTrip(testCase.era)
			require.NoError(t, err)
			assert.Equal(t, testCase.era, decoded)
		})
	}
}

func Test_NewMortalEra(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		period  uint64
		current uint64
		era     Era
	}{
		"rounds_up_to_power_of_two": {
			period:  100,
			current: 300,
			era:     Era{period: 128, phase: 300 % 128},
		},
		"clamped_low": {
			period:  1,
			current: 5,
			era:     Era{period: 4, phase: 1},
		},
		"clamped_high": {
			period:  1 << 20,
			current: 1 << 20,
			era:     Era{period: 1 << 16, phase: 0},
		},
		"quantized_phase": {
			period:  32768,
			current: 20001,
			era:     Era{period: 32768, phase: 20000},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			era := NewMortalEra(testCase.period, testCase.current)
			assert.Equal(t, testCase.era, era)
		})
	}
}

func Test_Era_Lifetime(t *testing.T) {
	t.Parallel()

	immortal := ImmortalEra()
	assert.True(t, immortal.IsImmortal())
	assert.Equal(t, uint64(0), immortal.Birth(10))
	assert.Equal(t, uint64(math.MaxUint64), immortal.Death(10))
	assert.Equal(t, "Immortal", immortal.String())

	era := NewMortalEra(4, 6)
	assert.False(t, era.IsImmortal())
	assert.Equal(t, uint64(4), era.Period())
	assert.Equal(t, uint64(2), era.Phase())
	assert.Equal(t, uint64(6), era.Birth(6))
	assert.Equal(t, uint64(6), era.Birth(9))
	assert.Equal(t, uint64(10), era.Birth(10))
	assert.Equal(t, uint64(10), era.Death(6))
	assert.Equal(t, uint64(2), era.Birth(1))
	assert.Equal(t, "Mortal(4, 2)", era.String())
}

func Test_Era_DecodeInvalid(t *testing.T) {
	t.Parallel()

	// period 4 with phase 17
	_, err := codec.Decode[Era]([]byte{1 | 1<<4, 0x01})
	assert.ErrorIs(t, err, ErrInvalidEra)

	_, err = codec.Decode[Era]([]byte{1})
	assert.Error(t, err)
}
