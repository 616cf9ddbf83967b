// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/ChainSafe/gossamer-client/pkg/scaleinfo"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	minEraPeriod = 4
	maxEraPeriod = 1 << 16
)

// Era is the period of validity of a transaction. The zero value is immortal.
//
// A mortal era has a power of two period of blocks and a phase within that
// period, identifying the block the transaction was checkpointed against.
type Era struct {
	period uint64
	phase  uint64
}

// ImmortalEra returns an era valid forever.
func ImmortalEra() Era {
	return Era{}
}

// NewMortalEra returns an era of roughly period blocks starting at the block
// numbered current. The period is rounded up to the next power of two and
// clamped between 4 and 65536.
func NewMortalEra(period, current uint64) Era {
	if period > maxEraPeriod {
		period = maxEraPeriod
	} else if period > 1 && period&(period-1) != 0 {
		period = 1 << bits.Len64(period)
	}
	if period < minEraPeriod {
		period = minEraPeriod
	}

	phase := current % period
	quantizeFactor := max(period>>12, 1)
	return Era{
		period: period,
		phase:  phase / quantizeFactor * quantizeFactor,
	}
}

// IsImmortal returns true for eras valid forever.
func (e Era) IsImmortal() bool {
	return e.period == 0
}

// Period returns the period of a mortal era, 0 if immortal.
func (e Era) Period() uint64 {
	return e.period
}

// Phase returns the phase of a mortal era, 0 if immortal.
func (e Era) Phase() uint64 {
	return e.phase
}

// Birth returns the first block number of the era containing current.
func (e Era) Birth(current uint64) uint64 {
	if e.IsImmortal() {
		return 0
	}
	return (max(current, e.phase)-e.phase)/e.period*e.period + e.phase
}

// Death returns the block number after which a transaction checkpointed
// at current is no longer valid.
func (e Era) Death(current uint64) uint64 {
	if e.IsImmortal() {
		return math.MaxUint64
	}
	return e.Birth(current) + e.period
}

func (e Era) String() string {
	if e.IsImmortal() {
		return "Immortal"
	}
	return fmt.Sprintf("Mortal(%d, %d)", e.period, e.phase)
}

// Encode fulfils the scale.Encodeable interface.
// Immortal eras encode to a single zero byte, mortal eras to a little endian u16.
func (e Era) Encode(encoder scale.Encoder) error {
	if e.IsImmortal() {
		return encoder.PushByte(0)
	}

	quantizeFactor := max(e.period>>12, 1)
	trailingZeros := uint64(bits.TrailingZeros64(e.period))
	encoded := min(15, max(1, trailingZeros-1)) | (e.phase/quantizeFactor)<<4
	return encoder.Write([]byte{byte(encoded), byte(encoded >> 8)})
}

// Decode fulfils the scale.Decodeable interface.
func (e *Era) Decode(decoder scale.Decoder) error {
	first, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if first == 0 {
		*e = Era{}
		return nil
	}

	second, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	encoded := uint64(first) | uint64(second)<<8
	period := uint64(2) << (encoded % (1 << 4))
	quantizeFactor := max(period>>12, 1)
	phase := (encoded >> 4) * quantizeFactor
	if period < minEraPeriod || phase >= period {
		return fmt.Errorf("%w: period %d and phase %d", ErrInvalidEra, period, phase)
	}

	*e = Era{period: period, phase: phase}
	return nil
}

// TypeInfo fulfils the scaleinfo.TypeInfo interface.
func (Era) TypeInfo() scaleinfo.Type {
	variants := make([]scaleinfo.Variant, 0, 256)
	variants = append(variants, scaleinfo.Variant{Name: "Immortal", Index: 0})
	for i := 1; i < 256; i++ {
		variants = append(variants, scaleinfo.Variant{
			Name:   fmt.Sprintf("Mortal%d", i),
			Index:  uint8(i),
			Fields: []scaleinfo.Field{{TypeName: "u8", Type: scaleinfo.Of[uint8]()}},
		})
	}
	return scaleinfo.Type{
		Path: []string{"sp_runtime", "generic", "era", "Era"},
		Def:  scaleinfo.DefVariant{Variants: variants},
	}
}
