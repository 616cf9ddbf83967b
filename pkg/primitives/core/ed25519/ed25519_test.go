// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Signature_Verify(t *testing.T) {
	t.Parallel()

	seed := make([]byte, ed25519.SeedSize)
	seed[0] = 7
	key := ed25519.NewKeyFromSeed(seed)

	msg := []byte("remark")
	signature, err := NewSignature(ed25519.Sign(key, msg))
	require.NoError(t, err)

	var public Public
	copy(public[:], key.Public().(ed25519.PublicKey))

	assert.True(t, signature.Verify(msg, public))
	assert.False(t, signature.Verify([]byte("other"), public))
	assert.Equal(t, 2+2*SignatureLength, len(signature.String()))
}
