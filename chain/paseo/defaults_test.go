// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package paseo

import (
	"testing"

	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "paseo", cfg.Global.ID)
	assert.Equal(t, config.BadgerDatabase, cfg.Chain.Database)
	assert.Equal(t, uint16(0), cfg.Chain.SS58Prefix)

	_, err := hash.NewH256FromHex(cfg.Chain.GenesisHash)
	assert.NoError(t, err)
}
