// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ChainSafe/gossamer-client/pkg/codec"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PrepareExtra(t *testing.T) {
	t.Parallel()

	alice := aliceAccountID()
	genesisHash := newDigest32([]byte{0xaa})
	version := RuntimeVersion{SpecVersion: 9430, TransactionVersion: 24}

	backend := storage.NewMemoryBackend()
	key, err := storage.FinalKey(accountStore{}.StorageEntry(alice))
	require.NoError(t, err)
	require.NoError(t, backend.Put(key, codec.MustEncode(accountInfo{Nonce: 3})))

	extra, err := PrepareExtra(context.Background(), backend,
		testExtrinsicExtraData(testExtraData{}), alice, version, genesisHash)
	require.NoError(t, err)

	expected := testExtra{
		SpecVersion: 9430,
		TxVersion:   24,
		Nonce:       3,
		GenesisHash: genesisHash,
	}
	if diff := cmp.Diff(expected, extra); diff != "" {
		t.Errorf("extra mismatch (-want +got):\n%s", diff)
	}

	encodedExtra, err := extra.Extra()
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 0, 0, 0}, encodedExtra)

	additional, err := extra.AdditionalSigned()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xd6, 0x24, 0, 0, 24, 0, 0, 0}, additional[:8])
	assert.Equal(t, genesisHash.Bytes(), additional[8:])
}

func Test_PrepareExtra_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	errTest := errors.New("test error")
	reader := NewMockReader(ctrl)
	reader.EXPECT().Storage(gomock.Any(), gomock.Any()).Return(nil, errTest)

	extra, err := PrepareExtra(context.Background(), reader,
		testExtrinsicExtraData(testExtraData{}), aliceAccountID(), RuntimeVersion{}, digest32(""))

	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, testExtra{}, extra)
}
