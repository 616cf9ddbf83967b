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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliceAccountID() accountID {
	var id accountID
	copy(id[:], codec.MustHexToBytes("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"))
	return id
}

func Test_AccountNonce(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	alice := aliceAccountID()
	aliceKey, err := storage.FinalKey(accountStore{}.StorageEntry(alice))
	require.NoError(t, err)

	testCases := map[string]struct {
		readerBuilder func(t *testing.T, ctrl *gomock.Controller) storage.Reader
		nonce         uint32
		errWrapped    error
		errMessage    string
	}{
		"stored_account": {
			readerBuilder: func(t *testing.T, ctrl *gomock.Controller) storage.Reader {
				backend := storage.NewMemoryBackend()
				value := codec.MustEncode(accountInfo{Nonce: 7, Consumers: 1, Free: 1000})
				require.NoError(t, backend.Put(aliceKey, value))
				return backend
			},
			nonce: 7,
		},
		"absent_account": {
			readerBuilder: func(t *testing.T, ctrl *gomock.Controller) storage.Reader {
				return storage.NewMemoryBackend()
			},
			nonce: 0,
		},
		"reader_error": {
			readerBuilder: func(t *testing.T, ctrl *gomock.Controller) storage.Reader {
				reader := NewMockReader(ctrl)
				reader.EXPECT().Storage(gomock.Any(), aliceKey).Return(nil, errTest)
				return reader
			},
			errWrapped: errTest,
			errMessage: "fetching account data: reading System.Account at " +
				aliceKey.String() + ": test error",
		},
		"undecodable_value": {
			readerBuilder: func(t *testing.T, ctrl *gomock.Controller) storage.Reader {
				reader := NewMockReader(ctrl)
				reader.EXPECT().Storage(gomock.Any(), aliceKey).Return([]byte{1, 2}, nil)
				return reader
			},
			errMessage: "fetching account data: decoding System.Account: ",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			reader := testCase.readerBuilder(t, ctrl)
			nonce, err := AccountNonce(context.Background(), reader, testAccountData(accountStore{}), alice)

			assert.Equal(t, testCase.nonce, nonce)
			if testCase.errMessage == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			assert.Contains(t, err.Error(), testCase.errMessage)
		})
	}
}

func Test_AccountData_StorageEntry(t *testing.T) {
	t.Parallel()

	key, err := storage.FinalKey(accountStore{}.StorageEntry(aliceAccountID()))
	require.NoError(t, err)
	assert.Equal(t,
		"0x26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9"+
			"de1e86a9a8c739864cf3cc5ec2bea59f"+
			"d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
		key.String())
}

func Test_AccountData_NonceIsPure(t *testing.T) {
	t.Parallel()

	value := accountInfo{Nonce: 42, Consumers: 3}
	store := accountStore{}

	first := store.Nonce(value)
	second := store.Nonce(value)
	assert.Equal(t, first, second)
	assert.Equal(t, uint32(42), first)
	assert.Equal(t, accountInfo{Nonce: 42, Consumers: 3}, value)
}
