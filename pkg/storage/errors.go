// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import "errors"

// ErrUnknownHasher is returned for hashers not defined by the runtime.
var ErrUnknownHasher = errors.New("unknown storage hasher")
