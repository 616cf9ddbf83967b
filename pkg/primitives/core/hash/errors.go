// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hash

import "errors"

// ErrInvalidLength is returned when decoding a hash of the wrong length.
var ErrInvalidLength = errors.New("invalid hash length")
