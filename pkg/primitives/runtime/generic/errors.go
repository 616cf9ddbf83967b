// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package generic

import "errors"

// ErrNumberOverflow is returned when decoding a block number too large for the number type.
var ErrNumberOverflow = errors.New("block number overflows")
