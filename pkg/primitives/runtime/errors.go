// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import "errors"

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalidEra     = errors.New("invalid era")
)
