// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import "github.com/ChainSafe/gossamer-client/internal/log"

var logger = log.NewFromGlobal(log.AddContext("pkg", "storage"))

// SetLogLevel sets the log level of the package.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
