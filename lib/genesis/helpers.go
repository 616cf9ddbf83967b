// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/gossamer-client/internal/log"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "genesis"))

// NewGenesisFromJSONRaw parses a raw chain spec file
func NewGenesisFromJSONRaw(file string) (*Genesis, error) {
	fp, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		return nil, err
	}

	g := new(Genesis)
	err = json.Unmarshal(data, g)
	if err != nil {
		return nil, fmt.Errorf("decoding chain spec %s: %w", file, err)
	}
	if !g.IsRaw() {
		return nil, fmt.Errorf("%w: %s", ErrNotRaw, file)
	}
	return g, nil
}

// LoadState writes the top trie of the genesis storage to writer.
func LoadState(g *Genesis, writer storage.Writer) error {
	top, err := g.Top()
	if err != nil {
		return err
	}

	err = storage.LoadHex(writer, top)
	if err != nil {
		return fmt.Errorf("loading genesis state of %s: %w", g.ID, err)
	}

	logger.Debugf("loaded %d genesis key values of %s", len(top), g.ID)
	return nil
}
