// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-client/pkg/primitives/core/crypto"
)

var (
	ErrNotRaw         = errors.New("chain spec genesis is not raw")
	ErrPropertyType   = errors.New("chain spec property has an unexpected type")
	ErrPropertyAbsent = errors.New("chain spec property is absent")
)

// Genesis stores the data parsed from a raw chain spec file
type Genesis struct {
	Name               string                 `json:"name"`
	ID                 string                 `json:"id"`
	ChainType          string                 `json:"chainType"`
	Bootnodes          []string               `json:"bootNodes"`
	TelemetryEndpoints []interface{}          `json:"telemetryEndpoints"`
	ProtocolID         string                 `json:"protocolId"`
	Genesis            Fields                 `json:"genesis"`
	Properties         map[string]interface{} `json:"properties"`
	CodeSubstitutes    map[string]string      `json:"codeSubstitutes"`
}

// TelemetryEndpoint struct to hold telemetry endpoint information
type TelemetryEndpoint struct {
	Endpoint  string
	Verbosity int
}

// Fields stores the raw genesis storage, keyed by child trie and
// then by hex encoded storage key.
type Fields struct {
	Raw map[string]map[string]string `json:"raw,omitempty"`
}

// IsRaw returns whether the genesis is raw or not
func (g *Genesis) IsRaw() bool {
	return g.Genesis.Raw != nil
}

// Top returns the hex encoded key values of the top trie.
func (g *Genesis) Top() (map[string]string, error) {
	if !g.IsRaw() {
		return nil, fmt.Errorf("%w: %s", ErrNotRaw, g.ID)
	}
	return g.Genesis.Raw["top"], nil
}

// TelemetryEndpointList returns the well formed telemetry endpoints.
func (g *Genesis) TelemetryEndpointList() []*TelemetryEndpoint {
	return interfaceToTelemetryEndpoint(g.TelemetryEndpoints)
}

// SS58Format returns the address format of the chain from its properties.
func (g *Genesis) SS58Format() (format crypto.Ss58AddressFormat, err error) {
	value, err := g.numberProperty("ss58Format")
	if err != nil {
		return 0, err
	}
	if value < 0 || value > 0x3fff {
		return 0, fmt.Errorf("%w: ss58Format %v", crypto.ErrInvalidPrefix, value)
	}
	return crypto.Ss58AddressFormat(value), nil
}

// TokenDecimals returns the decimals of the native token from the chain properties.
func (g *Genesis) TokenDecimals() (decimals uint8, err error) {
	value, err := g.numberProperty("tokenDecimals")
	if err != nil {
		return 0, err
	}
	if value < 0 || value > 255 {
		return 0, fmt.Errorf("%w: tokenDecimals %v", ErrPropertyType, value)
	}
	return uint8(value), nil
}

// TokenSymbol returns the symbol of the native token from the chain properties.
func (g *Genesis) TokenSymbol() (string, error) {
	value, ok := g.Properties["tokenSymbol"]
	if !ok {
		return "", fmt.Errorf("%w: tokenSymbol", ErrPropertyAbsent)
	}
	symbol, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: tokenSymbol is %T", ErrPropertyType, value)
	}
	return symbol, nil
}

func (g *Genesis) numberProperty(name string) (float64, error) {
	value, ok := g.Properties[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPropertyAbsent, name)
	}
	number, ok := value.(float64)
	if !ok || number != float64(int64(number)) {
		return 0, fmt.Errorf("%w: %s is %v", ErrPropertyType, name, value)
	}
	return number, nil
}

func interfaceToTelemetryEndpoint(endpoints []interface{}) []*TelemetryEndpoint {
	var res []*TelemetryEndpoint
	for _, v := range endpoints {
		epi, ok := v.([]interface{})
		if !ok {
			continue
		}
		if len(epi) != 2 {
			continue
		}
		eps, ok := epi[0].(string)
		if !ok {
			continue
		}
		epv, ok := epi[1].(float64)
		if !ok {
			continue
		}
		ep := &TelemetryEndpoint{
			Endpoint:  eps,
			Verbosity: int(epv),
		}
		res = append(res, ep)
	}

	return res
}
