// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the minimum severity a logger writes.
type Level uint8

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Critical
)

type levelInfo struct {
	name   string
	short  string
	colour color.Attribute
}

var levels = [...]levelInfo{
	Trace:    {name: "TRACE", short: "TRCE", colour: color.FgHiCyan},
	Debug:    {name: "DEBUG", short: "DBUG", colour: color.FgHiBlue},
	Info:     {name: "INFO", colour: color.FgCyan},
	Warn:     {name: "WARN", colour: color.FgYellow},
	Error:    {name: "ERROR", short: "EROR", colour: color.FgHiRed},
	Critical: {name: "CRITICAL", short: "CRIT", colour: color.FgRed},
}

func (level Level) String() string {
	if int(level) >= len(levels) {
		return "???"
	}
	return levels[level].name
}

// ColouredString returns the level name in the colour of the level.
func (level Level) ColouredString() string {
	attribute := color.Reset
	if int(level) < len(levels) {
		attribute = levels[level].colour
	}
	return color.New(attribute).Sprint(level.String())
}

// ErrLevelNotRecognised is returned by ParseLevel for unknown level names.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a level name, case insensitive.
// The short forms trce, dbug, eror and crit are accepted too.
func ParseLevel(s string) (Level, error) {
	upper := strings.ToUpper(s)
	for level, info := range levels {
		if upper == info.name || (info.short != "" && upper == info.short) {
			return Level(level), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
